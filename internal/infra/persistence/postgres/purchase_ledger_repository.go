package postgres

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// purchaseLedgerRepository implements the repository.PurchaseLedgerRepository interface.
type purchaseLedgerRepository struct {
	db *gorm.DB
}

// NewPurchaseLedgerRepository is the constructor for purchaseLedgerRepository.
func NewPurchaseLedgerRepository(db *gorm.DB) repository.PurchaseLedgerRepository {
	return &purchaseLedgerRepository{
		db: db,
	}
}

// Create records a new purchase.
func (repo *purchaseLedgerRepository) Create(ctx context.Context, entry *entity.PurchaseLedgerEntry) error {
	ledgerM, err := fromLedgerDomain(entry)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(ledgerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid purchase ledger entry")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase ledger entry")
	}

	entry.CreatedAt = ledgerM.CreatedAt
	entry.UpdatedAt = ledgerM.UpdatedAt

	return nil
}

// FindByIDForUpdate retrieves a purchase with SELECT ... FOR UPDATE.
// It only holds the lock when the repository is bound to a transaction.
func (repo *purchaseLedgerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PurchaseLedgerEntry, error) {
	var ledgerM model.PurchaseLedgerModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&ledgerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by id")
	}

	return toLedgerDomain(&ledgerM)
}

// FindBySessionAndContractID retrieves the newest purchase of a session with the given contract id.
func (repo *purchaseLedgerRepository) FindBySessionAndContractID(ctx context.Context, sessionID, contractID string) (*entity.PurchaseLedgerEntry, error) {
	var ledgerM model.PurchaseLedgerModel

	err := repo.db.WithContext(ctx).
		Where("session_id = ? AND contract_id = ?", sessionID, contractID).
		Order("created_at DESC").
		First(&ledgerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by contract id")
	}

	return toLedgerDomain(&ledgerM)
}

// FindBySession retrieves the purchases made in a flow session, newest first.
func (repo *purchaseLedgerRepository) FindBySession(ctx context.Context, sessionID string) ([]*entity.PurchaseLedgerEntry, error) {
	var ledgerModels []*model.PurchaseLedgerModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&ledgerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by session")
	}

	entries := make([]*entity.PurchaseLedgerEntry, 0, len(ledgerModels))
	for _, ledgerM := range ledgerModels {
		entry, err := toLedgerDomain(ledgerM)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// UpdateSyncStatus records a delivery attempt outcome.
func (repo *purchaseLedgerRepository) UpdateSyncStatus(ctx context.Context, id uuid.UUID, status entity.SyncStatus, attempts int, lastError string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseLedgerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sync_status": string(status),
			"attempts":    attempts,
			"last_error":  lastError,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update purchase sync status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

func fromLedgerDomain(entry *entity.PurchaseLedgerEntry) (*model.PurchaseLedgerModel, error) {
	if entry.Record == nil {
		return nil, errors.New("purchase ledger entry has no record")
	}
	if entry.ID == uuid.Nil {
		return nil, errors.New("purchase ledger entry has no id")
	}

	record, err := json.Marshal(entry.Record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode purchase record")
	}

	return &model.PurchaseLedgerModel{
		ID:            entry.ID,
		ContractID:    entry.ContractID,
		TransactionID: entry.Record.TransactionID,
		SessionID:     entry.SessionID,
		UserID:        entry.Record.UserID,
		PackageID:     entry.Record.PackageID,
		Price:         entry.Record.Price,
		Record:        datatypes.JSON(record),
		SyncStatus:    string(entry.SyncStatus),
		Attempts:      entry.Attempts,
		LastError:     entry.LastError,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}, nil
}

func toLedgerDomain(ledgerM *model.PurchaseLedgerModel) (*entity.PurchaseLedgerEntry, error) {
	var record entity.PurchaseRecord
	if err := json.Unmarshal(ledgerM.Record, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to decode purchase record %s", ledgerM.ContractID)
	}

	return &entity.PurchaseLedgerEntry{
		ID:         ledgerM.ID,
		ContractID: ledgerM.ContractID,
		SessionID:  ledgerM.SessionID,
		Record:     &record,
		SyncStatus: entity.SyncStatus(ledgerM.SyncStatus),
		Attempts:   ledgerM.Attempts,
		LastError:  ledgerM.LastError,
		CreatedAt:  ledgerM.CreatedAt,
		UpdatedAt:  ledgerM.UpdatedAt,
	}, nil
}
