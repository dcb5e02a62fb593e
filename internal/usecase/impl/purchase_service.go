package impl

import (
	"context"
	"log/slog"
	"time"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/catalog"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxDeliveryAttempts = 5

type purchaseService struct {
	txManager   repository.TransactionManager
	ledgerRepo  repository.PurchaseLedgerRepository
	purchaseAPI service.PurchaseAPI
	maxAttempts int
	logger      *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LedgerRepo  repository.PurchaseLedgerRepository
	PurchaseAPI service.PurchaseAPI
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	maxAttempts := defaultMaxDeliveryAttempts
	if params.Config != nil && params.Config.Worker != nil && params.Config.Worker.MaxAttempts > 0 {
		maxAttempts = params.Config.Worker.MaxAttempts
	}

	return &purchaseService{
		txManager:   params.TxManager,
		ledgerRepo:  params.LedgerRepo,
		purchaseAPI: params.PurchaseAPI,
		maxAttempts: maxAttempts,
		logger:      params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUserPurchases returns the backend purchase history with display prices filled in.
func (srv *purchaseService) ListUserPurchases(ctx context.Context, userID string) ([]*entity.PurchaseRecord, error) {
	records, err := srv.purchaseAPI.ListPurchases(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	for _, r := range records {
		if r.FormattedPrice == "" {
			r.FormattedPrice = catalog.FormatPrice(r.Price)
		}
	}

	return records, nil
}

// GetPurchase returns a purchase from the local ledger. Only purchases made in the
// session are visible.
func (srv *purchaseService) GetPurchase(ctx context.Context, sessionID, contractID string) (*entity.PurchaseLedgerEntry, error) {
	entry, err := srv.ledgerRepo.FindBySessionAndContractID(ctx, sessionID, contractID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound.WithDetails(contractID)
		}

		return nil, errors.Wrap(err, "failed to find purchase")
	}

	return entry, nil
}

// ListSessionPurchases returns the purchases made in a flow session.
func (srv *purchaseService) ListSessionPurchases(ctx context.Context, sessionID string) ([]*entity.PurchaseLedgerEntry, error) {
	entries, err := srv.ledgerRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list session purchases")
	}

	return entries, nil
}

// RetryPurchase delivers a queued purchase record again. The ledger row stays locked for
// the whole attempt so concurrent redeliveries of one purchase cannot both post it. A row
// that was never written is restored from the record carried by the event.
func (srv *purchaseService) RetryPurchase(ctx context.Context, event *service.PurchaseRetryEvent) (usecase.RetryOutcome, error) {
	logger := srv.log(ctx).With(
		slog.String("contract_id", event.ContractID),
		slog.String("ledger_id", event.LedgerID),
	)

	ledgerID, err := uuid.Parse(event.LedgerID)
	if err != nil {
		logger.Warn("Purchase retry without a valid ledger id", slog.Any("error", err))

		return usecase.RetryOutcomeSkipped, nil
	}

	outcome := usecase.RetryOutcomeSkipped
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ledgerRepo := repoFactory.NewPurchaseLedgerRepository()

		entry, err := ledgerRepo.FindByIDForUpdate(ctx, ledgerID)
		switch {
		case errors.Is(err, repository.ErrPurchaseNotFound) && event.Record == nil:
			logger.Warn("Purchase retry for unknown ledger entry")

			return nil
		case errors.Is(err, repository.ErrPurchaseNotFound):
			entry = restoredLedgerEntry(ledgerID, event)
			if err := ledgerRepo.Create(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to restore purchase ledger entry")
			}
			logger.Info("Purchase ledger entry restored from retry event")
		case err != nil:
			return errors.Wrap(err, "failed to lock purchase")
		}

		if entry.SyncStatus != entity.SyncStatusPending {
			logger.Info("Purchase no longer pending", slog.String("sync_status", string(entry.SyncStatus)))

			return nil
		}

		attempts := entry.Attempts + 1
		remoteErr := srv.purchaseAPI.CreatePurchase(ctx, entry.Record)

		switch {
		case remoteErr == nil:
			outcome = usecase.RetryOutcomeSynced
			err = ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusSynced, attempts, "")
		case attempts >= srv.maxAttempts:
			outcome = usecase.RetryOutcomeGaveUp
			err = ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusFailed, attempts, remoteErr.Error())
		default:
			outcome = usecase.RetryOutcomeRetry
			err = ledgerRepo.UpdateSyncStatus(ctx, entry.ID, entity.SyncStatusPending, attempts, remoteErr.Error())
		}
		if err != nil {
			return errors.Wrap(err, "failed to update purchase sync status")
		}

		logger.Info("Purchase delivery attempted",
			slog.Int("attempt", attempts),
			slog.String("outcome", string(outcome)),
			slog.Any("error", remoteErr),
		)

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to retry purchase")
	}

	return outcome, nil
}

// restoredLedgerEntry rebuilds a ledger row whose first write failed. The payment
// already made one delivery attempt.
func restoredLedgerEntry(ledgerID uuid.UUID, event *service.PurchaseRetryEvent) *entity.PurchaseLedgerEntry {
	now := time.Now()

	return &entity.PurchaseLedgerEntry{
		ID:         ledgerID,
		ContractID: event.Record.ContractID,
		SessionID:  event.SessionID,
		Record:     event.Record,
		SyncStatus: entity.SyncStatusPending,
		Attempts:   1,
		LastError:  event.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
