package repository

import (
	"context"

	"insureflow/internal/domain/entity"
	"insureflow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for purchase ledger persistence.
var (
	// ErrPurchaseNotFound is returned when a ledger entry is not found.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrDuplicatePurchase is returned when a ledger id is recorded twice.
	ErrDuplicatePurchase = errors.New("purchase already exists")
)

// PurchaseLedgerRepository stores the local copy of every purchase record.
type PurchaseLedgerRepository interface {
	// Create records a new purchase.
	Create(ctx context.Context, entry *entity.PurchaseLedgerEntry) error

	// FindByIDForUpdate retrieves a purchase and locks its row for the current transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PurchaseLedgerEntry, error)

	// FindBySessionAndContractID retrieves the newest purchase of a session with the given contract id.
	FindBySessionAndContractID(ctx context.Context, sessionID, contractID string) (*entity.PurchaseLedgerEntry, error)

	// FindBySession retrieves the purchases made in a flow session, newest first.
	FindBySession(ctx context.Context, sessionID string) ([]*entity.PurchaseLedgerEntry, error)

	// UpdateSyncStatus records a delivery attempt outcome.
	UpdateSyncStatus(ctx context.Context, id uuid.UUID, status entity.SyncStatus, attempts int, lastError string) error
}
