package usecase

import (
	"context"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
)

// RetryOutcome is the result of one redelivery attempt.
type RetryOutcome string

const (
	// RetryOutcomeSynced means the backend accepted the purchase.
	RetryOutcomeSynced RetryOutcome = "synced"
	// RetryOutcomeRetry means the attempt failed and should be retried.
	RetryOutcomeRetry RetryOutcome = "retry"
	// RetryOutcomeGaveUp means the attempt budget is exhausted.
	RetryOutcomeGaveUp RetryOutcome = "gave_up"
	// RetryOutcomeSkipped means there was nothing to deliver.
	RetryOutcomeSkipped RetryOutcome = "skipped"
)

// PurchaseUsecase defines purchase history and redelivery
type PurchaseUsecase interface {
	// ListUserPurchases returns a user's purchase history from the backend
	ListUserPurchases(ctx context.Context, userID string) ([]*entity.PurchaseRecord, error)

	// GetPurchase returns a purchase the session made from the local ledger
	GetPurchase(ctx context.Context, sessionID, contractID string) (*entity.PurchaseLedgerEntry, error)

	// ListSessionPurchases returns the purchases made in a session
	ListSessionPurchases(ctx context.Context, sessionID string) ([]*entity.PurchaseLedgerEntry, error)

	// RetryPurchase redelivers a queued purchase record
	RetryPurchase(ctx context.Context, event *service.PurchaseRetryEvent) (RetryOutcome, error)
}
