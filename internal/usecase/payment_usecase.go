package usecase

import (
	"context"

	"insureflow/internal/domain/entity"
)

// PaymentSummary is shown on the payment step.
type PaymentSummary struct {
	Package        *entity.InsurancePackage `json:"package"`
	FormattedPrice string                   `json:"formatted_price"`
	HolderName     string                   `json:"holder_name"`
	Methods        []entity.PaymentMethod   `json:"methods"`
	Reference      string                   `json:"reference"`
}

// PaymentResult is the outcome of a confirmed payment.
type PaymentResult struct {
	Contract    *entity.Contract  `json:"contract"`
	SyncStatus  entity.SyncStatus `json:"sync_status"`
	CurrentStep entity.FlowStep   `json:"current_step"`
}

// PaymentUsecase defines the simulated payment step
type PaymentUsecase interface {
	// GetSummary returns what is being paid for
	GetSummary(ctx context.Context, sessionID string) (*PaymentSummary, error)

	// GeneratePaymentQR renders the payment QR code as PNG
	GeneratePaymentQR(ctx context.Context, sessionID string) ([]byte, error)

	// ConfirmPayment creates the contract, records the purchase and moves the flow to success
	ConfirmPayment(ctx context.Context, sessionID string, method entity.PaymentMethod) (*PaymentResult, error)

	// GetContract returns the contract of the session
	GetContract(ctx context.Context, sessionID string) (*entity.Contract, error)
}
