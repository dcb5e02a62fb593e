package service

import (
	"context"

	"insureflow/internal/domain/entity"
)

// PurchaseRetryEvent asks the purchase worker to deliver a purchase record again.
// Record travels with the event so the worker can restore a ledger row that was never written.
type PurchaseRetryEvent struct {
	RequestID  string                 `json:"request_id,omitempty"` // For distributed tracing
	LedgerID   string                 `json:"ledger_id"`
	ContractID string                 `json:"contract_id"`
	SessionID  string                 `json:"session_id"`
	Reason     string                 `json:"reason,omitempty"`
	Record     *entity.PurchaseRecord `json:"record,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPurchaseRetryEvent queues a purchase record for redelivery
	PublishPurchaseRetryEvent(ctx context.Context, event *PurchaseRetryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
