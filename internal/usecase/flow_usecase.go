// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"insureflow/internal/domain/entity"
)

// SessionInfo is returned when a new purchase flow session is opened.
type SessionInfo struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FlowUsecase defines the insurance flow store operations of a session
type FlowUsecase interface {
	// CreateSession opens a new flow session at the select step
	CreateSession(ctx context.Context) (*SessionInfo, error)

	// GetState returns the current flow state of a session
	GetState(ctx context.Context, sessionID string) (*entity.FlowState, error)

	// SelectPackage stores the chosen package and moves the flow to upload
	SelectPackage(ctx context.Context, sessionID, packageID string) (*entity.FlowState, error)

	// SetStep moves the flow cursor without guarding the transition
	SetStep(ctx context.Context, sessionID string, step entity.FlowStep) (*entity.FlowState, error)

	// Reset clears the flow back to its initial values
	Reset(ctx context.Context, sessionID string) (*entity.FlowState, error)
}
