// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"insureflow/internal/domain/entity"
	"insureflow/internal/errors"
)

// Domain-specific errors for flow state persistence.
var (
	// ErrFlowStateNotFound is returned when no state is stored for a session.
	ErrFlowStateNotFound = errors.New("flow state not found")
	// ErrDocumentFlowNotFound is returned when no document flow is stored for a session.
	ErrDocumentFlowNotFound = errors.New("document flow not found")
	// ErrAuthUserNotFound is returned when no user is logged in on a session.
	ErrAuthUserNotFound = errors.New("auth user not found")
)

// FlowStateRepository is the load/save boundary of the insurance flow store.
// Only the persisted subset of the flow state crosses it.
type FlowStateRepository interface {
	// Load returns the persisted flow of a session.
	Load(ctx context.Context, sessionID string) (*entity.PersistedFlow, error)

	// Save overwrites the persisted flow of a session.
	Save(ctx context.Context, sessionID string, flow *entity.PersistedFlow) error

	// Delete removes the persisted flow of a session.
	Delete(ctx context.Context, sessionID string) error
}

// DocumentFlowRepository persists uploaded document ids and viewer state.
type DocumentFlowRepository interface {
	Load(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error)
	Save(ctx context.Context, sessionID string, state *entity.DocumentFlowState) error
	Delete(ctx context.Context, sessionID string) error
}

// AuthUserRepository keeps the logged-in user of a session.
type AuthUserRepository interface {
	Load(ctx context.Context, sessionID string) (*entity.AuthUser, error)
	Save(ctx context.Context, sessionID string, user *entity.AuthUser) error
	Delete(ctx context.Context, sessionID string) error
}
