package usecase

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
)

// AccountUsecase proxies authentication to the remote backend and remembers the user per session
type AccountUsecase interface {
	Register(ctx context.Context, registration *entity.Registration) (*entity.AuthUser, error)

	// Login authenticates and, when sessionID is set, stores the user on the session
	Login(ctx context.Context, sessionID, email, password string) (*entity.AuthUser, error)

	Me(ctx context.Context, token string) (*entity.AuthUser, error)

	// CurrentUser returns the user logged in on a session
	CurrentUser(ctx context.Context, sessionID string) (*entity.AuthUser, error)

	Logout(ctx context.Context, sessionID string) error
}

// ChatUsecase forwards chat messages with trimmed history
type ChatUsecase interface {
	Send(ctx context.Context, req *service.ChatRequest) (json.RawMessage, error)
}

// DocumentUsecase defines the document flow store and viewer proxy
type DocumentUsecase interface {
	GetDocumentFlow(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error)
	UpdateViewer(ctx context.Context, sessionID string, viewer entity.ViewerState) (*entity.DocumentFlowState, error)
	ClearDocuments(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error)

	Process(ctx context.Context, documentID string) (json.RawMessage, error)
	GetJob(ctx context.Context, jobID string) (json.RawMessage, error)
	GetDocument(ctx context.Context, documentID string) (json.RawMessage, error)
	GetOverlay(ctx context.Context, documentID string) (json.RawMessage, error)
	GetMarkdown(ctx context.Context, documentID string) (json.RawMessage, error)
	GetJSON(ctx context.Context, documentID string) (json.RawMessage, error)
	PutJSON(ctx context.Context, documentID string, body json.RawMessage) (json.RawMessage, error)
	AnalyzeAuto(ctx context.Context, documentID string) (json.RawMessage, error)
}
