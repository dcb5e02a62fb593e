package service

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/entity"
)

// UploadFile is one file handed to the remote document backend.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// RecommendedPackage is a package suggested by the remote recommendation endpoint.
type RecommendedPackage struct {
	ID    string               `json:"id"`
	Name  string               `json:"name"`
	Type  entity.InsuranceType `json:"type"`
	Price int64                `json:"price"`
}

// RecommendationResult is the region-based insurance recommendation for a document.
type RecommendationResult struct {
	Region   string               `json:"region"`
	Reason   string               `json:"reason"`
	Packages []RecommendedPackage `json:"recommended_packages"`
}

// ChatMessage is one turn of a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chat message with optional document context and trailing history.
type ChatRequest struct {
	Message    string        `json:"message"`
	DocumentID string        `json:"document_id,omitempty"`
	History    []ChatMessage `json:"history,omitempty"`
}

// AuthAPI is the remote authentication backend.
type AuthAPI interface {
	Register(ctx context.Context, registration *entity.Registration) (*entity.AuthUser, error)
	Login(ctx context.Context, email, password string) (*entity.AuthUser, error)
	Me(ctx context.Context, token string) (*entity.AuthUser, error)
}

// DocumentAPI is the part of the remote document backend used by the extraction pipeline.
type DocumentAPI interface {
	// Upload stores a file and returns the created document
	Upload(ctx context.Context, file *UploadFile) (*entity.UploadedDocument, error)

	// ExtractPersonInfo runs identity extraction on an uploaded document
	ExtractPersonInfo(ctx context.Context, documentID string) (*entity.ExtractedData, error)

	// ExtractVehicleInfo runs vehicle registration extraction on an uploaded document
	ExtractVehicleInfo(ctx context.Context, documentID string) (*entity.ExtractedData, error)

	// RecommendInsurance asks for a region-based recommendation for an uploaded document
	RecommendInsurance(ctx context.Context, documentID string) (*RecommendationResult, error)
}

// DocumentViewerAPI is the part of the remote document backend proxied to the document viewer.
// Payloads are passed through unchanged.
type DocumentViewerAPI interface {
	Process(ctx context.Context, documentID string) (json.RawMessage, error)
	GetJob(ctx context.Context, jobID string) (json.RawMessage, error)
	GetDocument(ctx context.Context, documentID string) (json.RawMessage, error)
	GetOverlay(ctx context.Context, documentID string) (json.RawMessage, error)
	GetMarkdown(ctx context.Context, documentID string) (json.RawMessage, error)
	GetJSON(ctx context.Context, documentID string) (json.RawMessage, error)
	PutJSON(ctx context.Context, documentID string, body json.RawMessage) (json.RawMessage, error)
	AnalyzeAuto(ctx context.Context, documentID string) (json.RawMessage, error)
}

// ChatAPI is the remote chat backend.
type ChatAPI interface {
	Send(ctx context.Context, req *ChatRequest) (json.RawMessage, error)
}

// PurchaseAPI is the remote purchase history backend.
type PurchaseAPI interface {
	// CreatePurchase persists a purchase record
	CreatePurchase(ctx context.Context, record *entity.PurchaseRecord) error

	// ListPurchases returns the purchase history of a user
	ListPurchases(ctx context.Context, userID string) ([]*entity.PurchaseRecord, error)
}
