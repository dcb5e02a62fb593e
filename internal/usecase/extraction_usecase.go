package usecase

import (
	"context"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
)

// ProgressFunc receives the batch progress after every processed file.
// Percent never decreases within one batch.
type ProgressFunc func(done, total, percent int)

// FileFailure reports a file that could not be uploaded or extracted.
type FileFailure struct {
	Filename string `json:"filename"`
	Stage    string `json:"stage"`
	Error    string `json:"error"`
}

// UploadResult is the outcome of one upload batch.
type UploadResult struct {
	Documents      []*entity.UploadedDocument `json:"documents"`
	Failures       []FileFailure              `json:"failures,omitempty"`
	ExtractedData  *entity.ExtractedData      `json:"extracted_data"`
	Recommendation *entity.Recommendation     `json:"recommendation"`
	CurrentStep    entity.FlowStep            `json:"current_step"`
}

// ExtractionUsecase defines the document upload and extraction pipeline
type ExtractionUsecase interface {
	// ProcessUploads runs classify, upload, extract and merge over the files in order
	ProcessUploads(ctx context.Context, sessionID string, files []*service.UploadFile, progress ProgressFunc) (*UploadResult, error)

	// AcceptRecommendation switches the flow to a recommended natural disaster package
	AcceptRecommendation(ctx context.Context, sessionID, packageID string) (*entity.FlowState, error)

	// DeclineRecommendation keeps the selected package and continues to the form
	DeclineRecommendation(ctx context.Context, sessionID string) (*entity.FlowState, error)
}
