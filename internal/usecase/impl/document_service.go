package impl

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/repository"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/pkg/errors"
)

type documentService struct {
	documentRepo repository.DocumentFlowRepository
	viewerAPI    service.DocumentViewerAPI
}

// NewDocumentService creates a new document service instance
func NewDocumentService(documentRepo repository.DocumentFlowRepository, viewerAPI service.DocumentViewerAPI) usecase.DocumentUsecase {
	return &documentService{
		documentRepo: documentRepo,
		viewerAPI:    viewerAPI,
	}
}

func (s *documentService) load(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error) {
	state, err := s.documentRepo.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentFlowNotFound) {
			return entity.NewDocumentFlowState(), nil
		}

		return nil, errors.Wrap(err, "failed to load document flow")
	}

	return state, nil
}

// GetDocumentFlow returns the uploaded document ids and viewer state, defaulting when none is stored
func (s *documentService) GetDocumentFlow(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error) {
	return s.load(ctx, sessionID)
}

// UpdateViewer overwrites the viewer state. Unset fields keep their defaults
func (s *documentService) UpdateViewer(ctx context.Context, sessionID string, viewer entity.ViewerState) (*entity.DocumentFlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	defaults := entity.NewDocumentFlowState().Viewer
	if viewer.ActiveTab == "" {
		viewer.ActiveTab = defaults.ActiveTab
	}
	if viewer.Page < 1 {
		viewer.Page = defaults.Page
	}
	if viewer.PageSize < 1 {
		viewer.PageSize = defaults.PageSize
	}
	if viewer.Theme == "" {
		viewer.Theme = defaults.Theme
	}
	state.Viewer = viewer

	if err := s.documentRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errors.Wrap(err, "failed to save document flow")
	}

	return state, nil
}

// ClearDocuments forgets every uploaded document id but keeps the viewer state
func (s *documentService) ClearDocuments(ctx context.Context, sessionID string) (*entity.DocumentFlowState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.ClearDocuments()
	if err := s.documentRepo.Save(ctx, sessionID, state); err != nil {
		return nil, errors.Wrap(err, "failed to save document flow")
	}

	return state, nil
}

func (s *documentService) Process(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.Process(ctx, documentID)
}

func (s *documentService) GetJob(ctx context.Context, jobID string) (json.RawMessage, error) {
	return s.viewerAPI.GetJob(ctx, jobID)
}

func (s *documentService) GetDocument(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.GetDocument(ctx, documentID)
}

func (s *documentService) GetOverlay(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.GetOverlay(ctx, documentID)
}

func (s *documentService) GetMarkdown(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.GetMarkdown(ctx, documentID)
}

func (s *documentService) GetJSON(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.GetJSON(ctx, documentID)
}

func (s *documentService) PutJSON(ctx context.Context, documentID string, body json.RawMessage) (json.RawMessage, error) {
	return s.viewerAPI.PutJSON(ctx, documentID, body)
}

func (s *documentService) AnalyzeAuto(ctx context.Context, documentID string) (json.RawMessage, error) {
	return s.viewerAPI.AnalyzeAuto(ctx, documentID)
}
