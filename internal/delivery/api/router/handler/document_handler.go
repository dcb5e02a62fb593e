package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"insureflow/internal/delivery/api/response"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadFormFields are the multipart field names accepted for document batches.
var uploadFormFields = []string{"files[]", "files"}

// DocumentHandler serves the upload pipeline, the document flow store and the viewer proxies.
type DocumentHandler struct {
	extractionUC usecase.ExtractionUsecase
	documentUC   usecase.DocumentUsecase
	logger       *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(extractionUC usecase.ExtractionUsecase, documentUC usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		extractionUC: extractionUC,
		documentUC:   documentUC,
		logger:       logger,
	}
}

// ProgressEvent is one progress report of an upload batch.
type ProgressEvent struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// UploadResponse is the upload result together with the progress reported while it ran.
type UploadResponse struct {
	*usecase.UploadResult
	Progress []ProgressEvent `json:"progress"`
}

type acceptRecommendationRequest struct {
	PackageID string `json:"package_id" validate:"required"`
}

// Upload handles POST /flow/documents with multipart files[]
func (h *DocumentHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected a multipart form with files[]")
	}

	files, err := readUploadFiles(form)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	progress := make([]ProgressEvent, 0, len(files))
	onProgress := func(done, total, percent int) {
		progress = append(progress, ProgressEvent{Done: done, Total: total, Percent: percent})
		logger.Debug("Upload progress", slog.Int("done", done), slog.Int("total", total), slog.Int("percent", percent))
	}

	result, err := h.extractionUC.ProcessUploads(ctx, deliverycontext.GetSessionID(c), files, onProgress)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UploadResponse{UploadResult: result, Progress: progress})
}

func readUploadFiles(form *multipart.Form) ([]*service.UploadFile, error) {
	var headers []*multipart.FileHeader
	for _, field := range uploadFormFields {
		headers = append(headers, form.File[field]...)
	}

	files := make([]*service.UploadFile, 0, len(headers))
	for _, header := range headers {
		data, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}

		files = append(files, &service.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}

	return files, nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", header.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", header.Filename)
	}

	return data, nil
}

// AcceptRecommendation handles POST /flow/recommendation/accept
func (h *DocumentHandler) AcceptRecommendation(c echo.Context) error {
	var input acceptRecommendationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation choice")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state, err := h.extractionUC.AcceptRecommendation(c.Request().Context(), deliverycontext.GetSessionID(c), input.PackageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// DeclineRecommendation handles POST /flow/recommendation/decline
func (h *DocumentHandler) DeclineRecommendation(c echo.Context) error {
	state, err := h.extractionUC.DeclineRecommendation(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// GetDocumentFlow handles GET /flow/documents
func (h *DocumentHandler) GetDocumentFlow(c echo.Context) error {
	state, err := h.documentUC.GetDocumentFlow(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// UpdateViewer handles PUT /flow/documents/viewer
func (h *DocumentHandler) UpdateViewer(c echo.Context) error {
	var viewer entity.ViewerState
	if err := c.Bind(&viewer); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid viewer state")
	}

	state, err := h.documentUC.UpdateViewer(c.Request().Context(), deliverycontext.GetSessionID(c), viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// ClearDocuments handles DELETE /flow/documents
func (h *DocumentHandler) ClearDocuments(c echo.Context) error {
	state, err := h.documentUC.ClearDocuments(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state)
}

// proxy wraps a viewer passthrough keyed by the :id path parameter.
func (h *DocumentHandler) proxy(call func(c echo.Context, id string) (json.RawMessage, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if id == "" {
			return domainerrors.ErrNotFound
		}

		payload, err := call(c, id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, payload)
	}
}

// GetDocument handles GET /documents/:id
func (h *DocumentHandler) GetDocument(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.GetDocument(c.Request().Context(), id)
	})(c)
}

// GetOverlay handles GET /documents/:id/overlay
func (h *DocumentHandler) GetOverlay(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.GetOverlay(c.Request().Context(), id)
	})(c)
}

// GetMarkdown handles GET /documents/:id/markdown
func (h *DocumentHandler) GetMarkdown(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.GetMarkdown(c.Request().Context(), id)
	})(c)
}

// GetJSON handles GET /documents/:id/json
func (h *DocumentHandler) GetJSON(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.GetJSON(c.Request().Context(), id)
	})(c)
}

// PutJSON handles PUT /documents/:id/json
func (h *DocumentHandler) PutJSON(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil || !json.Valid(body) {
		return response.BindingError(c, "INVALID_INPUT", "Body must be valid JSON")
	}

	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.PutJSON(c.Request().Context(), id, body)
	})(c)
}

// Process handles POST /documents/:id/process
func (h *DocumentHandler) Process(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.Process(c.Request().Context(), id)
	})(c)
}

// AnalyzeAuto handles POST /documents/:id/analyze-auto
func (h *DocumentHandler) AnalyzeAuto(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.AnalyzeAuto(c.Request().Context(), id)
	})(c)
}

// GetJob handles GET /jobs/:id
func (h *DocumentHandler) GetJob(c echo.Context) error {
	return h.proxy(func(c echo.Context, id string) (json.RawMessage, error) {
		return h.documentUC.GetJob(c.Request().Context(), id)
	})(c)
}
