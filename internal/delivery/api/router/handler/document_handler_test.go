package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"
	mockusecase "insureflow/internal/mocks/usecase"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDocumentTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockExtractionUsecase, *mockusecase.MockDocumentUsecase) {
	t.Helper()

	extractionUC := mockusecase.NewMockExtractionUsecase(t)
	documentUC := mockusecase.NewMockDocumentUsecase(t)
	h := NewDocumentHandler(extractionUC, documentUC, discardLogger)

	e := newTestEcho()
	e.POST("/flow/documents", h.Upload, withSession)
	e.PUT("/flow/documents/viewer", h.UpdateViewer, withSession)
	e.POST("/flow/recommendation/accept", h.AcceptRecommendation, withSession)
	e.GET("/documents/:id/json", h.GetJSON)
	e.PUT("/documents/:id/json", h.PutJSON)
	e.GET("/jobs/:id", h.GetJob)

	return e, extractionUC, documentUC
}

func multipartRequest(t *testing.T, target string, files map[string][]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("content of " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestDocumentHandler_Upload(t *testing.T) {
	t.Run("forwards files and reports progress", func(t *testing.T) {
		e, extractionUC, _ := newDocumentTestEcho(t)

		extractionUC.EXPECT().ProcessUploads(mock.Anything, testSessionID, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, files []*service.UploadFile, progress usecase.ProgressFunc) (*usecase.UploadResult, error) {
				require.Len(t, files, 2)
				docs := make([]*entity.UploadedDocument, 0, len(files))
				for i, f := range files {
					progress(i+1, len(files), (i+1)*100/len(files))
					docs = append(docs, &entity.UploadedDocument{ID: "doc-" + f.Name, Filename: f.Name})
				}

				return &usecase.UploadResult{Documents: docs, CurrentStep: entity.FlowStepUpload}, nil
			})

		req := multipartRequest(t, "/flow/documents", map[string][]string{"files[]": {"a.pdf", "b.jpg"}})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp struct {
			Documents []entity.UploadedDocument `json:"documents"`
			Progress  []ProgressEvent           `json:"progress"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
		assert.Len(t, resp.Documents, 2)
		assert.Equal(t, []ProgressEvent{{Done: 1, Total: 2, Percent: 50}, {Done: 2, Total: 2, Percent: 100}}, resp.Progress)
	})

	t.Run("accepts the plain files field", func(t *testing.T) {
		e, extractionUC, _ := newDocumentTestEcho(t)

		extractionUC.EXPECT().ProcessUploads(mock.Anything, testSessionID, mock.MatchedBy(func(files []*service.UploadFile) bool {
			return len(files) == 1 && files[0].Name == "c.png" && string(files[0].Data) == "content of c.png"
		}), mock.Anything).Return(&usecase.UploadResult{}, nil)

		req := multipartRequest(t, "/flow/documents", map[string][]string{"files": {"c.png"}})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pipeline errors keep their code", func(t *testing.T) {
		e, extractionUC, _ := newDocumentTestEcho(t)

		extractionUC.EXPECT().ProcessUploads(mock.Anything, testSessionID, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrNoFiles)

		req := multipartRequest(t, "/flow/documents", map[string][]string{})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		requireErrorCode(t, rec, http.StatusBadRequest, "NO_FILES")
	})

	t.Run("json body is rejected", func(t *testing.T) {
		e, _, _ := newDocumentTestEcho(t)

		rec := doJSON(t, e, http.MethodPost, "/flow/documents", map[string]string{"file": "x"})

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestDocumentHandler_AcceptRecommendation(t *testing.T) {
	e, extractionUC, _ := newDocumentTestEcho(t)

	extractionUC.EXPECT().AcceptRecommendation(mock.Anything, testSessionID, "nd-basic").
		Return(&entity.FlowState{CurrentStep: entity.FlowStepUpload}, nil)

	rec := doJSON(t, e, http.MethodPost, "/flow/recommendation/accept", map[string]string{"package_id": "nd-basic"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocumentHandler_UpdateViewer(t *testing.T) {
	e, _, documentUC := newDocumentTestEcho(t)

	documentUC.EXPECT().UpdateViewer(mock.Anything, testSessionID, mock.MatchedBy(func(v entity.ViewerState) bool {
		return v.Page == 3
	})).Return(entity.NewDocumentFlowState(), nil)

	rec := doJSON(t, e, http.MethodPut, "/flow/documents/viewer", map[string]any{"page": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocumentHandler_Proxies(t *testing.T) {
	t.Run("wraps the backend payload", func(t *testing.T) {
		e, _, documentUC := newDocumentTestEcho(t)

		documentUC.EXPECT().GetJSON(mock.Anything, "doc-1").Return(json.RawMessage(`{"fields":[1,2]}`), nil)

		rec := doJSON(t, e, http.MethodGet, "/documents/doc-1/json", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"fields":[1,2]}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("put forwards the raw body", func(t *testing.T) {
		e, _, documentUC := newDocumentTestEcho(t)

		documentUC.EXPECT().PutJSON(mock.Anything, "doc-1", mock.MatchedBy(func(body json.RawMessage) bool {
			return string(body) == `{"a":1}`
		})).Return(json.RawMessage(`{"ok":true}`), nil)

		rec := doJSON(t, e, http.MethodPut, "/documents/doc-1/json", `{"a":1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("put rejects invalid json", func(t *testing.T) {
		e, _, _ := newDocumentTestEcho(t)

		rec := doJSON(t, e, http.MethodPut, "/documents/doc-1/json", `{"a":`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("backend outage surfaces as 502", func(t *testing.T) {
		e, _, documentUC := newDocumentTestEcho(t)

		documentUC.EXPECT().GetJob(mock.Anything, "job-9").Return(nil, domainerrors.ErrRemoteUnavailable)

		rec := doJSON(t, e, http.MethodGet, "/jobs/job-9", nil)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
