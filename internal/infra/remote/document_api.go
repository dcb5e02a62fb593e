package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"insureflow/internal/domain/entity"
	"insureflow/internal/domain/service"
	"insureflow/internal/errors"
)

// uploadPayload accepts either id or document_id for the created document.
type uploadPayload struct {
	ID          string `json:"id"`
	DocumentID  string `json:"document_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

func documentPath(documentID, action string) string {
	p := "/documents/" + url.PathEscape(documentID)
	if action != "" {
		p += "/" + action
	}

	return p
}

// Upload sends one file as multipart form field "file".
func (c *Client) Upload(ctx context.Context, file *service.UploadFile) (*entity.UploadedDocument, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(file.Name)+`"`)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}
	payload := body.Bytes()

	build := func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/documents/upload", nil), bytes.NewReader(payload))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("Accept", "application/json")

		return req, nil
	}

	var raw json.RawMessage
	if err := c.do(ctx, build, &raw, 0); err != nil {
		return nil, err
	}

	uploaded := &uploadPayload{}
	if err := decodeData(raw, uploaded, "upload response"); err != nil {
		return nil, err
	}

	id := uploaded.ID
	if id == "" {
		id = uploaded.DocumentID
	}
	if id == "" {
		return nil, errors.Errorf("upload of %s returned no document id", file.Name)
	}

	doc := &entity.UploadedDocument{
		ID:          id,
		Filename:    uploaded.Filename,
		ContentType: uploaded.ContentType,
		Size:        uploaded.Size,
	}
	if doc.Filename == "" {
		doc.Filename = file.Name
	}
	if doc.ContentType == "" {
		doc.ContentType = contentType
	}
	if doc.Size == 0 {
		doc.Size = int64(len(file.Data))
	}

	return doc, nil
}

func (c *Client) extract(ctx context.Context, documentID, action string) (*entity.ExtractedData, error) {
	var raw json.RawMessage
	if err := c.callJSON(ctx, http.MethodPost, documentPath(documentID, action), nil, nil, &raw, 0); err != nil {
		return nil, err
	}

	data := &entity.ExtractedData{}
	if err := decodeData(raw, data, action+" response"); err != nil {
		return nil, err
	}

	return data, nil
}

// ExtractPersonInfo runs identity extraction.
func (c *Client) ExtractPersonInfo(ctx context.Context, documentID string) (*entity.ExtractedData, error) {
	return c.extract(ctx, documentID, "extract-person-info")
}

// ExtractVehicleInfo runs vehicle registration extraction.
func (c *Client) ExtractVehicleInfo(ctx context.Context, documentID string) (*entity.ExtractedData, error) {
	return c.extract(ctx, documentID, "extract-vehicle-info")
}

// RecommendInsurance asks for a region-based recommendation.
func (c *Client) RecommendInsurance(ctx context.Context, documentID string) (*service.RecommendationResult, error) {
	var raw json.RawMessage
	if err := c.callJSON(ctx, http.MethodPost, documentPath(documentID, "recommend-insurance"), nil, nil, &raw, 0); err != nil {
		return nil, err
	}

	result := &service.RecommendationResult{}
	if err := decodeData(raw, result, "recommendation response"); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) passthrough(ctx context.Context, method, path string, body json.RawMessage, retries int) (json.RawMessage, error) {
	var in any
	if body != nil {
		in = body
	}

	var raw json.RawMessage
	if err := c.callJSON(ctx, method, path, nil, in, &raw, retries); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}

	return raw, nil
}

// Process starts backend processing of a document.
func (c *Client) Process(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodPost, documentPath(documentID, "process"), nil, 0)
}

// GetJob polls a processing job. It is retried once.
func (c *Client) GetJob(ctx context.Context, jobID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, 1)
}

func (c *Client) GetDocument(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodGet, documentPath(documentID, ""), nil, 0)
}

func (c *Client) GetOverlay(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodGet, documentPath(documentID, "overlay"), nil, 0)
}

func (c *Client) GetMarkdown(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodGet, documentPath(documentID, "markdown"), nil, 0)
}

func (c *Client) GetJSON(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodGet, documentPath(documentID, "json"), nil, 0)
}

func (c *Client) PutJSON(ctx context.Context, documentID string, body json.RawMessage) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodPut, documentPath(documentID, "json"), body, 0)
}

func (c *Client) AnalyzeAuto(ctx context.Context, documentID string) (json.RawMessage, error) {
	return c.passthrough(ctx, http.MethodPost, documentPath(documentID, "analyze-auto"), nil, 0)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
