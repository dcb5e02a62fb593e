package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"insureflow/config"
	deliverycontext "insureflow/internal/delivery/context"
	"insureflow/internal/domain/entity"
	domainerrors "insureflow/internal/domain/errors"
	"insureflow/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Params{
		Config: &config.Config{Remote: &config.RemoteConfig{BaseURL: server.URL, Timeout: 5 * time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestClient_Upload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/documents/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "cavet_xe.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg-bytes"), data)

		_, _ = w.Write([]byte(`{"document_id": "doc-42", "filename": "cavet_xe.jpg"}`))
	})

	doc, err := client.Upload(context.Background(), &service.UploadFile{
		Name:        "cavet_xe.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "doc-42", doc.ID)
	assert.Equal(t, int64(len("jpeg-bytes")), doc.Size)
	assert.Equal(t, "image/jpeg", doc.ContentType)
}

func TestClient_Upload_MissingID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"filename": "a.jpg"}`))
	})

	_, err := client.Upload(context.Background(), &service.UploadFile{Name: "a.jpg", Data: []byte("x")})

	require.Error(t, err)
}

func TestClient_ExtractVehicleInfo_UnwrapsData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/doc-1/extract-vehicle-info", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": {"license_plate": "30A-12345", "brand": "Toyota", "full_name": null}}`))
	})

	data, err := client.ExtractVehicleInfo(context.Background(), "doc-1")

	require.NoError(t, err)
	assert.Equal(t, "30A-12345", entity.Value(data.LicensePlate))
	assert.Nil(t, data.FullName)
	assert.True(t, data.HasVehicleFields())
}

func TestClient_RecommendInsurance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents/doc-1/recommend-insurance", r.URL.Path)
		_, _ = w.Write([]byte(`{"region": "Miền Trung", "recommended_packages": [{"id": "flood-basic", "name": "Bảo hiểm Ngập lụt Cơ bản"}]}`))
	})

	rec, err := client.RecommendInsurance(context.Background(), "doc-1")

	require.NoError(t, err)
	assert.Equal(t, "Miền Trung", rec.Region)
	require.Len(t, rec.Packages, 1)
	assert.Equal(t, "flood-basic", rec.Packages[0].ID)
}

func TestClient_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Sai email hoặc mật khẩu"}`))
	})

	_, err := client.Login(context.Background(), "a@example.com", "wrong")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Sai email hoặc mật khẩu", statusErr.Detail)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "REMOTE_API_ERROR", appErr.ErrorCode())
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "string detail", status: 400, body: `{"detail": "bad file"}`, want: "bad file"},
		{name: "structured detail", status: 422, body: `{"detail": [{"loc": ["body"]}]}`, want: `[{"loc": ["body"]}]`},
		{name: "message", status: 500, body: `{"message": "boom"}`, want: "boom"},
		{name: "not json", status: 503, body: `<html>`, want: "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail(tt.status, []byte(tt.body)))
		})
	}
}

func TestStatusError_ServerErrorsMapToBadGateway(t *testing.T) {
	err := newStatusError(http.MethodPost, "/insurance-purchases", http.StatusInternalServerError, nil)

	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "Internal Server Error", err.Message())
}

func TestClient_ListPurchases_RetriesOnce(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/user-1/insurance-purchases", r.URL.Path)
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		_, _ = w.Write([]byte(`{"data": [{"contract_id": "BH00000001", "price": 500000}]}`))
	})

	records, err := client.ListPurchases(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, records, 1)
	assert.Equal(t, "BH00000001", records[0].ContractID)
}

func TestClient_GetJob_GivesUpAfterOneRetry(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetJob(context.Background(), "job-1")

	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.CreatePurchase(context.Background(), &entity.PurchaseRecord{ContractID: "BH00000001"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetJob(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_PropagatesRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-7", r.Header.Get("X-Request-Id"))

		var body service.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Xin chào", body.Message)

		_, _ = w.Write([]byte(`{"reply": "Chào bạn"}`))
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	resp, err := client.Send(ctx, &service.ChatRequest{Message: "Xin chào"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"reply": "Chào bạn"}`, string(resp))
}

func TestClient_LoginEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@example.com", creds["email"])

		_, _ = w.Write([]byte(`{"access_token": "tok-1", "user": {"id": "user-1", "email": "a@example.com", "name": "A"}}`))
	})

	user, err := client.Login(context.Background(), "a@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "tok-1", user.Token)
}

func TestClient_Me(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"id": "user-1", "email": "a@example.com"}`))
	})

	user, err := client.Me(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "tok-1", user.Token)
}

func TestClient_PutJSON_Passthrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/documents/doc%2F1/json", r.URL.EscapedPath())

		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	})

	resp, err := client.PutJSON(context.Background(), "doc/1", json.RawMessage(`{"fields":{"a":1}}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":{"a":1}}`, string(resp))
}
