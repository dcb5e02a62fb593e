package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"insureflow/internal/domain/service"
	mockusecase "insureflow/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChatHandler_Send(t *testing.T) {
	t.Run("forwards message and history", func(t *testing.T) {
		uc := mockusecase.NewMockChatUsecase(t)
		h := NewChatHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/chat", h.Send)

		uc.EXPECT().Send(mock.Anything, &service.ChatRequest{
			Message:    "Gói này bao gồm gì?",
			DocumentID: "doc-1",
			History:    []service.ChatMessage{{Role: "user", Content: "xin chào"}},
		}).Return(json.RawMessage(`{"reply":"..."}`), nil)

		rec := doJSON(t, e, http.MethodPost, "/chat", map[string]any{
			"message":     "Gói này bao gồm gì?",
			"document_id": "doc-1",
			"history":     []map[string]string{{"role": "user", "content": "xin chào"}},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reply"`)
	})

	t.Run("empty message", func(t *testing.T) {
		uc := mockusecase.NewMockChatUsecase(t)
		h := NewChatHandler(uc, discardLogger)
		e := newTestEcho()
		e.POST("/chat", h.Send)

		rec := doJSON(t, e, http.MethodPost, "/chat", map[string]any{"message": ""})

		requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_FAILED")
	})
}
