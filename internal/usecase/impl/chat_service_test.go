package impl

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"insureflow/internal/domain/service"
	mockSvc "insureflow/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_Send_TrimsHistory(t *testing.T) {
	chatAPI := mockSvc.NewMockChatAPI(t)
	srv := NewChatService(chatAPI)
	ctx := context.Background()

	history := make([]service.ChatMessage, 15)
	for i := range history {
		history[i] = service.ChatMessage{Role: "user", Content: strconv.Itoa(i)}
	}
	req := &service.ChatRequest{Message: "Gói nào phù hợp với tôi?", DocumentID: "doc-1", History: history}

	chatAPI.EXPECT().
		Send(ctx, mock.MatchedBy(func(r *service.ChatRequest) bool {
			return len(r.History) == maxChatHistory &&
				r.History[0].Content == "5" &&
				r.DocumentID == "doc-1"
		})).
		Return(json.RawMessage(`{"reply":"ok"}`), nil)

	resp, err := srv.Send(ctx, req)

	require.NoError(t, err)
	assert.JSONEq(t, `{"reply":"ok"}`, string(resp))
	assert.Len(t, req.History, 15)
}
