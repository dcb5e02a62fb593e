package impl

import (
	"context"
	"encoding/json"

	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/pkg/errors"
)

// maxChatHistory is how many trailing messages are forwarded with a chat request.
const maxChatHistory = 10

type chatService struct {
	chatAPI service.ChatAPI
}

// NewChatService creates a new chat service instance
func NewChatService(chatAPI service.ChatAPI) usecase.ChatUsecase {
	return &chatService{chatAPI: chatAPI}
}

// Send forwards a message with at most the last maxChatHistory history entries
func (s *chatService) Send(ctx context.Context, req *service.ChatRequest) (json.RawMessage, error) {
	trimmed := *req
	if n := len(req.History); n > maxChatHistory {
		trimmed.History = req.History[n-maxChatHistory:]
	}

	resp, err := s.chatAPI.Send(ctx, &trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send chat message")
	}

	return resp, nil
}
