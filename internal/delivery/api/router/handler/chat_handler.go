package handler

import (
	"log/slog"
	"net/http"

	"insureflow/internal/delivery/api/response"
	"insureflow/internal/domain/service"
	"insureflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type chatRequest struct {
	Message    string                `json:"message"     validate:"required"`
	DocumentID string                `json:"document_id"`
	History    []service.ChatMessage `json:"history"`
}

// Send handles POST /chat
func (h *ChatHandler) Send(c echo.Context) error {
	var input chatRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat message")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	reply, err := h.uc.Send(c.Request().Context(), &service.ChatRequest{
		Message:    input.Message,
		DocumentID: input.DocumentID,
		History:    input.History,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reply)
}
