package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

// ChatHandler проксирует сообщения пользователей внешнему чатботу.
type ChatHandler struct {
	sendUC usecases_port.SendChatMessageUseCase
}

func NewChatHandler(sendUC usecases_port.SendChatMessageUseCase) *ChatHandler {
	return &ChatHandler{sendUC: sendUC}
}

// SendMessage обрабатывает POST /api/v1/chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SendMessage"})

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		WriteJSONError(w, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	answer, err := h.sendUC.Execute(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrChatbotUnavailable) {
			WriteJSONError(w, http.StatusServiceUnavailable, "Chatbot is temporarily unavailable")
			return
		}
		logger.Error("Chat use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	RespondWithJSON(w, http.StatusOK, ChatResponse{Response: answer})
}
