package usecase

import (
	"context"
	"fmt"
	"strings"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/port"
)

// SendChatMessageUseCase - пересылка одного сообщения внешнему чатботу.
type SendChatMessageUseCase struct {
	chatbot port.ChatbotPort
}

func NewSendChatMessageUseCase(chatbot port.ChatbotPort) *SendChatMessageUseCase {
	return &SendChatMessageUseCase{chatbot: chatbot}
}

func (uc *SendChatMessageUseCase) Execute(ctx context.Context, message string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SendChatMessage",
	})

	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message cannot be empty")
	}

	ucLogger.Info("Use case started", port.Fields{"message_len": len(message)})

	reply, err := uc.chatbot.SendMessage(ctx, message)
	if err != nil {
		ucLogger.Error("Chatbot request failed", err, nil)
		return "", err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"reply_len": len(reply)})
	return reply, nil
}
