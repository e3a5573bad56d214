package chatbot_adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// Client - адаптер внешнего HTTP-чатбота. Общается с ним по простому
// контракту: POST {"message": ...} -> {"response": ...} либо {"error": ...}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("chatbot base URL is required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type chatRequestDTO struct {
	Message string `json:"message"`
}

type chatResponseDTO struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// SendMessage пересылает сообщение пользователя чатботу. Любой сбой
// транспорта или невалидный ответ схлопывается в ErrChatbotUnavailable:
// для пользователя бот либо ответил, либо недоступен.
func (c *Client) SendMessage(ctx context.Context, message string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ChatbotClient",
	})

	body, err := json.Marshal(chatRequestDTO{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Chatbot request failed", err, nil)
		return "", domain.ErrChatbotUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Chatbot returned non-200 status", nil, port.Fields{"status": resp.StatusCode})
		return "", domain.ErrChatbotUnavailable
	}

	var dto chatResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		logger.Error("Failed to decode chatbot response", err, nil)
		return "", domain.ErrChatbotUnavailable
	}

	if dto.Error != "" {
		logger.Warn("Chatbot returned an error payload", port.Fields{"chatbot_error": dto.Error})
		return "", domain.ErrChatbotUnavailable
	}

	return dto.Response, nil
}
