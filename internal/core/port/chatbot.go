package port

import "context"

// ChatbotPort - внешний HTTP-чатбот.
type ChatbotPort interface {
	SendMessage(ctx context.Context, message string) (string, error)
}
