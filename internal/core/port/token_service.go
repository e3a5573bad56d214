package port

import (
	"context"
	"handmedown-service/internal/core/domain"
	"time"
)

// TokenServicePort - выпуск и проверка токенов доступа.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
