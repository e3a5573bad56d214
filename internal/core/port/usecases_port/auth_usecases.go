package usecases_port

import (
	"context"
	"handmedown-service/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}

type LoginUserUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.User, string, error)
}

type ValidateTokenUseCasePort interface {
	Execute(ctx context.Context, token string) (*domain.Claims, error)
}

type SendChatMessageUseCase interface {
	Execute(ctx context.Context, message string) (string, error)
}
