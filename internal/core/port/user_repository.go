package port

import (
	"context"
	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort - хранилище пользователей (таблица profiles).
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail возвращает (nil, nil), если пользователь не найден.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
