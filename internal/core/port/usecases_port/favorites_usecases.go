package usecases_port

import (
	"context"
	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase interface {
	Execute(ctx context.Context, userID, pieceID uuid.UUID) error
}

type RemoveFromFavoritesUseCase interface {
	Execute(ctx context.Context, userID, pieceID uuid.UUID) error
}

type GetUserFavoritesUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedFavorites, error)
}

type GetUserFavoritesIDsUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
