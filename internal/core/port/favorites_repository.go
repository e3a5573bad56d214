package port

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort - хранилище отметок "избранное".
type FavoritesRepositoryPort interface {
	// Add идемпотентен: повторное добавление не является ошибкой.
	Add(ctx context.Context, userID, pieceID uuid.UUID) error
	Remove(ctx context.Context, userID, pieceID uuid.UUID) error

	FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FindPaginatedByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]uuid.UUID, int64, error)
}
