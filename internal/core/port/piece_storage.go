package port

import (
	"context"
	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

// PieceStoragePort - единственная граница между доменными сущностями
// объявлений и постоянным хранилищем. Все методы единообразно возвращают
// (значение, ошибка); политика fail-soft/fail-loud применяется в use case'ах.
type PieceStoragePort interface {
	GetAll(ctx context.Context) ([]domain.Piece, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Piece, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Piece, error)

	Create(ctx context.Context, piece *domain.Piece) error
	Update(ctx context.Context, piece *domain.Piece) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Filter выполняет выборку по разреженному набору критериев.
	Filter(ctx context.Context, filters domain.PieceFilters) ([]domain.Piece, error)

	// GetByIDs возвращает объявления по списку идентификаторов (для избранного).
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Piece, error)
}

// PieceSearchPort - выборка объявлений, у которых заданное поле
// содержит слово (partial match). Используется поисковым движком.
type PieceSearchPort interface {
	SearchField(ctx context.Context, field domain.SearchField, word string) ([]domain.Piece, error)
}
