package usecases_port

import (
	"context"
	"handmedown-service/internal/core/domain"
)

type SearchPiecesUseCase interface {
	Execute(ctx context.Context, query string) ([]domain.Piece, error)
}

type GetDictionariesUseCase interface {
	Execute(ctx context.Context) (*domain.Dictionaries, error)
}
