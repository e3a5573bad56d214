package port

import (
	"context"
	"handmedown-service/internal/core/domain"
)

// PieceEventsPort - публикация событий жизненного цикла объявления.
// Ошибки публикации логируются вызывающим кодом и не проваливают запись.
type PieceEventsPort interface {
	PieceCreated(ctx context.Context, piece *domain.Piece) error
	PieceStatusChanged(ctx context.Context, piece *domain.Piece) error
}
