package usecases_port

import (
	"context"
	"handmedown-service/internal/core/domain"
	"io"

	"github.com/google/uuid"
)

type GetPiecesUseCase interface {
	Execute(ctx context.Context) ([]domain.Piece, error)
}

type GetPieceByIDUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Piece, error)
}

type GetPiecesByUserUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Piece, error)
}

type CreatePieceUseCase interface {
	Execute(ctx context.Context, rec domain.PieceRecord) (*domain.Piece, error)
}

type UpdatePieceUseCase interface {
	Execute(ctx context.Context, rec domain.PieceRecord, actorID uuid.UUID) (*domain.Piece, error)
}

type DeletePieceUseCase interface {
	Execute(ctx context.Context, id, actorID uuid.UUID) error
}

type FilterPiecesUseCase interface {
	Execute(ctx context.Context, filters domain.PieceFilters) ([]domain.Piece, error)
}

// ImageUpload - один файл из пакета загрузки.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

type UploadPieceImagesUseCase interface {
	Execute(ctx context.Context, pieceID, actorID uuid.UUID, files []ImageUpload) ([]string, error)
}
