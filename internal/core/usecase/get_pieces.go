package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// GetPiecesUseCase возвращает полный список активных объявлений.
// Чтение для конечного пользователя - fail-soft.
type GetPiecesUseCase struct {
	storage port.PieceStoragePort
}

func NewGetPiecesUseCase(storage port.PieceStoragePort) *GetPiecesUseCase {
	return &GetPiecesUseCase{storage: storage}
}

func (uc *GetPiecesUseCase) Execute(ctx context.Context) ([]domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPieces"})

	ucLogger.Info("Use case started", nil)

	pieces, err := uc.storage.GetAll(ctx)
	if err != nil {
		ucLogger.Warn("Storage failed, degrading to empty result", port.Fields{"error": err.Error()})
		return []domain.Piece{}, nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(pieces)})
	return pieces, nil
}
