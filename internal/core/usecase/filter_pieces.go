package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// FilterPiecesUseCase - выборка по разреженному набору именованных критериев.
// Путь чтения для конечного пользователя: ошибки бэкенда деградируют
// до пустого списка (fail-soft политика).
type FilterPiecesUseCase struct {
	storage port.PieceStoragePort
}

func NewFilterPiecesUseCase(storage port.PieceStoragePort) *FilterPiecesUseCase {
	return &FilterPiecesUseCase{storage: storage}
}

func (uc *FilterPiecesUseCase) Execute(ctx context.Context, filters domain.PieceFilters) ([]domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FilterPieces",
	})

	ucLogger.Info("Use case started", nil)

	pieces, err := uc.storage.Filter(ctx, filters)
	if err != nil {
		ucLogger.Warn("Storage failed, degrading to empty result", port.Fields{"error": err.Error()})
		return []domain.Piece{}, nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"found": len(pieces)})
	return pieces, nil
}
