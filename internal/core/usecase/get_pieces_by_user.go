package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// GetPiecesByUserUseCase - объявления конкретного пользователя. Fail-soft.
type GetPiecesByUserUseCase struct {
	storage port.PieceStoragePort
}

func NewGetPiecesByUserUseCase(storage port.PieceStoragePort) *GetPiecesByUserUseCase {
	return &GetPiecesByUserUseCase{storage: storage}
}

func (uc *GetPiecesByUserUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPiecesByUser",
		"user_id":  userID.String(),
	})

	ucLogger.Info("Use case started", nil)

	pieces, err := uc.storage.GetByUser(ctx, userID)
	if err != nil {
		ucLogger.Warn("Storage failed, degrading to empty result", port.Fields{"error": err.Error()})
		return []domain.Piece{}, nil
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(pieces)})
	return pieces, nil
}
