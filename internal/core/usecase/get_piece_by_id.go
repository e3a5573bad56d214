package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// GetPieceByIDUseCase - деталка объявления. Fail-soft: ошибка бэкенда
// деградирует до "не найдено".
type GetPieceByIDUseCase struct {
	storage port.PieceStoragePort
}

func NewGetPieceByIDUseCase(storage port.PieceStoragePort) *GetPieceByIDUseCase {
	return &GetPieceByIDUseCase{storage: storage}
}

func (uc *GetPieceByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPieceByID",
		"piece_id": id.String(),
	})

	ucLogger.Info("Use case started", nil)

	piece, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Storage failed, degrading to not-found", port.Fields{"error": err.Error()})
		return nil, domain.ErrPieceNotFound
	}
	if piece == nil {
		return nil, domain.ErrPieceNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return piece, nil
}
