package usecase

import (
	"context"
	"fmt"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// CreatePieceUseCase - создание объявления из данных формы.
// Путь записи - fail-loud: ошибки хранилища возвращаются вызывающему.
type CreatePieceUseCase struct {
	storage port.PieceStoragePort
	events  port.PieceEventsPort
}

func NewCreatePieceUseCase(storage port.PieceStoragePort, events port.PieceEventsPort) *CreatePieceUseCase {
	return &CreatePieceUseCase{storage: storage, events: events}
}

func (uc *CreatePieceUseCase) Execute(ctx context.Context, rec domain.PieceRecord) (*domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreatePiece",
		"name":     rec.Name,
	})

	ucLogger.Info("Use case started", nil)

	if rec.UserID == "" {
		ucLogger.Warn("Create rejected: empty user id", nil)
		return nil, fmt.Errorf("user id is required")
	}

	// Фабрика выбирает вариант (продажа/пожертвование) и валидирует
	// перечисления; нераспознанное значение проваливает весь вызов.
	piece, err := domain.MakePiece(rec)
	if err != nil {
		ucLogger.Warn("Factory rejected the record", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Create(ctx, piece); err != nil {
		ucLogger.Error("Storage failed to create piece", err, nil)
		return nil, err
	}

	ucLogger = ucLogger.WithFields(port.Fields{"piece_id": piece.ID.String()})

	// Публикация события не должна проваливать уже состоявшуюся запись.
	if uc.events != nil {
		if err := uc.events.PieceCreated(ctx, piece); err != nil {
			ucLogger.Warn("Failed to publish piece.created event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: piece created", nil)
	return piece, nil
}
