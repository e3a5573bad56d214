package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// DeletePieceUseCase - удаление объявления владельцем.
// Каскадно удаляет сохраненные изображения.
type DeletePieceUseCase struct {
	storage port.PieceStoragePort
	images  port.ImageStoragePort
}

func NewDeletePieceUseCase(storage port.PieceStoragePort, images port.ImageStoragePort) *DeletePieceUseCase {
	return &DeletePieceUseCase{storage: storage, images: images}
}

func (uc *DeletePieceUseCase) Execute(ctx context.Context, id, actorID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeletePiece",
		"piece_id": id.String(),
		"actor_id": actorID.String(),
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage failed while loading piece", err, nil)
		return err
	}
	if existing == nil {
		ucLogger.Warn("Delete rejected: piece not found", nil)
		return domain.ErrPieceNotFound
	}
	if existing.UserID != actorID {
		ucLogger.Warn("Delete rejected: actor is not the owner", nil)
		return domain.ErrNotPieceOwner
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage failed to delete piece", err, nil)
		return err
	}

	// Изображения удаляем после строки: осиротевший файл безопаснее,
	// чем объявление без изображений.
	if uc.images != nil {
		if err := uc.images.RemoveAll(ctx, id); err != nil {
			ucLogger.Warn("Failed to remove piece images", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: piece deleted", nil)
	return nil
}
