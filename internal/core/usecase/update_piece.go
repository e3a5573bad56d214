package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// UpdatePieceUseCase - обновление объявления. Мутация возможна
// только владельцем; обновление всегда производит новую сущность
// через фабрику, частичных правок нет.
type UpdatePieceUseCase struct {
	storage port.PieceStoragePort
	events  port.PieceEventsPort
}

func NewUpdatePieceUseCase(storage port.PieceStoragePort, events port.PieceEventsPort) *UpdatePieceUseCase {
	return &UpdatePieceUseCase{storage: storage, events: events}
}

func (uc *UpdatePieceUseCase) Execute(ctx context.Context, rec domain.PieceRecord, actorID uuid.UUID) (*domain.Piece, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdatePiece",
		"piece_id": rec.ID,
		"actor_id": actorID.String(),
	})

	ucLogger.Info("Use case started", nil)

	piece, err := domain.MakePiece(rec)
	if err != nil {
		ucLogger.Warn("Factory rejected the record", port.Fields{"error": err.Error()})
		return nil, err
	}

	existing, err := uc.storage.GetByID(ctx, piece.ID)
	if err != nil {
		ucLogger.Error("Storage failed while loading existing piece", err, nil)
		return nil, err
	}
	if existing == nil {
		ucLogger.Warn("Update rejected: piece not found", nil)
		return nil, domain.ErrPieceNotFound
	}
	if existing.UserID != actorID {
		ucLogger.Warn("Update rejected: actor is not the owner", nil)
		return nil, domain.ErrNotPieceOwner
	}

	// Владельца сменить нельзя.
	piece.UserID = existing.UserID
	piece.CreatedAt = existing.CreatedAt

	if err := uc.storage.Update(ctx, piece); err != nil {
		ucLogger.Error("Storage failed to update piece", err, nil)
		return nil, err
	}

	if uc.events != nil && existing.Status != piece.Status {
		if err := uc.events.PieceStatusChanged(ctx, piece); err != nil {
			ucLogger.Warn("Failed to publish piece.status_changed event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished: piece updated", nil)
	return piece, nil
}
