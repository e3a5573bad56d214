package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
	pieces    port.PieceStoragePort
}

func NewAddToFavoritesUseCase(favorites port.FavoritesRepositoryPort, pieces port.PieceStoragePort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{favorites: favorites, pieces: pieces}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID, pieceID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "AddToFavorites",
		"user_id":  userID.String(),
		"piece_id": pieceID.String(),
	})

	ucLogger.Info("Use case started", nil)

	// Нельзя добавить в избранное несуществующее объявление.
	piece, err := uc.pieces.GetByID(ctx, pieceID)
	if err != nil {
		ucLogger.Error("Storage failed while checking piece", err, nil)
		return err
	}
	if piece == nil {
		ucLogger.Warn("Add rejected: piece not found", nil)
		return domain.ErrPieceNotFound
	}

	if err := uc.favorites.Add(ctx, userID, pieceID); err != nil {
		ucLogger.Error("Repository failed to add favorite", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: added to favorites", nil)
	return nil
}
