package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

type RemoveFromFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewRemoveFromFavoritesUseCase(favorites port.FavoritesRepositoryPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{favorites: favorites}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, userID, pieceID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RemoveFromFavorites",
		"user_id":  userID.String(),
		"piece_id": pieceID.String(),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.favorites.Remove(ctx, userID, pieceID); err != nil {
		ucLogger.Error("Repository failed to remove favorite", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: removed from favorites", nil)
	return nil
}
