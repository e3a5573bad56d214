package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// GetUserFavoritesIDsUseCase - только идентификаторы; фронтенд подсвечивает
// сердечки в списках без загрузки самих карточек.
type GetUserFavoritesIDsUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewGetUserFavoritesIDsUseCase(favorites port.FavoritesRepositoryPort) *GetUserFavoritesIDsUseCase {
	return &GetUserFavoritesIDsUseCase{favorites: favorites}
}

func (uc *GetUserFavoritesIDsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavoritesIDs",
		"user_id":  userID.String(),
	})

	ucLogger.Info("Use case started", nil)

	ids, err := uc.favorites.FindIDsByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository failed to fetch favorite IDs", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(ids)})
	return ids, nil
}
