package usecase

import (
	"context"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"

	"github.com/google/uuid"
)

// GetUserFavoritesUseCase - страница избранного, обогащенная карточками
// объявлений из хранилища.
type GetUserFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
	pieces    port.PieceStoragePort
}

func NewGetUserFavoritesUseCase(favorites port.FavoritesRepositoryPort, pieces port.PieceStoragePort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{favorites: favorites, pieces: pieces}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedFavorites, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID.String(),
		"limit":    limit,
		"offset":   offset,
	})

	ucLogger.Info("Use case started", nil)

	// Хендлер подставляет лимит по умолчанию, но use case - публичная
	// точка входа и сам защищается от деления на ноль.
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	ids, total, err := uc.favorites.FindPaginatedByUser(ctx, userID, limit, offset)
	if err != nil {
		ucLogger.Error("Repository failed to fetch favorite IDs", err, nil)
		return nil, err
	}

	result := &domain.PaginatedFavorites{
		Pieces:       []domain.Piece{},
		TotalCount:   total,
		CurrentPage:  offset/limit + 1,
		ItemsPerPage: limit,
	}

	if len(ids) > 0 {
		pieces, err := uc.pieces.GetByIDs(ctx, ids)
		if err != nil {
			ucLogger.Error("Storage failed to fetch favorite pieces", err, nil)
			return nil, err
		}

		// Сохраняем порядок страницы (новые отметки первыми).
		byID := make(map[uuid.UUID]domain.Piece, len(pieces))
		for _, p := range pieces {
			byID[p.ID] = p
		}
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				result.Pieces = append(result.Pieces, p)
			}
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total":   total,
		"on_page": len(result.Pieces),
	})
	return result, nil
}
