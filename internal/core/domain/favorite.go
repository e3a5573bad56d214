package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite - отметка "избранное" пользователя на объявлении.
type Favorite struct {
	UserID    uuid.UUID
	PieceID   uuid.UUID
	CreatedAt time.Time
}

// PaginatedFavorites - страница избранных объявлений пользователя.
type PaginatedFavorites struct {
	Pieces       []Piece
	TotalCount   int64
	CurrentPage  int
	ItemsPerPage int
}
