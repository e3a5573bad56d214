package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) *FavoritesRepository {
	return &FavoritesRepository{pool: pool}
}

// Add идемпотентен: конфликт уникальности означает, что отметка
// уже стоит, и ошибкой не считается.
func (r *FavoritesRepository) Add(ctx context.Context, userID, pieceID uuid.UUID) error {
	query := `INSERT INTO user_favorites (user_id, piece_id, created_at) VALUES ($1, $2, NOW())`

	_, err := r.pool.Exec(ctx, query, userID, pieceID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove тоже идемпотентен: снятие несуществующей отметки - no-op.
func (r *FavoritesRepository) Remove(ctx context.Context, userID, pieceID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND piece_id = $2`

	if _, err := r.pool.Exec(ctx, query, userID, pieceID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *FavoritesRepository) FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT piece_id FROM user_favorites WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorite ids: %w", err)
	}

	return ids, nil
}

// FindPaginatedByUser возвращает страницу идентификаторов и общее
// количество отметок одним запросом (оконная функция COUNT(*) OVER()).
func (r *FavoritesRepository) FindPaginatedByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]uuid.UUID, int64, error) {
	query := `
		SELECT piece_id, COUNT(*) OVER() AS total_count
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query paginated favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0, limit)
	var total int64
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan paginated favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating paginated favorites: %w", err)
	}

	return ids, total, nil
}
