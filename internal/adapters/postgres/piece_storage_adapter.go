package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"handmedown-service/internal/core/domain"
)

const pieceColumns = `id, name, category, color, brand, gender, size, price,
	condition, reason, images, user_id, status, donation_center_id, created_at, updated_at`

// Белый список полей для пословного поиска: имя поля домена -> колонка.
var searchColumns = map[domain.SearchField]string{
	domain.SearchFieldName:      "name",
	domain.SearchFieldCategory:  "category",
	domain.SearchFieldColor:     "color",
	domain.SearchFieldBrand:     "brand",
	domain.SearchFieldGender:    "gender",
	domain.SearchFieldSize:      "size",
	domain.SearchFieldCondition: "condition",
}

type PieceStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPieceStorageAdapter(pool *pgxpool.Pool) *PieceStorageAdapter {
	return &PieceStorageAdapter{pool: pool}
}

// scanPiece читает строку таблицы в сырую запись и прогоняет ее через
// доменную фабрику, чтобы битые значения не попали в модель.
func scanPiece(row pgx.Row) (*domain.Piece, error) {
	var (
		rec              domain.PieceRecord
		id, userID       uuid.UUID
		category, gender string
		size, condition  string
		status           *string
	)

	err := row.Scan(
		&id, &rec.Name, &category, &rec.Color, &rec.Brand, &gender, &size,
		&rec.Price, &condition, &rec.Reason, &rec.Images, &userID, &status,
		&rec.DonationCenterID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.ID = id.String()
	rec.UserID = userID.String()
	rec.Category = category
	rec.Gender = gender
	rec.Size = size
	rec.Condition = condition
	if status != nil {
		rec.Status = *status
	}

	return domain.MakePiece(rec)
}

func (a *PieceStorageAdapter) queryPieces(ctx context.Context, query string, args ...interface{}) ([]domain.Piece, error) {
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pieces: %w", err)
	}
	defer rows.Close()

	pieces := make([]domain.Piece, 0)
	for rows.Next() {
		piece, err := scanPiece(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan piece row: %w", err)
		}
		pieces = append(pieces, *piece)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating piece rows: %w", err)
	}

	return pieces, nil
}

func (a *PieceStorageAdapter) GetAll(ctx context.Context) ([]domain.Piece, error) {
	query := fmt.Sprintf(`SELECT %s FROM pieces WHERE status = 'ACTIVE' ORDER BY created_at DESC`, pieceColumns)
	return a.queryPieces(ctx, query)
}

func (a *PieceStorageAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Piece, error) {
	query := fmt.Sprintf(`SELECT %s FROM pieces WHERE id = $1`, pieceColumns)

	piece, err := scanPiece(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPieceNotFound
		}
		return nil, fmt.Errorf("failed to get piece by id: %w", err)
	}

	return piece, nil
}

func (a *PieceStorageAdapter) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Piece, error) {
	query := fmt.Sprintf(`SELECT %s FROM pieces WHERE user_id = $1 ORDER BY created_at DESC`, pieceColumns)
	return a.queryPieces(ctx, query, userID)
}

func (a *PieceStorageAdapter) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Piece, error) {
	if len(ids) == 0 {
		return []domain.Piece{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM pieces WHERE id = ANY($1)`, pieceColumns)
	return a.queryPieces(ctx, query, ids)
}

func (a *PieceStorageAdapter) Create(ctx context.Context, piece *domain.Piece) error {
	rec := domain.ToRecord(piece)
	now := time.Now().UTC()

	query := `
		INSERT INTO pieces (id, name, category, color, brand, gender, size, price,
			condition, reason, images, user_id, status, donation_center_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := a.pool.Exec(ctx, query,
		piece.ID, rec.Name, rec.Category, rec.Color, rec.Brand, rec.Gender, rec.Size,
		rec.Price, rec.Condition, rec.Reason, rec.Images, piece.UserID, rec.Status,
		rec.DonationCenterID, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert piece: %w", err)
	}

	piece.CreatedAt = now
	piece.UpdatedAt = now
	return nil
}

func (a *PieceStorageAdapter) Update(ctx context.Context, piece *domain.Piece) error {
	rec := domain.ToRecord(piece)
	now := time.Now().UTC()

	query := `
		UPDATE pieces
		SET name = $2, category = $3, color = $4, brand = $5, gender = $6, size = $7,
			price = $8, condition = $9, reason = $10, images = $11, status = $12,
			donation_center_id = $13, updated_at = $14
		WHERE id = $1`

	tag, err := a.pool.Exec(ctx, query,
		piece.ID, rec.Name, rec.Category, rec.Color, rec.Brand, rec.Gender, rec.Size,
		rec.Price, rec.Condition, rec.Reason, rec.Images, rec.Status,
		rec.DonationCenterID, now,
	)
	if err != nil {
		return fmt.Errorf("failed to update piece: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}

	piece.UpdatedAt = now
	return nil
}

func (a *PieceStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM pieces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete piece: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPieceNotFound
	}
	return nil
}

func (a *PieceStorageAdapter) Filter(ctx context.Context, filters domain.PieceFilters) ([]domain.Piece, error) {
	whereClause, args := applyPieceFilters(filters)
	query := fmt.Sprintf(`SELECT %s FROM pieces %s ORDER BY created_at DESC`, pieceColumns, whereClause)
	return a.queryPieces(ctx, query, args...)
}

// SearchField ищет одно слово в одном поле среди активных объявлений.
func (a *PieceStorageAdapter) SearchField(ctx context.Context, field domain.SearchField, word string) ([]domain.Piece, error) {
	column, ok := searchColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM pieces WHERE status = 'ACTIVE' AND %s ILIKE $1`,
		pieceColumns, column,
	)
	return a.queryPieces(ctx, query, "%"+word+"%")
}
