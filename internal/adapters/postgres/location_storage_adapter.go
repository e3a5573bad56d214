package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"handmedown-service/internal/core/domain"
)

const storeColumns = `id, name, latitude, longitude, address, store_hours, contact_info, description, image`

// Точность геохеша при записи. Хранится полная точность,
// поиск идет по префиксам произвольной длины.
const storedGeohashPrecision = 12

type LocationStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewLocationStorageAdapter(pool *pgxpool.Pool) *LocationStorageAdapter {
	return &LocationStorageAdapter{pool: pool}
}

// scanLocation собирает запись таблицы и валидирует ее доменной фабрикой:
// битая строка не превращается в частично заполненный агрегат.
func scanLocation(row pgx.Row) (*domain.Location, error) {
	var (
		rec      domain.LocationRecord
		hoursRaw []byte
	)

	err := row.Scan(
		&rec.ID, &rec.Name, &rec.Latitude, &rec.Longitude, &rec.Address,
		&hoursRaw, &rec.ContactInfo, &rec.Description, &rec.Image,
	)
	if err != nil {
		return nil, err
	}

	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &rec.StoreHours); err != nil {
			return nil, fmt.Errorf("invalid persistence record: malformed store hours: %w", err)
		}
	}

	return domain.LocationFromRecord(rec)
}

func (a *LocationStorageAdapter) queryLocations(ctx context.Context, query string, args ...interface{}) ([]domain.Location, error) {
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, *location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}

	return locations, nil
}

func (a *LocationStorageAdapter) GetAll(ctx context.Context) ([]domain.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM stores ORDER BY name`, storeColumns)
	return a.queryLocations(ctx, query)
}

// GetByID требует ровно одного совпадения: ноль строк - не найдено,
// больше одной - поврежденные данные, о которых нельзя молчать.
func (a *LocationStorageAdapter) GetByID(ctx context.Context, id domain.LocationID) (*domain.Location, error) {
	query := fmt.Sprintf(`SELECT %s FROM stores WHERE id = $1`, storeColumns)

	matches, err := a.queryLocations(ctx, query, int64(id))
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, domain.ErrLocationNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: id %d matches %d rows", domain.ErrLocationNotUnique, id, len(matches))
	}
}

func (a *LocationStorageAdapter) Create(ctx context.Context, location *domain.Location) (domain.LocationID, error) {
	rec := location.ToRecord()

	hoursRaw, err := json.Marshal(rec.StoreHours)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal store hours: %w", err)
	}

	query := `
		INSERT INTO stores (name, latitude, longitude, address, store_hours,
			contact_info, description, image, geohash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err = a.pool.QueryRow(ctx, query,
		rec.Name, rec.Latitude, rec.Longitude, rec.Address, hoursRaw,
		rec.ContactInfo, rec.Description, rec.Image,
		geohash.EncodeWithPrecision(rec.Latitude, rec.Longitude, storedGeohashPrecision),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert location: %w", err)
	}

	return domain.LocationID(id), nil
}

func (a *LocationStorageAdapter) Update(ctx context.Context, location *domain.Location) error {
	rec := location.ToRecord()

	hoursRaw, err := json.Marshal(rec.StoreHours)
	if err != nil {
		return fmt.Errorf("failed to marshal store hours: %w", err)
	}

	query := `
		UPDATE stores
		SET name = $2, latitude = $3, longitude = $4, address = $5, store_hours = $6,
			contact_info = $7, description = $8, image = $9, geohash = $10
		WHERE id = $1`

	tag, err := a.pool.Exec(ctx, query,
		rec.ID, rec.Name, rec.Latitude, rec.Longitude, rec.Address, hoursRaw,
		rec.ContactInfo, rec.Description, rec.Image,
		geohash.EncodeWithPrecision(rec.Latitude, rec.Longitude, storedGeohashPrecision),
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

func (a *LocationStorageAdapter) Delete(ctx context.Context, id domain.LocationID) error {
	tag, err := a.pool.Exec(ctx, `DELETE FROM stores WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

// FindByGeohashPrefixes - грубый геофильтр: отбирает магазины, чей геохеш
// начинается с одного из префиксов. Точная дистанция считается выше.
func (a *LocationStorageAdapter) FindByGeohashPrefixes(ctx context.Context, prefixes []string) ([]domain.Location, error) {
	if len(prefixes) == 0 {
		return []domain.Location{}, nil
	}

	patterns := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		patterns = append(patterns, prefix+"%")
	}

	query := fmt.Sprintf(`SELECT %s FROM stores WHERE geohash LIKE ANY($1)`, storeColumns)
	return a.queryLocations(ctx, query, patterns)
}
