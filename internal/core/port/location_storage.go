package port

import (
	"context"
	"handmedown-service/internal/core/domain"
)

// LocationStoragePort - хранилище пунктов приема. В отличие от чтения
// объявлений, все операции здесь fail-loud: мутации выполняет оператор,
// и ошибки бэкенда должны быть видны сразу.
type LocationStoragePort interface {
	GetAll(ctx context.Context) ([]domain.Location, error)

	// GetByID требует уникальности: ноль или больше одной строки - ошибка.
	GetByID(ctx context.Context, id domain.LocationID) (*domain.Location, error)

	Create(ctx context.Context, loc *domain.Location) (domain.LocationID, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id domain.LocationID) error

	// FindByGeohashPrefixes возвращает кандидатов, чей geohash начинается
	// с одного из префиксов (ячейка центра и ее соседи).
	FindByGeohashPrefixes(ctx context.Context, prefixes []string) ([]domain.Location, error)
}
