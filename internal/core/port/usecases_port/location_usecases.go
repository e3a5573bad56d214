package usecases_port

import (
	"context"
	"handmedown-service/internal/core/domain"
)

type GetLocationsUseCase interface {
	Execute(ctx context.Context) ([]domain.Location, error)
}

type GetLocationByIDUseCase interface {
	Execute(ctx context.Context, id domain.LocationID) (*domain.Location, error)
}

type CreateLocationUseCase interface {
	Execute(ctx context.Context, rec domain.LocationRecord) (*domain.Location, error)
}

type UpdateLocationUseCase interface {
	Execute(ctx context.Context, rec domain.LocationRecord) (*domain.Location, error)
}

type DeleteLocationUseCase interface {
	Execute(ctx context.Context, id domain.LocationID) error
}

// LocationWithDistance - пункт приема вместе с расстоянием до пользователя.
type LocationWithDistance struct {
	Location   domain.Location
	DistanceKm float64
}

type NearbyLocationsUseCase interface {
	Execute(ctx context.Context, lat, lon, radiusKm float64) ([]LocationWithDistance, error)
}
