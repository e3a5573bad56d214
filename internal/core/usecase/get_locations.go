package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// GetLocationsUseCase - полный список пунктов приема для карты.
type GetLocationsUseCase struct {
	storage port.LocationStoragePort
}

func NewGetLocationsUseCase(storage port.LocationStoragePort) *GetLocationsUseCase {
	return &GetLocationsUseCase{storage: storage}
}

func (uc *GetLocationsUseCase) Execute(ctx context.Context) ([]domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetLocations"})

	ucLogger.Info("Use case started", nil)

	locations, err := uc.storage.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(locations)})
	return locations, nil
}

// GetLocationByIDUseCase - один пункт приема; ноль или несколько строк - ошибка.
type GetLocationByIDUseCase struct {
	storage port.LocationStoragePort
}

func NewGetLocationByIDUseCase(storage port.LocationStoragePort) *GetLocationByIDUseCase {
	return &GetLocationByIDUseCase{storage: storage}
}

func (uc *GetLocationByIDUseCase) Execute(ctx context.Context, id domain.LocationID) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetLocationByID",
		"location_id": int64(id),
	})

	ucLogger.Info("Use case started", nil)

	location, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return location, nil
}
