package usecase

import (
	"context"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
)

// Мутации пунктов приема выполняет оператор - в отличие от чтения
// объявлений, эти операции намеренно fail-loud: любая ошибка бэкенда
// возвращается вызывающему немедленно.

type CreateLocationUseCase struct {
	storage port.LocationStoragePort
}

func NewCreateLocationUseCase(storage port.LocationStoragePort) *CreateLocationUseCase {
	return &CreateLocationUseCase{storage: storage}
}

func (uc *CreateLocationUseCase) Execute(ctx context.Context, rec domain.LocationRecord) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateLocation",
		"name":     rec.Name,
	})

	ucLogger.Info("Use case started", nil)

	// У новой записи еще нет идентификатора - его выдаст хранилище.
	// Валидируем остальные поля, подставив заведомо валидную заглушку.
	rec.ID = 1
	location, err := domain.LocationFromRecord(rec)
	if err != nil {
		ucLogger.Warn("Location record rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	id, err := uc.storage.Create(ctx, location)
	if err != nil {
		ucLogger.Error("Storage failed to create location", err, nil)
		return nil, err
	}
	location.ID = id

	ucLogger.Info("Use case finished: location created", port.Fields{"location_id": int64(id)})
	return location, nil
}

type UpdateLocationUseCase struct {
	storage port.LocationStoragePort
}

func NewUpdateLocationUseCase(storage port.LocationStoragePort) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{storage: storage}
}

func (uc *UpdateLocationUseCase) Execute(ctx context.Context, rec domain.LocationRecord) (*domain.Location, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateLocation",
		"location_id": rec.ID,
	})

	ucLogger.Info("Use case started", nil)

	// Частичных правок нет - агрегат пересобирается и пишется целиком.
	location, err := domain.LocationFromRecord(rec)
	if err != nil {
		ucLogger.Warn("Location record rejected", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.storage.Update(ctx, location); err != nil {
		ucLogger.Error("Storage failed to update location", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: location updated", nil)
	return location, nil
}

type DeleteLocationUseCase struct {
	storage port.LocationStoragePort
}

func NewDeleteLocationUseCase(storage port.LocationStoragePort) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{storage: storage}
}

func (uc *DeleteLocationUseCase) Execute(ctx context.Context, id domain.LocationID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteLocation",
		"location_id": int64(id),
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage failed to delete location", err, nil)
		return err
	}

	ucLogger.Info("Use case finished: location deleted", nil)
	return nil
}
