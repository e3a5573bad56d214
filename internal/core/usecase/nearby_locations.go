package usecase

import (
	"context"
	"math"

	"handmedown-service/internal/constants"
	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"

	"github.com/mmcloughlin/geohash"
)

// NearbyLocationsUseCase - пункты приема в заданном радиусе от пользователя.
// Сначала грубая выборка кандидатов по префиксам geohash (ячейка центра
// и восемь соседей), затем точная фильтрация формулой гаверсинусов.
type NearbyLocationsUseCase struct {
	storage port.LocationStoragePort
}

func NewNearbyLocationsUseCase(storage port.LocationStoragePort) *NearbyLocationsUseCase {
	return &NearbyLocationsUseCase{storage: storage}
}

func (uc *NearbyLocationsUseCase) Execute(ctx context.Context, lat, lon, radiusKm float64) ([]usecases_port.LocationWithDistance, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "NearbyLocations",
		"radius_km": radiusKm,
	})

	if _, err := domain.NewLatitude(lat); err != nil {
		return nil, err
	}
	if _, err := domain.NewLongitude(lon); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = constants.DefaultNearbyRadiusKm
	}

	ucLogger.Info("Use case started", nil)

	precision := geohashPrecisionForRadius(radiusKm)
	center := geohash.EncodeWithPrecision(lat, lon, precision)
	neighbors := geohash.Neighbors(center)
	prefixes := append([]string{center}, neighbors...)

	candidates, err := uc.storage.FindByGeohashPrefixes(ctx, prefixes)
	if err != nil {
		ucLogger.Error("Storage failed to fetch candidates", err, nil)
		return nil, err
	}

	result := make([]usecases_port.LocationWithDistance, 0, len(candidates))
	for _, loc := range candidates {
		d := haversineKm(lat, lon, float64(loc.Latitude), float64(loc.Longitude))
		if d <= radiusKm {
			result = append(result, usecases_port.LocationWithDistance{Location: loc, DistanceKm: d})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{
		"candidates": len(candidates),
		"in_radius":  len(result),
	})
	return result, nil
}

// geohashPrecisionForRadius подбирает длину префикса так, чтобы ячейка
// вместе с соседями гарантированно накрывала круг радиуса radiusKm.
func geohashPrecisionForRadius(radiusKm float64) uint {
	switch {
	case radiusKm <= 0.6:
		return 6
	case radiusKm <= 2.4:
		return 5
	case radiusKm <= 20:
		return 4
	case radiusKm <= 78:
		return 3
	case radiusKm <= 630:
		return 2
	default:
		return 1
	}
}

// haversineKm - расстояние по большому кругу между двумя точками.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return constants.EarthRadiusKm * c
}
