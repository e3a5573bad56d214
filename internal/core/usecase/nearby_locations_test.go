package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"handmedown-service/internal/core/domain"
)

// stubLocationStorage реализует LocationStoragePort и запоминает
// переданные префиксы geohash.
type stubLocationStorage struct {
	locations  []domain.Location
	err        error
	gotPrefix  []string
	prefixCall int
}

func (s *stubLocationStorage) GetAll(ctx context.Context) ([]domain.Location, error) {
	return s.locations, s.err
}
func (s *stubLocationStorage) GetByID(ctx context.Context, id domain.LocationID) (*domain.Location, error) {
	return nil, domain.ErrLocationNotFound
}
func (s *stubLocationStorage) Create(ctx context.Context, loc *domain.Location) (domain.LocationID, error) {
	return 0, nil
}
func (s *stubLocationStorage) Update(ctx context.Context, loc *domain.Location) error { return nil }
func (s *stubLocationStorage) Delete(ctx context.Context, id domain.LocationID) error { return nil }
func (s *stubLocationStorage) FindByGeohashPrefixes(ctx context.Context, prefixes []string) ([]domain.Location, error) {
	s.prefixCall++
	s.gotPrefix = prefixes
	return s.locations, s.err
}

func testLocation(t *testing.T, id int64, lat, lon float64) domain.Location {
	t.Helper()
	loc, err := domain.LocationFromRecord(domain.LocationRecord{
		ID:        id,
		Name:      "Drop-off Point",
		Latitude:  lat,
		Longitude: lon,
		Address:   "101 Calle Post, Mayaguez",
		StoreHours: map[string]domain.DayHours{
			"monday": {Open: "09:00", Close: "17:00"},
		},
	})
	if err != nil {
		t.Fatalf("testLocation: %v", err)
	}
	return *loc
}

func TestNearbyLocationsFiltersByExactDistance(t *testing.T) {
	// Центр - кампус в Маягуэсе; одна точка в паре сотен метров,
	// другая примерно в 30 км.
	near := testLocation(t, 1, 18.2110, -67.1400)
	far := testLocation(t, 2, 18.4655, -66.9) // ~35 км к северо-востоку

	storage := &stubLocationStorage{locations: []domain.Location{near, far}}
	uc := NewNearbyLocationsUseCase(storage)

	got, err := uc.Execute(context.Background(), 18.2106, -67.1396, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1", len(got))
	}
	if got[0].Location.ID != near.ID {
		t.Errorf("got location %d, want %d", got[0].Location.ID, near.ID)
	}
	if got[0].DistanceKm <= 0 || got[0].DistanceKm > 5 {
		t.Errorf("distance %v out of expected range", got[0].DistanceKm)
	}
}

func TestNearbyLocationsPrefixesCoverCenterAndNeighbors(t *testing.T) {
	storage := &stubLocationStorage{}
	uc := NewNearbyLocationsUseCase(storage)

	if _, err := uc.Execute(context.Background(), 18.21, -67.14, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Ячейка центра плюс восемь соседей.
	if len(storage.gotPrefix) != 9 {
		t.Fatalf("got %d prefixes, want 9", len(storage.gotPrefix))
	}
	// Радиус 5 км попадает в ступень точности 4.
	for _, p := range storage.gotPrefix {
		if len(p) != 4 {
			t.Errorf("prefix %q has precision %d, want 4", p, len(p))
		}
	}
}

func TestGeohashPrecisionForRadius(t *testing.T) {
	tests := []struct {
		radiusKm float64
		want     uint
	}{
		{0.5, 6},
		{0.6, 6},
		{1, 5},
		{15, 4},
		{50, 3},
		{400, 2},
		{1000, 1},
	}
	for _, tt := range tests {
		if got := geohashPrecisionForRadius(tt.radiusKm); got != tt.want {
			t.Errorf("geohashPrecisionForRadius(%v) = %d, want %d", tt.radiusKm, got, tt.want)
		}
	}
}

// Нулевой или отрицательный радиус заменяется радиусом по умолчанию (10 км),
// что видно по ступени точности префиксов.
func TestNearbyLocationsDefaultRadius(t *testing.T) {
	storage := &stubLocationStorage{}
	uc := NewNearbyLocationsUseCase(storage)

	if _, err := uc.Execute(context.Background(), 18.21, -67.14, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(storage.gotPrefix) == 0 || len(storage.gotPrefix[0]) != 4 {
		t.Errorf("prefixes %v, want precision 4 for default radius", storage.gotPrefix)
	}
}

func TestNearbyLocationsRejectsBadCoordinates(t *testing.T) {
	uc := NewNearbyLocationsUseCase(&stubLocationStorage{})

	if _, err := uc.Execute(context.Background(), 95, -67.14, 5); err == nil {
		t.Error("latitude 95 accepted")
	}
	if _, err := uc.Execute(context.Background(), 18.21, 190, 5); err == nil {
		t.Error("longitude 190 accepted")
	}
}

func TestNearbyLocationsFailsLoudOnStorageError(t *testing.T) {
	storageErr := errors.New("timeout")
	uc := NewNearbyLocationsUseCase(&stubLocationStorage{err: storageErr})

	_, err := uc.Execute(context.Background(), 18.21, -67.14, 5)
	if !errors.Is(err, storageErr) {
		t.Fatalf("err = %v, want %v", err, storageErr)
	}
}

func TestHaversineKm(t *testing.T) {
	// Расстояние от точки до самой себя равно нулю.
	if d := haversineKm(18.21, -67.14, 18.21, -67.14); d != 0 {
		t.Errorf("self-distance = %v, want 0", d)
	}
	// Один градус долготы на экваторе - около 111.19 км.
	d := haversineKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.5 {
		t.Errorf("equator degree = %v km, want ~111.19", d)
	}
}
