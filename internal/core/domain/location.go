package domain

import (
	"fmt"
	"strings"
	"time"
)

// Value objects для Location. Каждое поле проверяется собственным
// конструктором; агрегат не может существовать в невалидном состоянии.

// LocationID - числовой идентификатор пункта приема.
type LocationID int64

func NewLocationID(v int64) (LocationID, error) {
	if v <= 0 {
		return 0, fmt.Errorf("location id must be positive, got %d", v)
	}
	return LocationID(v), nil
}

// LocationName - непустое название.
type LocationName string

func NewLocationName(v string) (LocationName, error) {
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("location name cannot be empty")
	}
	return LocationName(v), nil
}

// Latitude - широта в диапазоне [-90, 90].
type Latitude float64

func NewLatitude(v float64) (Latitude, error) {
	if v < -90 || v > 90 {
		return 0, fmt.Errorf("latitude %v is out of range [-90, 90]", v)
	}
	return Latitude(v), nil
}

// Longitude - долгота в диапазоне [-180, 180].
type Longitude float64

func NewLongitude(v float64) (Longitude, error) {
	if v < -180 || v > 180 {
		return 0, fmt.Errorf("longitude %v is out of range [-180, 180]", v)
	}
	return Longitude(v), nil
}

// Address - непустой почтовый адрес.
type Address string

func NewAddress(v string) (Address, error) {
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("address cannot be empty")
	}
	return Address(v), nil
}

// ContactInfo - опциональный 10-значный номер телефона,
// нормализованный к виду NNN-NNN-NNNN. Пустая строка означает
// "контакта нет" и ошибкой не является.
type ContactInfo string

func NewContactInfo(raw string) (ContactInfo, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	digits := strings.ReplaceAll(trimmed, "-", "")
	if len(digits) != 10 {
		return "", fmt.Errorf("contact info must contain exactly 10 digits, got %q", raw)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("contact info must contain only digits, got %q", raw)
		}
	}

	return ContactInfo(digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10]), nil
}

// IsPresent сообщает, задан ли контакт.
func (c ContactInfo) IsPresent() bool { return c != "" }

// Description - опциональное описание; пробельная строка схлопывается в "нет".
type Description string

func NewDescription(v string) Description {
	return Description(strings.TrimSpace(v))
}

func (d Description) IsPresent() bool { return d != "" }

// ThumbnailURL - опциональная ссылка на превью.
type ThumbnailURL string

func NewThumbnailURL(v string) ThumbnailURL {
	return ThumbnailURL(strings.TrimSpace(v))
}

func (t ThumbnailURL) IsPresent() bool { return t != "" }

// DayHours - часы работы в один день недели, формат "15:04".
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// StoreHours - недельное расписание работы. Допустимы только
// полные названия дней недели в нижнем регистре.
type StoreHours struct {
	days map[string]DayHours
}

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func NewStoreHours(days map[string]DayHours) (StoreHours, error) {
	normalized := make(map[string]DayHours, len(days))
	for day, hours := range days {
		key := strings.ToLower(strings.TrimSpace(day))
		if !validWeekdays[key] {
			return StoreHours{}, fmt.Errorf("invalid weekday %q in store hours", day)
		}
		open, err := time.Parse("15:04", hours.Open)
		if err != nil {
			return StoreHours{}, fmt.Errorf("invalid opening time %q for %s", hours.Open, key)
		}
		close, err := time.Parse("15:04", hours.Close)
		if err != nil {
			return StoreHours{}, fmt.Errorf("invalid closing time %q for %s", hours.Close, key)
		}
		if !open.Before(close) {
			return StoreHours{}, fmt.Errorf("opening time %s must be before closing time %s on %s", hours.Open, hours.Close, key)
		}
		normalized[key] = hours
	}
	return StoreHours{days: normalized}, nil
}

// Days возвращает копию расписания.
func (s StoreHours) Days() map[string]DayHours {
	out := make(map[string]DayHours, len(s.days))
	for k, v := range s.days {
		out[k] = v
	}
	return out
}

// Location - пункт приема вещей (магазин). Собирается только целиком:
// ошибка в любом поле отклоняет весь агрегат.
type Location struct {
	ID          LocationID
	Name        LocationName
	Latitude    Latitude
	Longitude   Longitude
	Address     Address
	Hours       StoreHours
	Contact     ContactInfo
	Description Description
	Thumbnail   ThumbnailURL
}

// LocationRecord - плоская форма Location для чтения/записи в хранилище.
type LocationRecord struct {
	ID          int64
	Name        string
	Latitude    float64
	Longitude   float64
	Address     string
	StoreHours  map[string]DayHours
	ContactInfo string
	Description string
	Image       string
}

// LocationFromRecord - статическая фабрика: прогоняет каждое поле через
// его конструктор и отклоняет запись целиком при первой же ошибке.
func LocationFromRecord(rec LocationRecord) (*Location, error) {
	wrap := func(err error) error {
		return fmt.Errorf("invalid persistence record: %w", err)
	}

	id, err := NewLocationID(rec.ID)
	if err != nil {
		return nil, wrap(err)
	}
	name, err := NewLocationName(rec.Name)
	if err != nil {
		return nil, wrap(err)
	}
	lat, err := NewLatitude(rec.Latitude)
	if err != nil {
		return nil, wrap(err)
	}
	lon, err := NewLongitude(rec.Longitude)
	if err != nil {
		return nil, wrap(err)
	}
	addr, err := NewAddress(rec.Address)
	if err != nil {
		return nil, wrap(err)
	}
	hours, err := NewStoreHours(rec.StoreHours)
	if err != nil {
		return nil, wrap(err)
	}
	contact, err := NewContactInfo(rec.ContactInfo)
	if err != nil {
		return nil, wrap(err)
	}

	return &Location{
		ID:          id,
		Name:        name,
		Latitude:    lat,
		Longitude:   lon,
		Address:     addr,
		Hours:       hours,
		Contact:     contact,
		Description: NewDescription(rec.Description),
		Thumbnail:   NewThumbnailURL(rec.Image),
	}, nil
}

// ToRecord проецирует агрегат обратно в плоскую запись для записи в хранилище.
func (l *Location) ToRecord() LocationRecord {
	return LocationRecord{
		ID:          int64(l.ID),
		Name:        string(l.Name),
		Latitude:    float64(l.Latitude),
		Longitude:   float64(l.Longitude),
		Address:     string(l.Address),
		StoreHours:  l.Hours.Days(),
		ContactInfo: string(l.Contact),
		Description: string(l.Description),
		Image:       string(l.Thumbnail),
	}
}
