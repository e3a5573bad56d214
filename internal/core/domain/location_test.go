package domain

import (
	"strings"
	"testing"
)

func TestNewLatitudeBounds(t *testing.T) {
	for _, v := range []float64{-90, 0, 90, 18.2} {
		if _, err := NewLatitude(v); err != nil {
			t.Errorf("NewLatitude(%v): unexpected error: %v", v, err)
		}
	}
	for _, v := range []float64{-90.01, 91, 200} {
		if _, err := NewLatitude(v); err == nil {
			t.Errorf("NewLatitude(%v): expected error", v)
		}
	}
}

func TestNewLongitudeBounds(t *testing.T) {
	for _, v := range []float64{-180, 180, -66.5} {
		if _, err := NewLongitude(v); err != nil {
			t.Errorf("NewLongitude(%v): unexpected error: %v", v, err)
		}
	}
	if _, err := NewLongitude(180.5); err == nil {
		t.Error("NewLongitude(180.5): expected error")
	}
}

func TestNewContactInfo(t *testing.T) {
	// Номер с дефисами и без них нормализуется к одному виду.
	withDashes, err := NewContactInfo("787-123-4567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bare, err := NewContactInfo("7871234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withDashes != bare {
		t.Errorf("normalization mismatch: %q vs %q", withDashes, bare)
	}
	if string(bare) != "787-123-4567" {
		t.Errorf("normalized form = %q, want 787-123-4567", bare)
	}

	// Пустая строка - "контакта нет", не ошибка.
	empty, err := NewContactInfo("   ")
	if err != nil {
		t.Fatalf("blank contact must not error: %v", err)
	}
	if empty.IsPresent() {
		t.Error("blank contact reported as present")
	}

	for _, bad := range []string{"12345", "787-123-456x", "78712345678"} {
		if _, err := NewContactInfo(bad); err == nil {
			t.Errorf("NewContactInfo(%q): expected error", bad)
		}
	}
}

func TestOptionalFieldsCollapseWhitespace(t *testing.T) {
	if NewDescription("   ").IsPresent() {
		t.Error("whitespace description reported as present")
	}
	if !NewDescription(" cozy thrift corner ").IsPresent() {
		t.Error("non-blank description reported as absent")
	}
	if NewThumbnailURL("\t\n").IsPresent() {
		t.Error("whitespace thumbnail reported as present")
	}
}

func TestNewStoreHours(t *testing.T) {
	valid := map[string]DayHours{
		"Monday":  {Open: "09:00", Close: "17:00"},
		"tuesday": {Open: "10:30", Close: "18:45"},
	}
	hours, err := NewStoreHours(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Дни нормализуются к нижнему регистру.
	days := hours.Days()
	if _, ok := days["monday"]; !ok {
		t.Errorf("monday missing after normalization: %v", days)
	}

	tests := []struct {
		name string
		days map[string]DayHours
	}{
		{"bad weekday", map[string]DayHours{"Mon": {Open: "09:00", Close: "17:00"}}},
		{"bad time format", map[string]DayHours{"monday": {Open: "9am", Close: "17:00"}}},
		{"open after close", map[string]DayHours{"monday": {Open: "18:00", Close: "09:00"}}},
		{"open equals close", map[string]DayHours{"monday": {Open: "09:00", Close: "09:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewStoreHours(tt.days); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func validLocationRecord() LocationRecord {
	return LocationRecord{
		ID:        1,
		Name:      "Campus Swap Shop",
		Latitude:  18.21,
		Longitude: -67.14,
		Address:   "259 Blvd Alfonso Valdes, Mayaguez",
		StoreHours: map[string]DayHours{
			"monday": {Open: "09:00", Close: "17:00"},
		},
		ContactInfo: "787-832-4040",
	}
}

func TestLocationFromRecord(t *testing.T) {
	location, err := LocationFromRecord(validLocationRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location.Name != "Campus Swap Shop" {
		t.Errorf("name = %q", location.Name)
	}
	if location.Description.IsPresent() {
		t.Error("absent description reported as present")
	}
}

// Ошибка в любом поле отклоняет запись целиком и помечается
// как повреждение данных хранилища.
func TestLocationFromRecordRejectsWholeAggregate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LocationRecord)
	}{
		{"zero id", func(r *LocationRecord) { r.ID = 0 }},
		{"blank name", func(r *LocationRecord) { r.Name = "  " }},
		{"latitude out of range", func(r *LocationRecord) { r.Latitude = 95 }},
		{"longitude out of range", func(r *LocationRecord) { r.Longitude = -200 }},
		{"blank address", func(r *LocationRecord) { r.Address = "" }},
		{"bad hours", func(r *LocationRecord) { r.StoreHours = map[string]DayHours{"noday": {Open: "09:00", Close: "17:00"}} }},
		{"bad contact", func(r *LocationRecord) { r.ContactInfo = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validLocationRecord()
			tt.mutate(&rec)
			_, err := LocationFromRecord(rec)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "invalid persistence record") {
				t.Errorf("error %q lacks persistence-record marker", err)
			}
		})
	}
}

func TestLocationToRecordRoundTrip(t *testing.T) {
	rec := validLocationRecord()
	rec.Description = " open to all students "
	rec.Image = "https://cdn.example.com/shop.jpg"

	location, err := LocationFromRecord(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := location.ToRecord()
	if back.ID != rec.ID || back.Name != rec.Name || back.Address != rec.Address {
		t.Errorf("round-trip mismatch: %+v", back)
	}
	if back.ContactInfo != "787-832-4040" {
		t.Errorf("contact = %q, want normalized form", back.ContactInfo)
	}
	// Опциональные поля выходят уже нормализованными.
	if back.Description != "open to all students" {
		t.Errorf("description = %q", back.Description)
	}
}
