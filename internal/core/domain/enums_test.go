package domain

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    Category
		wantErr bool
	}{
		{"name uppercase", "JACKET", CategoryJacket, false},
		{"name lowercase", "jacket", CategoryJacket, false},
		{"name with spaces", "  Shoes ", CategoryShoes, false},
		{"ordinal int", 2, CategoryJacket, false},
		{"ordinal json float", float64(3), CategoryDress, false},
		{"numeric string", "5", CategoryShoes, false},
		{"ordinal out of range", 42, 0, true},
		{"negative ordinal", -1, 0, true},
		{"fractional float", 1.5, 0, true},
		{"unknown name", "HAT", 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCategory(%v): expected error, got %v", tt.value, got)
				}
				var enumErr *UnknownEnumValueError
				if !errors.As(err, &enumErr) {
					t.Fatalf("expected UnknownEnumValueError, got %T", err)
				}
				if enumErr.Field != "category" {
					t.Errorf("error field = %q, want %q", enumErr.Field, "category")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%v): unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseCondition(t *testing.T) {
	got, err := ParseCondition("like_new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ConditionLikeNew {
		t.Errorf("ParseCondition(like_new) = %v, want %v", got, ConditionLikeNew)
	}

	if _, err := ParseCondition("PRISTINE"); err == nil {
		t.Error("expected error for unknown condition")
	}
}

func TestEnumStringRoundTrip(t *testing.T) {
	// Имя каждого члена должно разбираться обратно в тот же член.
	for _, name := range SizeNames() {
		size, err := ParseSize(name)
		if err != nil {
			t.Fatalf("ParseSize(%q): %v", name, err)
		}
		if size.String() != name {
			t.Errorf("Size %q round-trip = %q", name, size.String())
		}
	}
	for _, name := range StatusNames() {
		status, err := ParseStatus(name)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", name, err)
		}
		if status.String() != name {
			t.Errorf("Status %q round-trip = %q", name, status.String())
		}
	}
}

func TestUnknownEnumValueErrorMessage(t *testing.T) {
	_, err := ParseGender("ROBOT")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "invalid gender value: ROBOT"
	if err.Error() != want {
		t.Errorf("error message = %q, want %q", err.Error(), want)
	}
}
