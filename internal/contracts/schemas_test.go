package contracts

import (
	"testing"
)

func validPieceCreatedBody() []byte {
	return []byte(`{
		"piece_id": "0b718b6b-6b83-4f2f-9a5f-26a41a0f1f93",
		"user_id": "8c8ad424-9d3e-4a27-8c18-4dbd3a1f0f70",
		"name": "denim jacket",
		"category": "JACKET",
		"kind": "sold",
		"price": 40,
		"status": "ACTIVE",
		"created_at": "2026-02-10T12:00:00Z"
	}`)
}

func TestValidateEventPieceCreated(t *testing.T) {
	if err := ValidateEvent("PieceCreatedEvent", "1.0.0", validPieceCreatedBody()); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
}

func TestValidateEventRejectsMissingRequiredField(t *testing.T) {
	body := []byte(`{
		"piece_id": "0b718b6b-6b83-4f2f-9a5f-26a41a0f1f93",
		"user_id": "8c8ad424-9d3e-4a27-8c18-4dbd3a1f0f70",
		"name": "denim jacket",
		"category": "JACKET",
		"created_at": "2026-02-10T12:00:00Z"
	}`)
	if err := ValidateEvent("PieceCreatedEvent", "1.0.0", body); err == nil {
		t.Fatal("body without status accepted")
	}
}

func TestValidateEventRejectsUnknownCategory(t *testing.T) {
	body := []byte(`{
		"piece_id": "0b718b6b-6b83-4f2f-9a5f-26a41a0f1f93",
		"user_id": "8c8ad424-9d3e-4a27-8c18-4dbd3a1f0f70",
		"name": "denim jacket",
		"category": "SPACESHIP",
		"status": "ACTIVE",
		"created_at": "2026-02-10T12:00:00Z"
	}`)
	if err := ValidateEvent("PieceCreatedEvent", "1.0.0", body); err == nil {
		t.Fatal("body with unknown category accepted")
	}
}

func TestValidateEventUnknownType(t *testing.T) {
	if err := ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`)); err == nil {
		t.Fatal("unknown event type accepted")
	}
}

func TestValidateEventStatusChanged(t *testing.T) {
	body := []byte(`{
		"piece_id": "0b718b6b-6b83-4f2f-9a5f-26a41a0f1f93",
		"user_id": "8c8ad424-9d3e-4a27-8c18-4dbd3a1f0f70",
		"status": "SOLD",
		"changed_at": "2026-02-11T09:30:00Z"
	}`)
	if err := ValidateEvent("PieceStatusChangedEvent", "1.0.0", body); err != nil {
		t.Fatalf("valid status-changed body rejected: %v", err)
	}
}

func TestGenerateKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"events/piece-created/v1.json", "PieceCreatedEvent/1.0.0"},
		{"events/piece-status-changed/v1.json", "PieceStatusChangedEvent/1.0.0"},
		{"events/badpath.json", ""},
	}
	for _, tt := range tests {
		if got := generateKeyFromPath(tt.path); got != tt.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
