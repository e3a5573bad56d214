package domain

import (
	"testing"

	"github.com/google/uuid"
)

func validPieceRecord() PieceRecord {
	return PieceRecord{
		ID:        uuid.New().String(),
		Name:      "Blue denim jacket",
		Category:  "JACKET",
		Color:     "blue",
		Brand:     "Levi's",
		Gender:    "UNISEX",
		Size:      "M",
		Price:     40,
		Condition: "LIKE_NEW",
		UserID:    uuid.New().String(),
	}
}

func TestMakePieceSold(t *testing.T) {
	piece, err := MakePiece(validPieceRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if piece.Kind != KindSold {
		t.Errorf("kind = %v, want KindSold", piece.Kind)
	}
	if !piece.IsSold() {
		t.Error("IsSold() = false for a priced piece")
	}
	if got := piece.FormattedPrice(); got != "$40.00" {
		t.Errorf("FormattedPrice() = %q, want %q", got, "$40.00")
	}
	if piece.DonationCenterID != nil {
		t.Error("sold piece must not carry a donation center")
	}
	// Статус без явного значения - активное объявление.
	if piece.Status != StatusActive {
		t.Errorf("status = %v, want StatusActive", piece.Status)
	}
}

func TestMakePieceDonated(t *testing.T) {
	centerID := int64(7)
	rec := validPieceRecord()
	rec.Price = 0
	rec.Reason = "outgrown"
	rec.DonationCenterID = &centerID

	piece, err := MakePiece(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if piece.Kind != KindDonated {
		t.Errorf("kind = %v, want KindDonated", piece.Kind)
	}
	if piece.IsSold() {
		t.Error("IsSold() = true for a donated piece")
	}
	if piece.FormattedPrice() != "" {
		t.Errorf("FormattedPrice() = %q, want empty", piece.FormattedPrice())
	}
	if piece.DonationCenterID == nil || *piece.DonationCenterID != centerID {
		t.Errorf("donation center = %v, want %d", piece.DonationCenterID, centerID)
	}
}

func TestMakePieceRejectsUnknownEnum(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PieceRecord)
	}{
		{"bad category", func(r *PieceRecord) { r.Category = "SPACESHIP" }},
		{"bad gender", func(r *PieceRecord) { r.Gender = 99 }},
		{"bad size", func(r *PieceRecord) { r.Size = "GIGANTIC" }},
		{"bad condition", func(r *PieceRecord) { r.Condition = nil }},
		{"bad status", func(r *PieceRecord) { r.Status = "LOST" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validPieceRecord()
			tt.mutate(&rec)
			if _, err := MakePiece(rec); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMakePieceRejectsMalformedIDs(t *testing.T) {
	rec := validPieceRecord()
	rec.ID = "not-a-uuid"
	if _, err := MakePiece(rec); err == nil {
		t.Error("expected error for malformed piece id")
	}

	rec = validPieceRecord()
	rec.UserID = "not-a-uuid"
	if _, err := MakePiece(rec); err == nil {
		t.Error("expected error for malformed user id")
	}
}

func TestPieceRecordRoundTrip(t *testing.T) {
	rec := validPieceRecord()
	rec.Status = "SOLD"

	piece, err := MakePiece(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := ToRecord(piece)
	if back.Category != "JACKET" || back.Gender != "UNISEX" || back.Size != "M" {
		t.Errorf("enums not serialized by name: %+v", back)
	}
	if back.Status != "SOLD" {
		t.Errorf("status = %v, want SOLD", back.Status)
	}

	// Запись, полученная из сущности, снова собирается без ошибок.
	again, err := MakePiece(back)
	if err != nil {
		t.Fatalf("round-trip failed: %v", err)
	}
	if again.Category != piece.Category || again.Price != piece.Price {
		t.Error("round-trip changed the piece")
	}
}
