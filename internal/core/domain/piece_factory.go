package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PieceRecord - плоское представление объявления, каким оно приходит
// из хранилища или из формы пользователя. Поля перечислений не типизированы:
// источник может прислать как имя ("JACKET"), так и порядковый номер.
type PieceRecord struct {
	ID        string
	Name      string
	Category  interface{}
	Color     string
	Brand     string
	Gender    interface{}
	Size      interface{}
	Price     float64
	Condition interface{}
	Status    interface{}
	Reason    string
	Images    []string
	UserID    string

	DonationCenterID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MakePiece собирает доменную сущность из нетипизированной записи.
// Вариант выбирается по цене: ненулевая цена -> продажа, иначе пожертвование.
// Любая нераспознанная enum-величина проваливает весь вызов,
// частично собранная сущность никогда не возвращается.
func MakePiece(rec PieceRecord) (*Piece, error) {
	category, err := ParseCategory(rec.Category)
	if err != nil {
		return nil, err
	}
	gender, err := ParseGender(rec.Gender)
	if err != nil {
		return nil, err
	}
	size, err := ParseSize(rec.Size)
	if err != nil {
		return nil, err
	}
	condition, err := ParseCondition(rec.Condition)
	if err != nil {
		return nil, err
	}

	// Статус в форме создания отсутствует - новое объявление активно.
	status := StatusActive
	if rec.Status != nil {
		status, err = ParseStatus(rec.Status)
		if err != nil {
			return nil, err
		}
	}

	id := uuid.Nil
	if rec.ID != "" {
		id, err = uuid.Parse(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid piece id %q: %w", rec.ID, err)
		}
	}

	userID := uuid.Nil
	if rec.UserID != "" {
		userID, err = uuid.Parse(rec.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", rec.UserID, err)
		}
	}

	piece := &Piece{
		ID:        id,
		Name:      rec.Name,
		Category:  category,
		Color:     rec.Color,
		Brand:     rec.Brand,
		Gender:    gender,
		Size:      size,
		Condition: condition,
		Reason:    rec.Reason,
		Images:    rec.Images,
		UserID:    userID,
		Status:    status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}

	if rec.Price != 0 {
		piece.Kind = KindSold
		piece.Price = rec.Price
	} else {
		piece.Kind = KindDonated
		piece.DonationCenterID = rec.DonationCenterID
	}

	return piece, nil
}

// ToRecord проецирует сущность обратно в плоскую запись для операции
// записи: перечисления сериализуются именами, а не номерами.
func ToRecord(p *Piece) PieceRecord {
	rec := PieceRecord{
		ID:        p.ID.String(),
		Name:      p.Name,
		Category:  p.Category.String(),
		Color:     p.Color,
		Brand:     p.Brand,
		Gender:    p.Gender.String(),
		Size:      p.Size.String(),
		Condition: p.Condition.String(),
		Status:    p.Status.String(),
		Reason:    p.Reason,
		Images:    p.Images,
		UserID:    p.UserID.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Kind == KindSold {
		rec.Price = p.Price
	} else {
		rec.DonationCenterID = p.DonationCenterID
	}

	return rec
}
