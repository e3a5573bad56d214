package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PieceKind - дискриминант между двумя вариантами объявления.
type PieceKind int8

const (
	// KindSold - предмет продается (есть цена).
	KindSold PieceKind = iota
	// KindDonated - предмет отдается бесплатно (цены нет, опционально пункт приема).
	KindDonated
)

// Piece - главная доменная сущность: предмет одежды, выставленный
// на продажу или на пожертвование. Вариант определяется полем Kind:
// Price имеет смысл только для KindSold, DonationCenterID - только для KindDonated.
type Piece struct {
	ID        uuid.UUID
	Kind      PieceKind
	Name      string
	Category  Category
	Color     string
	Brand     string
	Gender    Gender
	Size      Size
	Price     float64
	Condition Condition
	Reason    string
	Images    []string
	UserID    uuid.UUID
	Status    Status

	DonationCenterID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSold сообщает, является ли объявление продажей.
func (p *Piece) IsSold() bool { return p.Kind == KindSold }

// FormattedPrice возвращает цену в виде "$40.00".
// Для пожертвований возвращает пустую строку.
func (p *Piece) FormattedPrice() string {
	if p.Kind != KindSold {
		return ""
	}
	return fmt.Sprintf("$%.2f", p.Price)
}
