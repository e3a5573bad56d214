package rest

import (
	"time"

	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port/usecases_port"
)

// --- Объявления ---

// PieceRequest - тело создания/обновления объявления. Поля перечислений
// принимаются и как имя ("JACKET"), и как порядковый номер.
type PieceRequest struct {
	Name             string      `json:"name"`
	Category         interface{} `json:"category"`
	Color            string      `json:"color"`
	Brand            string      `json:"brand"`
	Gender           interface{} `json:"gender"`
	Size             interface{} `json:"size"`
	Price            float64     `json:"price"`
	Condition        interface{} `json:"condition"`
	Status           interface{} `json:"status,omitempty"`
	Reason           string      `json:"reason,omitempty"`
	DonationCenterID *int64      `json:"donation_center_id,omitempty"`
}

func (req *PieceRequest) toRecord() domain.PieceRecord {
	return domain.PieceRecord{
		Name:             req.Name,
		Category:         req.Category,
		Color:            req.Color,
		Brand:            req.Brand,
		Gender:           req.Gender,
		Size:             req.Size,
		Price:            req.Price,
		Condition:        req.Condition,
		Status:           req.Status,
		Reason:           req.Reason,
		DonationCenterID: req.DonationCenterID,
	}
}

type PieceResponse struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Color            string    `json:"color"`
	Brand            string    `json:"brand"`
	Gender           string    `json:"gender"`
	Size             string    `json:"size"`
	Price            float64   `json:"price"`
	FormattedPrice   string    `json:"formatted_price,omitempty"`
	Condition        string    `json:"condition"`
	Reason           string    `json:"reason,omitempty"`
	Images           []string  `json:"images"`
	UserID           string    `json:"user_id"`
	Status           string    `json:"status"`
	DonationCenterID *int64    `json:"donation_center_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewPieceResponse(p domain.Piece) PieceResponse {
	kind := "donated"
	if p.IsSold() {
		kind = "sold"
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return PieceResponse{
		ID:               p.ID.String(),
		Kind:             kind,
		Name:             p.Name,
		Category:         p.Category.String(),
		Color:            p.Color,
		Brand:            p.Brand,
		Gender:           p.Gender.String(),
		Size:             p.Size.String(),
		Price:            p.Price,
		FormattedPrice:   p.FormattedPrice(),
		Condition:        p.Condition.String(),
		Reason:           p.Reason,
		Images:           images,
		UserID:           p.UserID.String(),
		Status:           p.Status.String(),
		DonationCenterID: p.DonationCenterID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func NewPieceListResponse(pieces []domain.Piece) []PieceResponse {
	out := make([]PieceResponse, len(pieces))
	for i, p := range pieces {
		out[i] = NewPieceResponse(p)
	}
	return out
}

// --- Пункты приема ---

type LocationRequest struct {
	Name        string                     `json:"name"`
	Latitude    float64                    `json:"latitude"`
	Longitude   float64                    `json:"longitude"`
	Address     string                     `json:"address"`
	StoreHours  map[string]domain.DayHours `json:"store_hours"`
	ContactInfo string                     `json:"contact_info,omitempty"`
	Description string                     `json:"description,omitempty"`
	Image       string                     `json:"image,omitempty"`
}

func (req *LocationRequest) toRecord() domain.LocationRecord {
	return domain.LocationRecord{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Address:     req.Address,
		StoreHours:  req.StoreHours,
		ContactInfo: req.ContactInfo,
		Description: req.Description,
		Image:       req.Image,
	}
}

type LocationResponse struct {
	ID          int64                      `json:"id"`
	Name        string                     `json:"name"`
	Latitude    float64                    `json:"latitude"`
	Longitude   float64                    `json:"longitude"`
	Address     string                     `json:"address"`
	StoreHours  map[string]domain.DayHours `json:"store_hours"`
	ContactInfo string                     `json:"contact_info,omitempty"`
	Description string                     `json:"description,omitempty"`
	Image       string                     `json:"image,omitempty"`

	// Заполняется только в ответе на поиск рядом.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

func NewLocationResponse(l domain.Location) LocationResponse {
	rec := l.ToRecord()
	return LocationResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Latitude:    rec.Latitude,
		Longitude:   rec.Longitude,
		Address:     rec.Address,
		StoreHours:  rec.StoreHours,
		ContactInfo: rec.ContactInfo,
		Description: rec.Description,
		Image:       rec.Image,
	}
}

func NewNearbyLocationResponse(item usecases_port.LocationWithDistance) LocationResponse {
	resp := NewLocationResponse(item.Location)
	distance := item.DistanceKm
	resp.DistanceKm = &distance
	return resp
}

// --- Избранное ---

type AddFavoriteRequest struct {
	PieceID string `json:"piece_id"`
}

type PaginatedPiecesResponse struct {
	Data    []PieceResponse `json:"data"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

// --- Аутентификация ---

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// --- Чат ---

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// --- Справочники ---

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionariesResponse struct {
	Categories []DictionaryItemResponse `json:"categories"`
	Conditions []DictionaryItemResponse `json:"conditions"`
	Genders    []DictionaryItemResponse `json:"genders"`
	Sizes      []DictionaryItemResponse `json:"sizes"`
	Statuses   []DictionaryItemResponse `json:"statuses"`
}

func newDictionaryItems(items []domain.DictionaryItem) []DictionaryItemResponse {
	out := make([]DictionaryItemResponse, len(items))
	for i, item := range items {
		out[i] = DictionaryItemResponse{
			SystemName:  item.SystemName,
			DisplayName: item.DisplayName,
		}
	}
	return out
}

func NewDictionariesResponse(d *domain.Dictionaries) DictionariesResponse {
	return DictionariesResponse{
		Categories: newDictionaryItems(d.Categories),
		Conditions: newDictionaryItems(d.Conditions),
		Genders:    newDictionaryItems(d.Genders),
		Sizes:      newDictionaryItems(d.Sizes),
		Statuses:   newDictionaryItems(d.Statuses),
	}
}
