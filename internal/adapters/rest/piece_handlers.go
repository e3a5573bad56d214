package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

// PieceHandler обслуживает CRUD и выборки объявлений.
type PieceHandler struct {
	getAllUC       usecases_port.GetPiecesUseCase
	getByIDUC      usecases_port.GetPieceByIDUseCase
	getByUserUC    usecases_port.GetPiecesByUserUseCase
	createUC       usecases_port.CreatePieceUseCase
	updateUC       usecases_port.UpdatePieceUseCase
	deleteUC       usecases_port.DeletePieceUseCase
	filterUC       usecases_port.FilterPiecesUseCase
	uploadImagesUC usecases_port.UploadPieceImagesUseCase
}

func NewPieceHandler(
	getAllUC usecases_port.GetPiecesUseCase,
	getByIDUC usecases_port.GetPieceByIDUseCase,
	getByUserUC usecases_port.GetPiecesByUserUseCase,
	createUC usecases_port.CreatePieceUseCase,
	updateUC usecases_port.UpdatePieceUseCase,
	deleteUC usecases_port.DeletePieceUseCase,
	filterUC usecases_port.FilterPiecesUseCase,
	uploadImagesUC usecases_port.UploadPieceImagesUseCase,
) *PieceHandler {
	return &PieceHandler{
		getAllUC:       getAllUC,
		getByIDUC:      getByIDUC,
		getByUserUC:    getByUserUC,
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		filterUC:       filterUC,
		uploadImagesUC: uploadImagesUC,
	}
}

// writePieceError транслирует доменные ошибки в HTTP-статусы.
func writePieceError(w http.ResponseWriter, err error) {
	var enumErr *domain.UnknownEnumValueError
	switch {
	case errors.As(err, &enumErr):
		WriteJSONError(w, http.StatusBadRequest, enumErr.Error())
	case errors.Is(err, domain.ErrPieceNotFound):
		WriteJSONError(w, http.StatusNotFound, "Piece not found")
	case errors.Is(err, domain.ErrNotPieceOwner):
		WriteJSONError(w, http.StatusForbidden, "You are not the owner of this piece")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parsePieceFilters разбирает query-параметры в разреженный набор критериев.
func parsePieceFilters(r *http.Request) (domain.PieceFilters, bool, error) {
	var (
		filters domain.PieceFilters
		any     bool
	)
	q := r.URL.Query()

	if v := q.Get("name"); v != "" {
		filters.Name, any = &v, true
	}
	if v := q.Get("color"); v != "" {
		filters.Color, any = &v, true
	}
	if v := q.Get("brand"); v != "" {
		filters.Brand, any = &v, true
	}
	if v := q.Get("user_id"); v != "" {
		filters.UserID, any = &v, true
	}

	if v := q.Get("category"); v != "" {
		category, err := domain.ParseCategory(v)
		if err != nil {
			return filters, false, err
		}
		filters.Category, any = &category, true
	}
	if v := q.Get("gender"); v != "" {
		gender, err := domain.ParseGender(v)
		if err != nil {
			return filters, false, err
		}
		filters.Gender, any = &gender, true
	}
	if v := q.Get("size"); v != "" {
		size, err := domain.ParseSize(v)
		if err != nil {
			return filters, false, err
		}
		filters.Size, any = &size, true
	}
	if v := q.Get("condition"); v != "" {
		condition, err := domain.ParseCondition(v)
		if err != nil {
			return filters, false, err
		}
		filters.Condition, any = &condition, true
	}
	if v := q.Get("status"); v != "" {
		status, err := domain.ParseStatus(v)
		if err != nil {
			return filters, false, err
		}
		filters.Status, any = &status, true
	}

	return filters, any, nil
}

// GetPieces обрабатывает GET /api/v1/pieces. Без query-параметров
// возвращает все активные объявления, с параметрами - фильтрованную выборку.
func (h *PieceHandler) GetPieces(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPieces"})

	filters, hasFilters, err := parsePieceFilters(r)
	if err != nil {
		logger.Warn("Rejected invalid filter value", port.Fields{"error": err.Error()})
		writePieceError(w, err)
		return
	}

	var pieces []domain.Piece
	if hasFilters {
		pieces, err = h.filterUC.Execute(r.Context(), filters)
	} else {
		pieces, err = h.getAllUC.Execute(r.Context())
	}
	if err != nil {
		logger.Error("Pieces use case failed", err, nil)
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPieceListResponse(pieces))
}

// GetPieceByID обрабатывает GET /api/v1/pieces/{pieceID}
func (h *PieceHandler) GetPieceByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPieceByID"})

	pieceID, err := uuid.Parse(chi.URLParam(r, "pieceID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid piece ID format")
		return
	}

	piece, err := h.getByIDUC.Execute(r.Context(), pieceID)
	if err != nil {
		logger.Warn("Piece lookup failed", port.Fields{"piece_id": pieceID.String(), "error": err.Error()})
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPieceResponse(*piece))
}

// GetMyPieces обрабатывает GET /api/v1/my/pieces
func (h *PieceHandler) GetMyPieces(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	pieces, err := h.getByUserUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPieceListResponse(pieces))
}

// CreatePiece обрабатывает POST /api/v1/pieces
func (h *PieceHandler) CreatePiece(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePiece"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	var req PieceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rec := req.toRecord()
	rec.UserID = claims.UserID.String()

	piece, err := h.createUC.Execute(r.Context(), rec)
	if err != nil {
		logger.Warn("Create piece rejected", port.Fields{"error": err.Error()})
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewPieceResponse(*piece))
}

// UpdatePiece обрабатывает PUT /api/v1/pieces/{pieceID}
func (h *PieceHandler) UpdatePiece(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdatePiece"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	pieceID, err := uuid.Parse(chi.URLParam(r, "pieceID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid piece ID format")
		return
	}

	var req PieceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rec := req.toRecord()
	rec.ID = pieceID.String()

	piece, err := h.updateUC.Execute(r.Context(), rec, claims.UserID)
	if err != nil {
		logger.Warn("Update piece rejected", port.Fields{"piece_id": pieceID.String(), "error": err.Error()})
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPieceResponse(*piece))
}

// DeletePiece обрабатывает DELETE /api/v1/pieces/{pieceID}
func (h *PieceHandler) DeletePiece(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	pieceID, err := uuid.Parse(chi.URLParam(r, "pieceID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid piece ID format")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), pieceID, claims.UserID); err != nil {
		writePieceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadPieceImages обрабатывает POST /api/v1/pieces/{pieceID}/images
// (multipart/form-data, поле "images").
func (h *PieceHandler) UploadPieceImages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UploadPieceImages"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	pieceID, err := uuid.Parse(chi.URLParam(r, "pieceID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid piece ID format")
		return
	}

	// До 32 МБ в памяти, остальное во временных файлах
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "No images in 'images' form field")
		return
	}

	uploads := make([]usecases_port.ImageUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		defer file.Close()
		uploads = append(uploads, usecases_port.ImageUpload{Filename: fh.Filename, Data: file})
	}

	urls, err := h.uploadImagesUC.Execute(r.Context(), pieceID, claims.UserID, uploads)
	if err != nil {
		logger.Warn("Image upload rejected", port.Fields{"piece_id": pieceID.String(), "error": err.Error()})
		writePieceError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string][]string{"images": urls})
}
