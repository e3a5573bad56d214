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

// FavoritesHandler обслуживает избранное пользователя. Все роуты приватные.
type FavoritesHandler struct {
	addUC       usecases_port.AddToFavoritesUseCase
	removeUC    usecases_port.RemoveFromFavoritesUseCase
	getPiecesUC usecases_port.GetUserFavoritesUseCase
	getIDsUC    usecases_port.GetUserFavoritesIDsUseCase
}

func NewFavoritesHandler(
	addUC usecases_port.AddToFavoritesUseCase,
	removeUC usecases_port.RemoveFromFavoritesUseCase,
	getPiecesUC usecases_port.GetUserFavoritesUseCase,
	getIDsUC usecases_port.GetUserFavoritesIDsUseCase,
) *FavoritesHandler {
	return &FavoritesHandler{
		addUC:       addUC,
		removeUC:    removeUC,
		getPiecesUC: getPiecesUC,
		getIDsUC:    getIDsUC,
	}
}

// GetUserFavorites обрабатывает GET /api/v1/favorites?limit=..&offset=..
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	limit := GetLimitOrDefault(r)
	offset := GetOffsetOrDefault(r)

	result, err := h.getPiecesUC.Execute(r.Context(), claims.UserID, limit, offset)
	if err != nil {
		logger.Error("Get user favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	RespondWithJSON(w, http.StatusOK, PaginatedPiecesResponse{
		Data:    NewPieceListResponse(result.Pieces),
		Total:   result.TotalCount,
		Page:    result.CurrentPage,
		PerPage: result.ItemsPerPage,
	})
}

// GetUserFavoritesIDs обрабатывает GET /api/v1/favorites/ids
func (h *FavoritesHandler) GetUserFavoritesIDs(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavoritesIDs"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	ids, err := h.getIDsUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("Get favorites ids use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	RespondWithJSON(w, http.StatusOK, ids)
}

// AddToFavorites обрабатывает POST /api/v1/favorites
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToFavorites"})

	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Missing authentication claims")
		return
	}

	var req AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	pieceID, err := uuid.Parse(req.PieceID)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid piece_id format")
		return
	}

	if err := h.addUC.Execute(r.Context(), claims.UserID, pieceID); err != nil {
		if errors.Is(err, domain.ErrPieceNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Piece not found")
			return
		}
		logger.Error("Add to favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFromFavorites обрабатывает DELETE /api/v1/favorites/{pieceID}
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromFavorites"})

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

	if err := h.removeUC.Execute(r.Context(), claims.UserID, pieceID); err != nil {
		logger.Error("Remove from favorites use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
