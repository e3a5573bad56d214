package rest

import (
	"net/http"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

// SearchHandler обслуживает пословный поиск и справочники перечислений.
type SearchHandler struct {
	searchUC       usecases_port.SearchPiecesUseCase
	dictionariesUC usecases_port.GetDictionariesUseCase
}

func NewSearchHandler(searchUC usecases_port.SearchPiecesUseCase, dictionariesUC usecases_port.GetDictionariesUseCase) *SearchHandler {
	return &SearchHandler{searchUC: searchUC, dictionariesUC: dictionariesUC}
}

// SearchPieces обрабатывает GET /api/v1/search?q=<запрос>.
// Пустой запрос равнозначен полному списку активных объявлений.
func (h *SearchHandler) SearchPieces(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchPieces"})

	query := r.URL.Query().Get("q")

	pieces, err := h.searchUC.Execute(r.Context(), query)
	if err != nil {
		logger.Error("Search use case failed", err, port.Fields{"query": query})
		WriteJSONError(w, http.StatusInternalServerError, "Search is temporarily unavailable")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewPieceListResponse(pieces))
}

// GetDictionaries обрабатывает GET /api/v1/dictionaries
func (h *SearchHandler) GetDictionaries(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetDictionaries"})

	dictionaries, err := h.dictionariesUC.Execute(r.Context())
	if err != nil {
		logger.Error("Dictionaries use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load dictionaries")
		return
	}

	RespondWithJSON(w, http.StatusOK, NewDictionariesResponse(dictionaries))
}
