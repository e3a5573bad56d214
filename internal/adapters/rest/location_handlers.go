package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"handmedown-service/internal/contextkeys"
	"handmedown-service/internal/core/domain"
	"handmedown-service/internal/core/port"
	"handmedown-service/internal/core/port/usecases_port"
)

// LocationHandler обслуживает пункты приема: публичное чтение и поиск
// рядом, мутации - только для операторов.
type LocationHandler struct {
	getAllUC  usecases_port.GetLocationsUseCase
	getByIDUC usecases_port.GetLocationByIDUseCase
	nearbyUC  usecases_port.NearbyLocationsUseCase
	createUC  usecases_port.CreateLocationUseCase
	updateUC  usecases_port.UpdateLocationUseCase
	deleteUC  usecases_port.DeleteLocationUseCase
}

func NewLocationHandler(
	getAllUC usecases_port.GetLocationsUseCase,
	getByIDUC usecases_port.GetLocationByIDUseCase,
	nearbyUC usecases_port.NearbyLocationsUseCase,
	createUC usecases_port.CreateLocationUseCase,
	updateUC usecases_port.UpdateLocationUseCase,
	deleteUC usecases_port.DeleteLocationUseCase,
) *LocationHandler {
	return &LocationHandler{
		getAllUC:  getAllUC,
		getByIDUC: getByIDUC,
		nearbyUC:  nearbyUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
	}
}

func writeLocationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		WriteJSONError(w, http.StatusNotFound, "Location not found")
	case errors.Is(err, domain.ErrLocationNotUnique):
		WriteJSONError(w, http.StatusInternalServerError, "Location data is corrupted")
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseLocationID(r *http.Request) (domain.LocationID, error) {
	raw, err := strconv.ParseInt(chi.URLParam(r, "locationID"), 10, 64)
	if err != nil {
		return 0, err
	}
	return domain.NewLocationID(raw)
}

// GetLocations обрабатывает GET /api/v1/locations
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetLocations"})

	locations, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		logger.Error("Locations use case failed", err, nil)
		writeLocationError(w, err)
		return
	}

	response := make([]LocationResponse, len(locations))
	for i, l := range locations {
		response[i] = NewLocationResponse(l)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetLocationByID обрабатывает GET /api/v1/locations/{locationID}
func (h *LocationHandler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseLocationID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	location, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeLocationError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, NewLocationResponse(*location))
}

// GetNearbyLocations обрабатывает GET /api/v1/locations/nearby?lat=..&lon=..&radius_km=..
func (h *LocationHandler) GetNearbyLocations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetNearbyLocations"})

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		WriteJSONError(w, http.StatusBadRequest, "Query parameters 'lat' and 'lon' are required numbers")
		return
	}

	// Радиус опционален: ноль означает значение по умолчанию.
	var radiusKm float64
	if raw := r.URL.Query().Get("radius_km"); raw != "" {
		var err error
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm < 0 {
			WriteJSONError(w, http.StatusBadRequest, "Query parameter 'radius_km' must be a non-negative number")
			return
		}
	}

	nearby, err := h.nearbyUC.Execute(r.Context(), lat, lon, radiusKm)
	if err != nil {
		logger.Warn("Nearby locations request failed", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := make([]LocationResponse, len(nearby))
	for i, item := range nearby {
		response[i] = NewNearbyLocationResponse(item)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// CreateLocation обрабатывает POST /api/v1/locations (только оператор)
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateLocation"})

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	location, err := h.createUC.Execute(r.Context(), req.toRecord())
	if err != nil {
		logger.Warn("Create location rejected", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusCreated, NewLocationResponse(*location))
}

// UpdateLocation обрабатывает PUT /api/v1/locations/{locationID} (только оператор)
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateLocation"})

	id, err := parseLocationID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rec := req.toRecord()
	rec.ID = int64(id)

	location, err := h.updateUC.Execute(r.Context(), rec)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) || errors.Is(err, domain.ErrLocationNotUnique) {
			writeLocationError(w, err)
			return
		}
		logger.Warn("Update location rejected", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, NewLocationResponse(*location))
}

// DeleteLocation обрабатывает DELETE /api/v1/locations/{locationID} (только оператор)
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseLocationID(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeLocationError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
