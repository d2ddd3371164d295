package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/climasphere/climasphere/internal/api/models"
	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/hazard/cyclone"
	"github.com/climasphere/climasphere/internal/states"
)

// invalidStateMessage is the fixed message for unrecognised state names.
const invalidStateMessage = "Invalid location. Please select from Australia’s 8 states/territories."

// CycloneService computes cyclone risk assessments.
type CycloneService interface {
	Point(ctx context.Context, st states.State, lat, lon float64, date time.Time) *cyclone.Record
	All(ctx context.Context, date time.Time) ([]cyclone.BatchRecord, error)
	Early(ctx context.Context, date time.Time) []cyclone.EarlyRecord
}

// CycloneHandler handles the cyclone prediction endpoints.
type CycloneHandler struct {
	service CycloneService
}

// NewCycloneHandler creates a new CycloneHandler.
func NewCycloneHandler(service CycloneService) *CycloneHandler {
	return &CycloneHandler{service: service}
}

// Point handles GET /predict/cyclone.
func (h *CycloneHandler) Point(w http.ResponseWriter, r *http.Request) {
	st, err := states.Normalize(r.URL.Query().Get("state"))
	if err != nil {
		response.BadRequest(w, r, invalidStateMessage, nil)
		return
	}
	lat, okLat := parseFloat(r, "lat", st.Lat)
	lon, okLon := parseFloat(r, "lon", st.Lon)
	if !okLat || !okLon {
		response.BadRequest(w, r, "Invalid query parameters", []models.FieldError{
			{Field: "lat", Message: "must be a number"},
			{Field: "lon", Message: "must be a number"},
		})
		return
	}
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	response.JSON(w, r, http.StatusOK, h.service.Point(r.Context(), st, lat, lon, date))
}

// All handles GET|POST /predict/cyclone/all.
func (h *CycloneHandler) All(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format, use YYYY-MM-DD", nil)
		return
	}

	results, err := h.service.All(r.Context(), date)
	if err != nil {
		if errors.Is(err, cyclone.ErrFutureDate) {
			response.BadRequest(w, r, "Future dates not allowed", nil)
			return
		}
		response.InternalError(w, r, "cyclone assessment failed")
		return
	}
	response.JSON(w, r, http.StatusOK, results)
}

// Early handles GET|POST /predict/cyclone/early.
func (h *CycloneHandler) Early(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format, use YYYY-MM-DD", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.Early(r.Context(), date))
}
