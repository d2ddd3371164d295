package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/climasphere/climasphere/internal/api/models"
	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/hazard/comfort"
)

// Sydney is the default assessment point when no coordinate is given.
const (
	sydneyLat = -33.8688
	sydneyLon = 151.2093
)

// ComfortService assesses outdoor comfort risk for a point and date.
type ComfortService interface {
	Assess(ctx context.Context, lat, lon float64, date time.Time) (*comfort.Response, error)
}

// ComfortHandler handles the comfort risk endpoint.
type ComfortHandler struct {
	service ComfortService
}

// NewComfortHandler creates a new ComfortHandler.
func NewComfortHandler(service ComfortService) *ComfortHandler {
	return &ComfortHandler{service: service}
}

// ComfortRisk handles GET /api/comfort-risk.
func (h *ComfortHandler) ComfortRisk(w http.ResponseWriter, r *http.Request) {
	lat, ok := parseFloat(r, "lat", sydneyLat)
	if !ok {
		response.BadRequest(w, r, "Invalid query parameters", []models.FieldError{
			{Field: "lat", Message: "must be a number"},
		})
		return
	}
	lon, ok := parseFloat(r, "lon", sydneyLon)
	if !ok {
		response.BadRequest(w, r, "Invalid query parameters", []models.FieldError{
			{Field: "lon", Message: "must be a number"},
		})
		return
	}
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	res, err := h.service.Assess(r.Context(), lat, lon, date)
	if err != nil {
		if errors.Is(err, comfort.ErrDateOutOfRange) {
			response.BadRequest(w, r, "Date out of allowed range", nil)
			return
		}
		response.InternalError(w, r, "comfort assessment failed")
		return
	}

	response.JSON(w, r, http.StatusOK, res)
}
