package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/hazard/flood"
)

// FloodService computes flood risk for all states.
type FloodService interface {
	All(ctx context.Context, date time.Time) []flood.Record
	Early(ctx context.Context, date time.Time) []flood.EarlyRecord
}

// FloodHandler handles the flood prediction endpoints.
type FloodHandler struct {
	service FloodService
}

// NewFloodHandler creates a new FloodHandler.
func NewFloodHandler(service FloodService) *FloodHandler {
	return &FloodHandler{service: service}
}

// All handles GET|POST /predict/flood/all.
func (h *FloodHandler) All(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.All(r.Context(), date))
}

// Early handles GET|POST /predict/flood/early.
func (h *FloodHandler) Early(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.Early(r.Context(), date))
}
