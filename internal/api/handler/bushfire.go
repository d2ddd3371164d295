package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/hazard/bushfire"
)

// BushfireService computes bushfire risk for all states.
type BushfireService interface {
	All(ctx context.Context, date time.Time) []bushfire.Record
	Early(ctx context.Context, date time.Time) []bushfire.EarlyRecord
}

// BushfireHandler handles the bushfire prediction endpoints.
type BushfireHandler struct {
	service BushfireService
}

// NewBushfireHandler creates a new BushfireHandler.
func NewBushfireHandler(service BushfireService) *BushfireHandler {
	return &BushfireHandler{service: service}
}

// All handles GET|POST /predict/bushfire/all.
func (h *BushfireHandler) All(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.All(r.Context(), date))
}

// Early handles GET|POST /predict/bushfire/early.
func (h *BushfireHandler) Early(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(r)
	if !ok {
		response.BadRequest(w, r, "Invalid date format", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.Early(r.Context(), date))
}
