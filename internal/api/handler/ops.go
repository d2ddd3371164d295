package handler

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/climasphere/climasphere/internal/api/models"
	"github.com/climasphere/climasphere/internal/api/response"
	"github.com/climasphere/climasphere/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	feeds     *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, feeds *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		feeds:     feeds,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// serves degraded responses while feeds are down, so readiness only requires
// that the process is up and the feed registry is populated.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatusOK
	if h.feeds != nil && h.feeds.FeedCount() == 0 {
		status = models.HealthStatusDegraded
	}
	health := models.Health{
		Status: status,
		Time:   models.Timestamp(time.Now()),
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - per-feed circuit status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	overall := models.HealthStatusOK
	feeds := []models.FeedStatus{}

	if h.feeds != nil {
		for _, fh := range h.feeds.GetAllHealth() {
			fs := models.FeedStatus{
				Feed:         fh.Name,
				Status:       feedStatus(fh),
				CircuitState: fh.CircuitState.String(),
			}
			if fh.LastSuccessAt != nil {
				ts := models.Timestamp(*fh.LastSuccessAt)
				fs.LastSuccessAt = &ts
			}
			if fh.LastFailureAt != nil {
				ts := models.Timestamp(*fh.LastFailureAt)
				fs.LastFailureAt = &ts
			}
			if fh.LastError != "" {
				msg := fh.LastError
				fs.Message = &msg
			}
			feeds = append(feeds, fs)

			if fs.Status != models.HealthStatusOK && overall == models.HealthStatusOK {
				overall = models.HealthStatusDegraded
			}
		}
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status: overall,
		Time:   models.Timestamp(time.Now()),
		Feeds:  feeds,
	})
}

func feedStatus(fh *resilience.FeedHealth) models.HealthStatus {
	switch fh.CircuitState {
	case gobreaker.StateOpen:
		return models.HealthStatusFail
	case gobreaker.StateHalfOpen:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusOK
	}
}
