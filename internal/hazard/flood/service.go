// Package flood assesses flood probability for all Australian states. The
// batch endpoint carries a wall-clock budget, checked between states, so a
// slow upstream cannot stall the whole response.
package flood

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
	"github.com/climasphere/climasphere/internal/states"
	"github.com/climasphere/climasphere/internal/upstream/earthdata"
	"github.com/climasphere/climasphere/internal/upstream/indices"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

// defaultBudget bounds the all-states batch wall clock.
const defaultBudget = 6 * time.Second

// RainSource provides the POWER daily rainfall.
type RainSource interface {
	ComfortDaily(ctx context.Context, lat, lon float64, date time.Time) (power.ComfortDaily, error)
}

// GriddedSource provides satellite rainfall and reanalysis soil moisture.
type GriddedSource interface {
	IMERGDailyAt(ctx context.Context, date time.Time, lat, lon float64) (reading.Value, error)
	MERRA2DailyAt(ctx context.Context, date time.Time, lat, lon float64) (earthdata.MERRA2Daily, error)
}

// IndexSource provides the shared climate indices.
type IndexSource interface {
	Fetch(ctx context.Context) indices.Pair
}

// WarningSource provides BoM warning titles.
type WarningSource interface {
	Warnings(ctx context.Context) []string
}

// ServiceConfig holds configuration for the flood service.
type ServiceConfig struct {
	// Rain is the POWER daily source (used only with LiveReads).
	Rain RainSource

	// Gridded is the Earthdata source (used only with LiveReads).
	Gridded GriddedSource

	// Indices is the shared climate-index source.
	Indices IndexSource

	// Warnings is the BoM warnings source (used only with LiveReads).
	Warnings WarningSource

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock drives the batch budget (optional).
	Clock clockwork.Clock

	// Budget is the batch wall-clock budget (default: 6s).
	Budget time.Duration

	// RiverLevel is the placeholder river gauge level in percent
	// (default: 65) until a real gauge feed is wired in.
	RiverLevel float64

	// LiveReads enables the slow per-state upstream reads. Off keeps the
	// endpoint fast: rainfall and soil moisture report unavailable.
	LiveReads bool
}

// Service computes flood assessments.
type Service struct {
	rain       RainSource
	gridded    GriddedSource
	indices    IndexSource
	warnings   WarningSource
	logger     zerolog.Logger
	clock      clockwork.Clock
	budget     time.Duration
	riverLevel float64
	liveReads  bool
}

// NewService creates a new flood service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	budget := cfg.Budget
	if budget == 0 {
		budget = defaultBudget
	}
	riverLevel := cfg.RiverLevel
	if riverLevel == 0 {
		riverLevel = 65
	}
	return &Service{
		rain:       cfg.Rain,
		gridded:    cfg.Gridded,
		indices:    cfg.Indices,
		warnings:   cfg.Warnings,
		logger:     cfg.Logger,
		clock:      clock,
		budget:     budget,
		riverLevel: riverLevel,
		liveReads:  cfg.LiveReads,
	}
}

var advice = map[score.Tier]string{
	score.TierLow:    "No immediate flood risk.",
	score.TierMedium: "Stay alert, minor flooding possible.",
	score.TierHigh:   "Flood risk high – follow official BoM alerts.",
}

var earlyAdvice = map[score.Tier]string{
	score.TierLow:    "Early Prediction: Low Flood Risk based on ENSO/IOD",
	score.TierMedium: "Early Prediction: Medium Flood Risk based on ENSO/IOD",
	score.TierHigh:   "Early Prediction: High Flood Risk based on ENSO/IOD",
}

// All assesses states in table order until the wall-clock budget runs out.
// The budget is checked between states, so an in-flight upstream call can
// still overrun it; the response simply contains fewer states.
func (s *Service) All(ctx context.Context, date time.Time) []Record {
	pair := s.indices.Fetch(ctx)
	dateStr := date.Format("2006-01-02")

	warnings := []string{}
	bomWarning := false
	if s.liveReads && s.warnings != nil {
		warnings = s.warnings.Warnings(ctx)
		for _, w := range warnings {
			if strings.Contains(w, "Flood") {
				bomWarning = true
				break
			}
		}
	}

	start := s.clock.Now()
	results := make([]Record, 0, len(states.All()))
	for _, st := range states.All() {
		rainPower, rainGPM, soil := s.readings(ctx, st, date)
		river := reading.Of(s.riverLevel)

		prob, tier := score.Flood(rainGPM, rainPower, soil, river, pair.ONI.Value, pair.IOD.Value, bomWarning)

		results = append(results, Record{
			State:            st.Name,
			Lat:              st.Lat,
			Lon:              st.Lon,
			Date:             dateStr,
			RainfallPower:    rainPower,
			RainfallGPM:      rainGPM,
			SoilMoisture:     soil,
			RiverLevel:       river,
			FloodProbability: math.Round(prob*100) / 100,
			FloodRisk:        string(tier),
			AIAdvice:         advice[tier],
			ENSOONI:          pair.ONI.Echo(),
			IODIndex:         pair.IOD.Echo(),
			BOMWarnings:      warnings,
		})

		if s.clock.Since(start) > s.budget {
			s.logger.Warn().
				Int("states_done", len(results)).
				Dur("budget", s.budget).
				Msg("flood batch budget exceeded")
			break
		}
	}
	return results
}

func (s *Service) readings(ctx context.Context, st states.State, date time.Time) (rainPower, rainGPM, soil reading.Value) {
	rainPower = reading.Absent()
	rainGPM = reading.Absent()
	soil = reading.Absent()
	if !s.liveReads {
		return
	}

	if s.rain != nil {
		if daily, err := s.rain.ComfortDaily(ctx, st.Lat, st.Lon, date); err == nil {
			rainPower = daily.Precip.NonNeg()
		}
	}
	if s.gridded != nil {
		if v, err := s.gridded.IMERGDailyAt(ctx, date, st.Lat, st.Lon); err == nil {
			rainGPM = v
		}
		if merra, err := s.gridded.MERRA2DailyAt(ctx, date, st.Lat, st.Lon); err == nil {
			soil = merra.Soil
		}
	}
	return
}

// Early computes the index-only seasonal outlook.
func (s *Service) Early(ctx context.Context, date time.Time) []EarlyRecord {
	pair := s.indices.Fetch(ctx)
	prob, tier := score.FloodSeasonal(pair.ONI.Value, pair.IOD.Value)
	rounded := int(math.Round(prob))
	dateStr := date.Format("2006-01-02")

	results := make([]EarlyRecord, 0, len(states.All()))
	for _, st := range states.All() {
		results = append(results, EarlyRecord{
			State:                st.Name,
			Lat:                  st.Lat,
			Lon:                  st.Lon,
			Date:                 dateStr,
			ENSOONI:              pair.ONI.Echo(),
			IODIndex:             pair.IOD.Echo(),
			FloodProbability:     rounded,
			RiskLevel:            string(tier),
			AIAdvice:             earlyAdvice[tier],
			FormationProbability: rounded,
		})
	}
	return results
}
