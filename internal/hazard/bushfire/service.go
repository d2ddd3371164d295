// Package bushfire assesses bushfire risk for all Australian states from
// POWER daily meteorology and the shared climate indices.
package bushfire

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
	"github.com/climasphere/climasphere/internal/states"
	"github.com/climasphere/climasphere/internal/upstream/indices"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

// FireSource provides the POWER fire-weather variable set.
type FireSource interface {
	FireDaily(ctx context.Context, lat, lon float64, date time.Time) (power.FireDaily, error)
}

// IndexSource provides the shared climate indices.
type IndexSource interface {
	Fetch(ctx context.Context) indices.Pair
}

// ServiceConfig holds configuration for the bushfire service.
type ServiceConfig struct {
	// Fire is the POWER daily source.
	Fire FireSource

	// Indices is the shared climate-index source.
	Indices IndexSource

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service computes bushfire assessments.
type Service struct {
	fire    FireSource
	indices IndexSource
	logger  zerolog.Logger
}

// NewService creates a new bushfire service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		fire:    cfg.Fire,
		indices: cfg.Indices,
		logger:  cfg.Logger,
	}
}

var advice = map[score.Tier]string{
	score.TierLow:    "No immediate bushfire risk.",
	score.TierMedium: "Exercise caution; conditions may favor small fires.",
	score.TierHigh:   "High bushfire risk – follow official warnings.",
}

var earlyAdvice = map[score.Tier]string{
	score.TierLow:    "Seasonal outlook: Low bushfire risk based on ENSO/IOD.",
	score.TierMedium: "Seasonal outlook: Elevated bushfire risk – prepare and stay informed.",
	score.TierHigh:   "Seasonal outlook: High bushfire risk – prepare for hotter and drier-than-normal conditions.",
}

// All assesses every state sequentially, in table order. The climate indices
// are fetched once and shared; a state whose upstream read fails reports
// unavailable readings rather than aborting the batch.
func (s *Service) All(ctx context.Context, date time.Time) []Record {
	pair := s.indices.Fetch(ctx)
	dateStr := date.Format("2006-01-02")

	results := make([]Record, 0, len(states.All()))
	for _, st := range states.All() {
		met, err := s.fire.FireDaily(ctx, st.Lat, st.Lon, date)
		if err != nil {
			s.logger.Warn().Err(err).Str("state", st.Name).Msg("fire weather unavailable")
			met = power.FireDaily{}
		}

		humidity := met.Humidity.ClampPercent()
		wind := met.Wind.NonNeg()
		precip := met.Precip.NonNeg()
		dryness := heuristicDryness(humidity, wind, precip)

		riskScore, tier := score.Bushfire(met.Temp, humidity, wind, dryness, pair.ONI.Value, pair.IOD.Value)

		results = append(results, Record{
			State:             st.Name,
			Lat:               st.Lat,
			Lon:               st.Lon,
			Date:              dateStr,
			Temperature:       met.Temp,
			Humidity:          humidity,
			WindSpeed:         wind,
			VegetationDryness: dryness,
			RiskScore:         math.Round(riskScore*100) / 100,
			RiskLevel:         string(tier),
			AIAdvice:          advice[tier],
			ENSOONI:           pair.ONI.Echo(),
			IODIndex:          pair.IOD.Echo(),
		})
	}
	return results
}

// Early computes the index-only seasonal outlook: one shared baseline,
// echoed per state with no live upstream reads.
func (s *Service) Early(ctx context.Context, date time.Time) []EarlyRecord {
	pair := s.indices.Fetch(ctx)
	base, tier := score.BushfireSeasonal(pair.ONI.Value, pair.IOD.Value)
	dateStr := date.Format("2006-01-02")

	results := make([]EarlyRecord, 0, len(states.All()))
	for _, st := range states.All() {
		results = append(results, EarlyRecord{
			State:               st.Name,
			Lat:                 st.Lat,
			Lon:                 st.Lon,
			Date:                dateStr,
			ENSOONI:             pair.ONI.Echo(),
			IODIndex:            pair.IOD.Echo(),
			BushfireProbability: int(math.Round(base)),
			RiskLevel:           string(tier),
			AIAdvice:            earlyAdvice[tier],
		})
	}
	return results
}

// heuristicDryness estimates vegetation dryness when no satellite product is
// available: the mean of humidity-implied and rainfall-implied dryness, with
// a wind boost capped at 12 points.
func heuristicDryness(humidity, wind, precip reading.Value) reading.Value {
	d := reading.Mean(
		humidity.Map(func(h float64) float64 { return score.Clamp(100.0-h, 0, 100) }),
		precip.Map(func(p float64) float64 { return math.Max(0, 100.0-p*2.0) }),
	)
	if !d.Present() {
		return reading.Absent()
	}
	if w, ok := wind.Float(); ok {
		d = d.Map(func(x float64) float64 {
			return math.Min(100.0, math.Max(0, x)+math.Min(12.0, w*1.2))
		})
	}
	return d.ClampPercent().Round1()
}
