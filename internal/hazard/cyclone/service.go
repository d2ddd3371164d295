// Package cyclone assesses tropical cyclone formation risk from POWER
// meteorology, an estimated sea surface temperature, BoM warnings, and
// optional satellite rainfall.
package cyclone

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
	"github.com/climasphere/climasphere/internal/states"
	"github.com/climasphere/climasphere/internal/upstream/indices"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

// ErrFutureDate is returned by the batch assessment for dates after today.
var ErrFutureDate = errors.New("future dates not allowed")

// MetSource provides the POWER cyclone variable set.
type MetSource interface {
	CycloneDaily(ctx context.Context, lat, lon float64, date time.Time) (power.CycloneDaily, error)
}

// RainfallSource provides satellite daily rainfall.
type RainfallSource interface {
	IMERGDailyAt(ctx context.Context, date time.Time, lat, lon float64) (reading.Value, error)
}

// WarningSource provides BoM warning titles.
type WarningSource interface {
	Warnings(ctx context.Context) []string
}

// IndexSource provides the shared climate indices.
type IndexSource interface {
	Fetch(ctx context.Context) indices.Pair
}

// ServiceConfig holds configuration for the cyclone service.
type ServiceConfig struct {
	// Met is the POWER daily source.
	Met MetSource

	// Rainfall is the satellite rainfall source (optional without token).
	Rainfall RainfallSource

	// Warnings is the BoM warnings source.
	Warnings WarningSource

	// Indices is the shared climate-index source.
	Indices IndexSource

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock supplies "today" for the future-date check (optional).
	Clock clockwork.Clock
}

// Service computes cyclone assessments.
type Service struct {
	met      MetSource
	rainfall RainfallSource
	warnings WarningSource
	indices  IndexSource
	logger   zerolog.Logger
	clock    clockwork.Clock
}

// NewService creates a new cyclone service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		met:      cfg.Met,
		rainfall: cfg.Rainfall,
		warnings: cfg.Warnings,
		indices:  cfg.Indices,
		logger:   cfg.Logger,
		clock:    clock,
	}
}

// Point assesses one location. The state identifies the region for the
// advisory text; the coordinate is the caller's, not the state centroid.
func (s *Service) Point(ctx context.Context, st states.State, lat, lon float64, date time.Time) *Record {
	warnings := s.warnings.Warnings(ctx)
	rec := s.assess(ctx, st.Name, lat, lon, date, warnings)
	return &rec
}

// All assesses every state centroid with one shared warnings and indices
// fetch. Dates after today are rejected.
func (s *Service) All(ctx context.Context, date time.Time) ([]BatchRecord, error) {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	if date.UTC().Truncate(24 * time.Hour).After(today) {
		return nil, ErrFutureDate
	}

	warnings := s.warnings.Warnings(ctx)
	pair := s.indices.Fetch(ctx)

	results := make([]BatchRecord, 0, len(states.All()))
	for _, st := range states.All() {
		results = append(results, BatchRecord{
			Record:   s.assess(ctx, st.Name, st.Lat, st.Lon, date, warnings),
			ENSOONI:  pair.ONI.Echo(),
			IODIndex: pair.IOD.Echo(),
		})
	}
	return results, nil
}

// Early computes the index-only seasonal outlook. Future dates are allowed.
func (s *Service) Early(ctx context.Context, date time.Time) []EarlyRecord {
	pair := s.indices.Fetch(ctx)
	prob, tier := score.CycloneSeasonal(pair.ONI.Value, pair.IOD.Value)
	probInt := int(math.Round(prob))
	dateStr := date.Format("2006-01-02")

	results := make([]EarlyRecord, 0, len(states.All()))
	for _, st := range states.All() {
		sst := EstimateSST(st.Lat, date.Month())
		results = append(results, EarlyRecord{
			State:                st.Name,
			Lat:                  st.Lat,
			Lon:                  st.Lon,
			Date:                 dateStr,
			SST:                  round2(sst),
			Pressure:             nil,
			WindSpeed:            nil,
			Rainfall:             reading.Absent(),
			RiskLevel:            string(tier),
			FormationProbability: probInt,
			CycloneCategory:      categoryFor(tier),
			AIAdvice: fmt.Sprintf(
				"Seasonal outlook – %s: ENSO/IOD suggest %s risk. Continue monitoring updates.",
				st.Name, strings.ToLower(string(tier))),
			ENSOONI:  pair.ONI.Echo(),
			IODIndex: pair.IOD.Echo(),
		})
	}
	return results
}

func (s *Service) assess(ctx context.Context, state string, lat, lon float64, date time.Time, warnings []string) Record {
	met, err := s.met.CycloneDaily(ctx, lat, lon, date)
	if err != nil {
		s.logger.Warn().Err(err).Str("state", state).Msg("cyclone meteorology unavailable")
		met = power.CycloneDaily{}
	}

	windKmh := met.Wind10M.Or(met.Wind2M).Map(func(ms float64) float64 { return ms * 3.6 })
	sst := EstimateSST(lat, date.Month())

	rainfall := reading.Absent()
	if s.rainfall != nil {
		if v, rErr := s.rainfall.IMERGDailyAt(ctx, date, lat, lon); rErr == nil {
			rainfall = v
		}
	}

	tier := computeRisk(met.TMax, met.Pressure, windKmh, warnings)

	return Record{
		State:                state,
		Lat:                  lat,
		Lon:                  lon,
		Date:                 date.Format("2006-01-02"),
		SST:                  round2(sst),
		Pressure:             met.Pressure.Round1().Ptr(),
		WindSpeed:            windKmh.Round1().Ptr(),
		Rainfall:             rainfall,
		RiskLevel:            string(tier),
		FormationProbability: formationProbability(tier),
		CycloneCategory:      categoryFor(tier),
		AIAdvice:             craftAdvice(state, sst, met.Pressure, windKmh, tier),
		BOMWarnings:          warnings,
	}
}

// computeRisk is the heuristic tier: an official cyclone warning or a hot,
// low-pressure, windy day is High; warm and moderately low pressure is
// Medium. All three readings must be present for either.
func computeRisk(temp, pressure, windKmh reading.Value, warnings []string) score.Tier {
	t, okT := temp.Float()
	p, okP := pressure.Float()
	w, okW := windKmh.Float()
	if !okT || !okP || !okW {
		return score.TierLow
	}

	cycloneWarned := false
	for _, title := range warnings {
		if strings.Contains(title, "Cyclone") {
			cycloneWarned = true
			break
		}
	}

	switch {
	case cycloneWarned || (t > 28 && p < 1000 && w > 80):
		return score.TierHigh
	case t > 26 && p < 1010:
		return score.TierMedium
	default:
		return score.TierLow
	}
}

func formationProbability(tier score.Tier) int {
	switch tier {
	case score.TierHigh:
		return 68
	case score.TierMedium:
		return 45
	default:
		return 15
	}
}

func categoryFor(tier score.Tier) string {
	switch tier {
	case score.TierHigh:
		return "Category 3"
	case score.TierMedium:
		return "Category 1"
	default:
		return "None"
	}
}

func craftAdvice(state string, sst float64, pressure, windKmh reading.Value, tier score.Tier) string {
	drivers := []string{}
	if sst >= 28.0 {
		drivers = append(drivers, "warm SST")
	}
	if p, ok := pressure.Float(); ok && p < 1005 {
		drivers = append(drivers, "low surface pressure")
	}
	if w, ok := windKmh.Float(); ok && w >= 90 {
		drivers = append(drivers, "strong winds")
	}
	driverTxt := "current atmospheric conditions"
	if len(drivers) > 0 {
		driverTxt = strings.Join(drivers, ", ")
	}

	switch tier {
	case score.TierHigh:
		return fmt.Sprintf("High Risk Alert – %s: %s. Prepare and monitor official guidance.", state, driverTxt)
	case score.TierMedium:
		return fmt.Sprintf("Medium Risk Alert – %s: %s. Monitor the system closely.", state, driverTxt)
	default:
		return fmt.Sprintf("Low Risk – %s: Conditions are less favorable for cyclone formation.", state)
	}
}

// EstimateSST approximates sea surface temperature from latitude and season:
// warmer toward the equator, peaking around February, clamped to [18,31].
func EstimateSST(lat float64, month time.Month) float64 {
	base := 30.0 - 0.25*math.Abs(lat)
	seasonal := 3.0 * math.Cos(((float64(month)-2)/12.0)*2*math.Pi)
	return score.Clamp(base+seasonal, 18.0, 31.0)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
