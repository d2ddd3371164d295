// Package comfort assesses heat, cold, wind, and wet discomfort risk for a
// single point and date by fusing the sub-seasonal forecast with reanalysis
// and climatology.
package comfort

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/climasphere/climasphere/internal/fusion"
	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
	"github.com/climasphere/climasphere/internal/upstream/earthdata"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

// ErrDateOutOfRange is returned for dates outside the 0-60 day window.
var ErrDateOutOfRange = errors.New("date out of allowed range")

// maxLeadDays is the forecast window in days from today.
const maxLeadDays = 60

// GriddedSource provides the Earthdata model and satellite products.
type GriddedSource interface {
	GEOSForecastAt(ctx context.Context, date time.Time, lat, lon float64) (earthdata.GEOSForecast, error)
	MERRA2DailyAt(ctx context.Context, date time.Time, lat, lon float64) (earthdata.MERRA2Daily, error)
	IMERGDailyAt(ctx context.Context, date time.Time, lat, lon float64) (reading.Value, error)
}

// ClimatologySource provides the POWER daily point climatology.
type ClimatologySource interface {
	ComfortDaily(ctx context.Context, lat, lon float64, date time.Time) (power.ComfortDaily, error)
}

// ServiceConfig holds configuration for the comfort service.
type ServiceConfig struct {
	// Gridded is the Earthdata source (forecast, reanalysis, precipitation).
	Gridded GriddedSource

	// Climatology is the POWER fallback source.
	Climatology ClimatologySource

	// Logger for service operations.
	Logger zerolog.Logger

	// Clock supplies "today" for the date window check (optional).
	Clock clockwork.Clock
}

// Service computes comfort risk assessments.
type Service struct {
	gridded     GriddedSource
	climatology ClimatologySource
	logger      zerolog.Logger
	clock       clockwork.Clock
}

// NewService creates a new comfort service.
func NewService(cfg ServiceConfig) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		gridded:     cfg.Gridded,
		climatology: cfg.Climatology,
		logger:      cfg.Logger,
		clock:       clock,
	}
}

// Assess computes the four comfort indices for one point and date. Every
// upstream failure degrades to absence; only an out-of-window date fails.
func (s *Service) Assess(ctx context.Context, lat, lon float64, date time.Time) (*Response, error) {
	if err := s.checkWindow(date); err != nil {
		return nil, err
	}

	// The sub-seasonal forecast decides model-based vs climatology-fallback
	// provenance; its individual variables may still be absent.
	forecast, geosErr := s.gridded.GEOSForecastAt(ctx, date, lat, lon)
	modelBased := geosErr == nil
	if geosErr != nil {
		s.logger.Debug().Err(geosErr).Msg("forecast unavailable, climatology fallback")
	}

	griddedPrecip, err := s.gridded.IMERGDailyAt(ctx, date, lat, lon)
	if err != nil {
		griddedPrecip = reading.Absent()
	}

	reanalysis, err := s.gridded.MERRA2DailyAt(ctx, date, lat, lon)
	if err != nil {
		reanalysis = earthdata.MERRA2Daily{}
	}

	climatology, err := s.climatology.ComfortDaily(ctx, lat, lon, date)
	if err != nil {
		s.logger.Debug().Err(err).Msg("climatology unavailable")
		climatology = power.ComfortDaily{}
	}

	blended := fusion.Blend(fusion.Inputs{
		ForecastTemp:      forecast.Temp,
		ForecastRH:        forecast.RH,
		ForecastWindU:     forecast.WindU,
		ForecastWindV:     forecast.WindV,
		ReanalysisTemp:    reanalysis.Temp,
		ReanalysisWind:    reanalysis.Wind,
		ClimatologyTMax:   climatology.TMax,
		ClimatologyTMin:   climatology.TMin,
		ClimatologyRH:     climatology.RH,
		ClimatologyPrecip: climatology.Precip,
		GriddedPrecip:     griddedPrecip,
	})

	humidex := score.Humidex(blended.Temperature, blended.Humidity)
	windChill := score.WindChill(blended.Temperature, blended.WindSpeed)

	heatCenter := 0.0
	if h, ok := humidex.Float(); ok {
		heatCenter = score.Logistic(h, 35.0, 2.5)
	}

	// Cold uses 5-WC as input; without a wind chill the metric defaults to a
	// comfortable 20, mapping to near-zero risk.
	coldMetric := 20.0
	if wc, ok := windChill.Float(); ok {
		coldMetric = 5.0 - wc
	}
	coldCenter := score.Logistic(coldMetric, 0.0, 2.5)

	windCenter := 0.0
	if w, ok := blended.WindSpeed.Float(); ok {
		windCenter = score.Logistic(w, 10.0, 1.5)
	}

	wetCenter := 0.0
	if p, ok := blended.Precipitation.Float(); ok {
		wetCenter = score.Logistic(p, 2.0, 2.0)
	}

	source := SourceClimatology
	if modelBased {
		source = SourceModel
	}

	return &Response{
		Meta: Meta{
			Source: source,
			Lat:    fmt.Sprintf("%v", lat),
			Lon:    fmt.Sprintf("%v", lon),
			Date:   date.Format("2006-01-02"),
			Notes:  "Bias-corrected using POWER climatology delta vs MERRA-2",
		},
		Indices: Indices{
			Heat: score.ConfidenceBand(heatCenter, modelBased),
			Cold: score.ConfidenceBand(coldCenter, modelBased),
			Wind: score.ConfidenceBand(windCenter, modelBased),
			Wet:  score.ConfidenceBand(wetCenter, modelBased),
		},
	}, nil
}

func (s *Service) checkWindow(date time.Time) error {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	lead := int(date.UTC().Truncate(24 * time.Hour).Sub(today).Hours() / 24)
	if lead < 0 || lead > maxLeadDays {
		return ErrDateOutOfRange
	}
	return nil
}
