// Package fusion blends readings from the forecast, reanalysis, and
// climatology sources into the values the scoring layer consumes.
//
// The rules are deliberately simple: a one-shot linear bias correction for
// temperature, and strict first-present-wins preference ordering everywhere
// else. There is no weighting, no interpolation, and no state across calls.
package fusion

import (
	"math"

	"github.com/climasphere/climasphere/internal/reading"
)

// Inputs carries the per-source readings for one coordinate and date.
type Inputs struct {
	// GEOS-S2S sub-seasonal forecast.
	ForecastTemp     reading.Value // degrees C
	ForecastRH       reading.Value // percent
	ForecastWindU    reading.Value // m/s
	ForecastWindV    reading.Value // m/s

	// MERRA-2 reanalysis.
	ReanalysisTemp reading.Value // degrees C
	ReanalysisWind reading.Value // m/s magnitude

	// POWER climatology.
	ClimatologyTMax   reading.Value // degrees C
	ClimatologyTMin   reading.Value // degrees C
	ClimatologyRH     reading.Value // percent
	ClimatologyPrecip reading.Value // mm/day

	// GPM IMERG gridded precipitation.
	GriddedPrecip reading.Value // mm/day
}

// Blended is the fused view of the inputs.
type Blended struct {
	Temperature   reading.Value // bias-corrected, degrees C
	WindSpeed     reading.Value // m/s
	Humidity      reading.Value // percent
	Precipitation reading.Value // mm/day
}

// Blend applies the bias correction and preference ordering to the inputs.
func Blend(in Inputs) Blended {
	climMean := ClimatologyMean(in.ClimatologyTMax, in.ClimatologyTMin)
	return Blended{
		Temperature:   BiasCorrectTemperature(in.ForecastTemp, in.ReanalysisTemp, climMean),
		WindSpeed:     WindMagnitude(in.ForecastWindU, in.ForecastWindV).Or(in.ReanalysisWind),
		Humidity:      in.ForecastRH.Or(in.ClimatologyRH),
		Precipitation: in.GriddedPrecip.Or(in.ClimatologyPrecip),
	}
}

// BiasCorrectTemperature adjusts the forecast temperature by the offset
// between the reanalysis and the climatology mean. When the forecast itself
// is absent, the climatology mean stands in for it. When either side of the
// bias is missing, the forecast value passes through unchanged.
func BiasCorrectTemperature(forecast, reanalysis, climMean reading.Value) reading.Value {
	forecast = forecast.Or(climMean)

	re, okRe := reanalysis.Float()
	cm, okCm := climMean.Float()
	fc, okFc := forecast.Float()
	if okRe && okCm && okFc {
		return reading.Of(fc + (re - cm))
	}
	return forecast
}

// ClimatologyMean is the mean of the climatology daily max and min
// temperatures. It requires both: a lone extreme is not a daily mean.
func ClimatologyMean(tmax, tmin reading.Value) reading.Value {
	hi, okHi := tmax.Float()
	lo, okLo := tmin.Float()
	if !okHi || !okLo {
		return reading.Absent()
	}
	return reading.Of((hi + lo) / 2.0)
}

// WindMagnitude combines orthogonal 10 m wind components into a speed.
// Absent if either component is missing.
func WindMagnitude(u, v reading.Value) reading.Value {
	uu, okU := u.Float()
	vv, okV := v.Float()
	if !okU || !okV {
		return reading.Absent()
	}
	return reading.Of(math.Sqrt(uu*uu + vv*vv))
}
