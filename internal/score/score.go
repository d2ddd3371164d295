// Package score converts physical quantities into bounded risk scores.
//
// Every function here is pure: identical inputs produce identical outputs,
// all scores land in [0,100], and missing inputs degrade to absence or to a
// neutral contribution rather than an error.
package score

import (
	"math"

	"github.com/climasphere/climasphere/internal/reading"
)

// Tier is a discrete risk level derived from a numeric score.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// TierFor maps a score onto a tier using per-hazard thresholds.
func TierFor(score, medium, high float64) Tier {
	switch {
	case score >= high:
		return TierHigh
	case score >= medium:
		return TierMedium
	default:
		return TierLow
	}
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Logistic maps x onto [0,100] with midpoint x0 and steepness k:
// 100/(1+e^(-(x-x0)/k)). Numeric overflow degrades to 0.
func Logistic(x, x0, k float64) float64 {
	e := math.Exp(-((x - x0) / k))
	p := 100.0 / (1.0 + e)
	if math.IsNaN(p) {
		return 0
	}
	return p
}

// Magnus dew-point constants.
const (
	magnusA = 17.27
	magnusB = 237.7
)

// Humidex returns the humidity-adjusted apparent temperature in Celsius.
// Requires both temperature and relative humidity; any math domain error
// yields absence.
func Humidex(t, rh reading.Value) reading.Value {
	tc, okT := t.Float()
	rhPct, okRH := rh.Float()
	if !okT || !okRH {
		return reading.Absent()
	}

	alpha := (magnusA*tc)/(magnusB+tc) + math.Log(math.Max(1e-6, rhPct)/100.0)
	dew := (magnusB * alpha) / (magnusA - alpha)
	e := 6.11 * math.Exp(5417.7530*((1/273.16)-(1/(273.15+dew))))
	h := tc + (5.0/9.0)*(e-10.0)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return reading.Absent()
	}
	return reading.Of(h)
}

// WindChill returns the wind-adjusted apparent temperature in Celsius.
// Wind speed is in m/s. Above 10 degrees C, or below 4.8 km/h of wind, chill
// has no effect and the air temperature passes through unchanged.
func WindChill(t, windMS reading.Value) reading.Value {
	tc, okT := t.Float()
	ms, okW := windMS.Float()
	if !okT || !okW {
		return reading.Absent()
	}

	kmh := ms * 3.6
	if tc > 10 || kmh <= 4.8 {
		return reading.Of(tc)
	}
	pow := math.Pow(kmh, 0.16)
	return reading.Of(13.12 + 0.6215*tc - 11.37*pow + 0.3965*tc*pow)
}

// Band is a comfort confidence band: a center probability with lower and
// upper bounds, all integers in [0,100].
type Band struct {
	Center int `json:"center"`
	Low    int `json:"low"`
	High   int `json:"high"`
}

// ConfidenceBand pads a center probability by 15 points when at least one
// model-based source contributed, 10 points on a pure climatology fallback.
func ConfidenceBand(center float64, modelBased bool) Band {
	pad := 10.0
	if modelBased {
		pad = 15.0
	}
	return Band{
		Center: int(math.Round(Clamp(center, 0, 100))),
		Low:    int(math.Round(Clamp(center-pad, 0, 100))),
		High:   int(math.Round(Clamp(center+pad, 0, 100))),
	}
}
