// Package reading models optional physical readings from upstream sources.
//
// Absence is a first-class value: an upstream timeout, a missing field, or a
// sentinel-coded gap all collapse to an absent Value, and every consumer
// treats "absent" as a skip rather than a zero. The sentinel string
// "unavailable" exists only at the JSON edge.
package reading

import (
	"encoding/json"
	"math"
)

// Sentinel codes used by upstream products for missing data.
const (
	maxMagnitude = 1e6
)

// Value is an optional scalar reading. The zero Value is absent.
type Value struct {
	v  float64
	ok bool
}

// Of returns a present Value.
func Of(v float64) Value {
	return Value{v: v, ok: true}
}

// Absent returns an absent Value.
func Absent() Value {
	return Value{}
}

// From converts an optional pointer into a Value.
func From(p *float64) Value {
	if p == nil {
		return Absent()
	}
	return Sanitize(*p)
}

// Sanitize filters upstream sentinel encodings: -9999, -999, -99, NaN, and
// anything with magnitude over 1e6 become absent.
func Sanitize(v float64) Value {
	if math.IsNaN(v) {
		return Absent()
	}
	switch v {
	case -9999.0, -999.0, -99.0:
		return Absent()
	}
	if math.Abs(v) > maxMagnitude {
		return Absent()
	}
	return Of(v)
}

// Float returns the reading and whether it is present.
func (v Value) Float() (float64, bool) {
	return v.v, v.ok
}

// Present reports whether the reading holds a value.
func (v Value) Present() bool {
	return v.ok
}

// Or returns v if present, otherwise fallback. Chains express the
// first-present-source-wins preference ordering used by fusion.
func (v Value) Or(fallback Value) Value {
	if v.ok {
		return v
	}
	return fallback
}

// Map applies f to a present reading and leaves an absent one untouched.
func (v Value) Map(f func(float64) float64) Value {
	if !v.ok {
		return v
	}
	return Of(f(v.v))
}

// ClampPercent clamps a present reading to [0,100].
func (v Value) ClampPercent() Value {
	return v.Map(func(x float64) float64 {
		return math.Max(0, math.Min(100, x))
	})
}

// NonNeg clamps a present reading to be non-negative.
func (v Value) NonNeg() Value {
	return v.Map(func(x float64) float64 {
		return math.Max(0, x)
	})
}

// Round1 rounds a present reading to one decimal place.
func (v Value) Round1() Value {
	return v.Map(func(x float64) float64 {
		return math.Round(x*10) / 10
	})
}

// Round2 rounds a present reading to two decimal places.
func (v Value) Round2() Value {
	return v.Map(func(x float64) float64 {
		return math.Round(x*100) / 100
	})
}

// Ptr returns the reading as a pointer, nil when absent. Used where the wire
// format wants JSON null rather than the "unavailable" sentinel.
func (v Value) Ptr() *float64 {
	if !v.ok {
		return nil
	}
	f := v.v
	return &f
}

// Unavailable is the wire sentinel for an absent reading.
const Unavailable = "unavailable"

// MarshalJSON serializes a present reading as a number and an absent one as
// the literal string "unavailable", matching the public API contract.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return json.Marshal(Unavailable)
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts either a number or the "unavailable" sentinel.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Sanitize(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Absent()
	return nil
}

// Mean returns the mean of the present values, absent when none are present.
func Mean(values ...Value) Value {
	var sum float64
	var n int
	for _, v := range values {
		if v.ok {
			sum += v.v
			n++
		}
	}
	if n == 0 {
		return Absent()
	}
	return Of(sum / float64(n))
}
