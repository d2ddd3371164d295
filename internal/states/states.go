// Package states holds the fixed table of Australian states and territories
// used by every hazard endpoint. The table is read-only and shared; batch
// responses follow its iteration order.
package states

import (
	"errors"
	"strings"
)

// ErrUnknownState is returned when a name or abbreviation does not match any
// of the 8 states/territories.
var ErrUnknownState = errors.New("unknown state or territory")

// State is one Australian state or territory with its centroid coordinate.
type State struct {
	Name string
	Abbr string
	Lat  float64
	Lon  float64
}

// All returns the 8 states/territories in fixed iteration order.
// Batch endpoints emit results in exactly this order.
func All() []State {
	return table
}

var table = []State{
	{Name: "Queensland", Abbr: "QLD", Lat: -20.9176, Lon: 142.7028},
	{Name: "New South Wales", Abbr: "NSW", Lat: -33.8688, Lon: 151.2093},
	{Name: "Victoria", Abbr: "VIC", Lat: -37.8136, Lon: 144.9631},
	{Name: "Tasmania", Abbr: "TAS", Lat: -42.8821, Lon: 147.3272},
	{Name: "Western Australia", Abbr: "WA", Lat: -31.9505, Lon: 115.8605},
	{Name: "South Australia", Abbr: "SA", Lat: -34.9285, Lon: 138.6007},
	{Name: "Northern Territory", Abbr: "NT", Lat: -12.4634, Lon: 130.8456},
	{Name: "Australian Capital Territory", Abbr: "ACT", Lat: -35.2809, Lon: 149.1300},
}

// Normalize resolves a full name or 2-3 letter abbreviation,
// case-insensitively, to its canonical State entry.
func Normalize(s string) (State, error) {
	key := strings.TrimSpace(s)
	if key == "" {
		return State{}, ErrUnknownState
	}
	upper := strings.ToUpper(key)
	lower := strings.ToLower(key)
	for _, st := range table {
		if st.Abbr == upper || strings.ToLower(st.Name) == lower {
			return st, nil
		}
	}
	return State{}, ErrUnknownState
}
