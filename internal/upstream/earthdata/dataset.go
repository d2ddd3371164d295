package earthdata

import (
	"encoding/json"
	"fmt"

	"github.com/umahmood/haversine"

	"github.com/climasphere/climasphere/internal/reading"
)

// Dataset is a gridded variable subset for a single day: one latitude axis,
// one longitude axis, and named 2-D variable grids indexed [lat][lon].
// The archive mirrors serve these as JSON; coordinate axes may be named
// lat/lon or latitude/longitude.
type Dataset struct {
	Lats []float64
	Lons []float64
	Vars map[string][][]float64
}

type datasetPayload struct {
	Lat       []float64              `json:"lat"`
	Latitude  []float64              `json:"latitude"`
	Lon       []float64              `json:"lon"`
	Longitude []float64              `json:"longitude"`
	Variables map[string][][]float64 `json:"variables"`
}

// UnmarshalJSON accepts either coordinate naming convention.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var p datasetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	d.Lats = p.Lat
	if len(d.Lats) == 0 {
		d.Lats = p.Latitude
	}
	d.Lons = p.Lon
	if len(d.Lons) == 0 {
		d.Lons = p.Longitude
	}
	d.Vars = p.Variables

	if len(d.Lats) == 0 || len(d.Lons) == 0 {
		return fmt.Errorf("dataset has no coordinate axes")
	}
	return nil
}

// Select returns the named variable at the grid cell nearest to (lat, lon),
// or absent when the variable is missing or the grid is malformed. When the
// longitude axis runs 0-360 the requested longitude is normalized to match.
func (d *Dataset) Select(name string, lat, lon float64) reading.Value {
	grid, ok := d.Vars[name]
	if !ok {
		return reading.Absent()
	}

	lonNorm := lon
	if maxOf(d.Lons) > 180 {
		lonNorm = normalizeLon(lon)
	}

	latIdx := nearestIndex(d.Lats, lat)
	lonIdx := nearestIndex(d.Lons, lonNorm)

	if latIdx >= len(grid) || lonIdx >= len(grid[latIdx]) {
		return reading.Absent()
	}
	return reading.Sanitize(grid[latIdx][lonIdx])
}

// SelectFirst returns the first candidate variable that yields a present
// value. Archives rename near-surface variables across collections, so
// callers pass the known spellings in preference order.
func (d *Dataset) SelectFirst(names []string, lat, lon float64) reading.Value {
	for _, name := range names {
		if v := d.Select(name, lat, lon); v.Present() {
			return v
		}
	}
	return reading.Absent()
}

// CellDistanceKm is the great-circle distance from (lat, lon) to the center
// of its nearest grid cell. Used for diagnostics when a coarse grid is
// queried far from any cell center.
func (d *Dataset) CellDistanceKm(lat, lon float64) float64 {
	lonNorm := lon
	if maxOf(d.Lons) > 180 {
		lonNorm = normalizeLon(lon)
	}
	cell := haversine.Coord{
		Lat: d.Lats[nearestIndex(d.Lats, lat)],
		Lon: d.Lons[nearestIndex(d.Lons, lonNorm)],
	}
	_, km := haversine.Distance(haversine.Coord{Lat: lat, Lon: lonNorm}, cell)
	return km
}

func nearestIndex(axis []float64, target float64) int {
	best := 0
	bestDiff := diff(axis[0], target)
	for i := 1; i < len(axis); i++ {
		if d := diff(axis[i], target); d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return best
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func maxOf(axis []float64) float64 {
	m := axis[0]
	for _, v := range axis[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func normalizeLon(lon float64) float64 {
	normalized := lon
	for normalized < 0 {
		normalized += 360.0
	}
	for normalized >= 360 {
		normalized -= 360.0
	}
	return normalized
}
