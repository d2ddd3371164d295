package comfort

import "github.com/climasphere/climasphere/internal/score"

// Meta describes the provenance of one assessment.
type Meta struct {
	Source string `json:"source"`
	Lat    string `json:"lat"`
	Lon    string `json:"lon"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

// Indices are the four comfort risk axes.
type Indices struct {
	Heat score.Band `json:"heat"`
	Cold score.Band `json:"cold"`
	Wind score.Band `json:"wind"`
	Wet  score.Band `json:"wet"`
}

// Response is the comfort risk assessment for one point and date.
type Response struct {
	Meta    Meta    `json:"meta"`
	Indices Indices `json:"indices"`
}

// Source strings reported in Meta.
const (
	SourceModel       = "geos-s2s+gpm+merra2+power"
	SourceClimatology = "power_climatology_fallback"
)
