package cyclone

import "github.com/climasphere/climasphere/internal/reading"

// Record is the single-location cyclone assessment. SST is always present
// because it is estimated; pressure and wind are null when absent, while
// rainfall uses the "unavailable" sentinel. The mixed conventions are kept
// for wire compatibility.
type Record struct {
	State                string        `json:"state"`
	Lat                  float64       `json:"lat"`
	Lon                  float64       `json:"lon"`
	Date                 string        `json:"date"`
	SST                  float64       `json:"sst"`
	Pressure             *float64      `json:"pressure"`
	WindSpeed            *float64      `json:"wind_speed"`
	Rainfall             reading.Value `json:"rainfall"`
	RiskLevel            string        `json:"risk_level"`
	FormationProbability int           `json:"formation_probability"`
	CycloneCategory      string        `json:"cyclone_category"`
	AIAdvice             string        `json:"ai_advice"`
	BOMWarnings          []string      `json:"bom_warnings"`
}

// BatchRecord is the all-states variant, which additionally echoes the
// climate indices.
type BatchRecord struct {
	Record
	ENSOONI  interface{} `json:"enso_oni"`
	IODIndex interface{} `json:"iod_index"`
}

// EarlyRecord is the per-state seasonal outlook: estimated SST, no live
// meteorology, probability from the climate indices alone.
type EarlyRecord struct {
	State                string        `json:"state"`
	Lat                  float64       `json:"lat"`
	Lon                  float64       `json:"lon"`
	Date                 string        `json:"date"`
	SST                  float64       `json:"sst"`
	Pressure             *float64      `json:"pressure"`
	WindSpeed            *float64      `json:"wind_speed"`
	Rainfall             reading.Value `json:"rainfall"`
	RiskLevel            string        `json:"risk_level"`
	FormationProbability int           `json:"formation_probability"`
	CycloneCategory      string        `json:"cyclone_category"`
	AIAdvice             string        `json:"ai_advice"`
	ENSOONI              interface{}   `json:"enso_oni"`
	IODIndex             interface{}   `json:"iod_index"`
}
