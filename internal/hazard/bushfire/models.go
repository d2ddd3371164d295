package bushfire

import "github.com/climasphere/climasphere/internal/reading"

// Record is the per-state bushfire assessment. Absent readings serialize as
// the "unavailable" sentinel; the index echoes carry either the numeric
// index or its status string.
type Record struct {
	State             string        `json:"state"`
	Lat               float64       `json:"lat"`
	Lon               float64       `json:"lon"`
	Date              string        `json:"date"`
	Temperature       reading.Value `json:"temperature"`
	Humidity          reading.Value `json:"humidity"`
	WindSpeed         reading.Value `json:"wind_speed"`
	VegetationDryness reading.Value `json:"vegetation_dryness"`
	RiskScore         float64       `json:"risk_score"`
	RiskLevel         string        `json:"risk_level"`
	AIAdvice          string        `json:"ai_advice"`
	ENSOONI           interface{}   `json:"enso_oni"`
	IODIndex          interface{}   `json:"iod_index"`
}

// EarlyRecord is the per-state seasonal outlook, computed from the climate
// indices alone.
type EarlyRecord struct {
	State               string      `json:"state"`
	Lat                 float64     `json:"lat"`
	Lon                 float64     `json:"lon"`
	Date                string      `json:"date"`
	ENSOONI             interface{} `json:"enso_oni"`
	IODIndex            interface{} `json:"iod_index"`
	BushfireProbability int         `json:"bushfire_probability"`
	RiskLevel           string      `json:"risk_level"`
	AIAdvice            string      `json:"ai_advice"`
}
