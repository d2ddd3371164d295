package flood

import "github.com/climasphere/climasphere/internal/reading"

// Record is the per-state flood assessment.
type Record struct {
	State            string        `json:"state"`
	Lat              float64       `json:"lat"`
	Lon              float64       `json:"lon"`
	Date             string        `json:"date"`
	RainfallPower    reading.Value `json:"rainfall_power"`
	RainfallGPM      reading.Value `json:"rainfall_gpm"`
	SoilMoisture     reading.Value `json:"soil_moisture"`
	RiverLevel       reading.Value `json:"river_level"`
	FloodProbability float64       `json:"flood_probability"`
	FloodRisk        string        `json:"flood_risk"`
	AIAdvice         string        `json:"ai_advice"`
	ENSOONI          interface{}   `json:"enso_oni"`
	IODIndex         interface{}   `json:"iod_index"`
	BOMWarnings      []string      `json:"bom_warnings"`
}

// EarlyRecord is the per-state seasonal outlook. The duplicated probability
// under formation_probability is kept for wire compatibility with existing
// consumers.
type EarlyRecord struct {
	State                string      `json:"state"`
	Lat                  float64     `json:"lat"`
	Lon                  float64     `json:"lon"`
	Date                 string      `json:"date"`
	ENSOONI              interface{} `json:"enso_oni"`
	IODIndex             interface{} `json:"iod_index"`
	FloodProbability     int         `json:"flood_probability"`
	RiskLevel            string      `json:"risk_level"`
	AIAdvice             string      `json:"ai_advice"`
	FormationProbability int         `json:"formation_probability"`
}
