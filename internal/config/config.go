// Package config loads the immutable process configuration from the
// environment. Nothing else in the codebase reads environment variables;
// clients and services receive what they need explicitly.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all process configuration. Constructed once at startup and
// passed by value; never mutated afterwards.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Env is the deployment environment name (development, production).
	Env string

	// OTLPEndpoint is the OpenTelemetry collector endpoint.
	OTLPEndpoint string

	// TelemetryEnabled turns on OTLP trace and metric export.
	TelemetryEnabled bool

	// EarthdataToken is the NASA Earthdata bearer token. When empty the
	// gridded sources (GEOS-S2S, MERRA-2, GPM IMERG) are skipped entirely
	// without a network call.
	EarthdataToken string

	// PowerBaseURL is the NASA POWER API base URL.
	PowerBaseURL string

	// GESDISCBaseURL is the GES DISC archive base URL (MERRA-2, IMERG).
	GESDISCBaseURL string

	// GEOSBaseURL is the GMAO S2S data share base URL.
	GEOSBaseURL string

	// ONIURL is the NOAA ONI text resource.
	ONIURL string

	// IODURL is the BoM IOD text resource.
	IODURL string

	// BOMWarningsURL is the BoM warnings XML feed.
	BOMWarningsURL string

	// FloodBatchBudget is the wall-clock budget for the flood all-states
	// batch, checked between states.
	FloodBatchBudget time.Duration

	// FloodLiveReads enables the slow per-state upstream reads on the
	// flood batch endpoint. Off by default to keep the endpoint fast.
	FloodLiveReads bool

	// RiverLevelDefault is the placeholder river gauge level (percent)
	// used until a real gauge feed is wired in.
	RiverLevelDefault float64
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	budget, err := time.ParseDuration(getEnvOrDefault("FLOOD_BATCH_BUDGET", "6s"))
	if err != nil {
		budget = 6 * time.Second
	}
	river, err := strconv.ParseFloat(getEnvOrDefault("RIVER_LEVEL_DEFAULT", "65"), 64)
	if err != nil {
		river = 65
	}

	token := os.Getenv("EARTHDATA_TOKEN")
	if token == "" {
		token = os.Getenv("NASA_EARTHDATA_TOKEN")
	}

	return Config{
		Port:              getEnvOrDefault("APP_PORT", "8080"),
		Env:               getEnvOrDefault("APP_ENV", "development"),
		OTLPEndpoint:      getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled:  os.Getenv("OTEL_ENABLED") == "true",
		EarthdataToken:    token,
		PowerBaseURL:      getEnvOrDefault("POWER_BASE_URL", "https://power.larc.nasa.gov/api"),
		GESDISCBaseURL:    getEnvOrDefault("GESDISC_BASE_URL", "https://goldsmr4.gesdisc.eosdis.nasa.gov/data"),
		GEOSBaseURL:       getEnvOrDefault("GEOS_BASE_URL", "https://portal.nccs.nasa.gov/datashare/gmao/s2s"),
		ONIURL:            getEnvOrDefault("ONI_URL", "https://www.cpc.ncep.noaa.gov/data/indices/oni.ascii.txt"),
		IODURL:            getEnvOrDefault("IOD_URL", "https://www.bom.gov.au/climate/enso/indices/sstoi.dat"),
		BOMWarningsURL:    getEnvOrDefault("BOM_WARNINGS_URL", "http://www.bom.gov.au/fwo/IDQ20065.xml"),
		FloodBatchBudget:  budget,
		FloodLiveReads:    os.Getenv("FLOOD_LIVE_READS") == "true",
		RiverLevelDefault: river,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
