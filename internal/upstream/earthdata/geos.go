package earthdata

import (
	"context"
	"fmt"
	"time"

	"github.com/climasphere/climasphere/internal/reading"
)

// Variable spellings differ between GEOS-S2S collection versions.
var (
	geosTempVars  = []string{"T2M", "T2M_2m", "T2M_1"}
	geosRHVars    = []string{"RH2M", "RH_2m"}
	geosWindUVars = []string{"U10M", "U10M_1"}
	geosWindVVars = []string{"V10M", "V10M_1"}
)

// GEOSForecast holds the near-surface forecast variables for one point.
type GEOSForecast struct {
	Temp  reading.Value // degrees C
	RH    reading.Value // percent
	WindU reading.Value // m/s
	WindV reading.Value // m/s
}

// GEOSForecastAt fetches the GEOS-S2S daily forecast subset and selects the
// near-surface variables at the given point. Temperature arrives in Kelvin.
func (c *Client) GEOSForecastAt(ctx context.Context, date time.Time, lat, lon float64) (GEOSForecast, error) {
	url := fmt.Sprintf(
		"%s/Y%04d/M%02d/D%02d/GEOS.s2s.tavg1_2d_slv_Nx.%s_00.V01.json",
		c.geosBaseURL, date.Year(), date.Month(), date.Day(), date.Format("20060102"))

	ds, err := c.fetchDataset(ctx, url)
	if err != nil {
		return GEOSForecast{}, fmt.Errorf("geos-s2s fetch: %w", err)
	}

	c.logger.Debug().
		Float64("cell_distance_km", ds.CellDistanceKm(lat, lon)).
		Str("date", date.Format("2006-01-02")).
		Msg("geos-s2s grid selected")

	return GEOSForecast{
		Temp:  ds.SelectFirst(geosTempVars, lat, lon).Map(kelvinToCelsius),
		RH:    ds.SelectFirst(geosRHVars, lat, lon),
		WindU: ds.SelectFirst(geosWindUVars, lat, lon),
		WindV: ds.SelectFirst(geosWindVVars, lat, lon),
	}, nil
}

func kelvinToCelsius(k float64) float64 {
	return k - 273.15
}
