package earthdata

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/climasphere/climasphere/internal/reading"
)

// Soil wetness variables in preference order. The GWET* family is a 0-1
// fraction; SOILM is already a percentage.
var merraSoilVars = []string{"GWETTOP", "GWETROOT", "GWETPROF", "SOILM"}

// MERRA2Daily holds the reanalysis variables for one point.
type MERRA2Daily struct {
	Temp reading.Value // degrees C
	Wind reading.Value // m/s magnitude from U10M/V10M
	Soil reading.Value // soil moisture, percent
}

// MERRA2DailyAt fetches the MERRA-2 daily statistics subset and selects the
// reanalysis variables at the given point.
func (c *Client) MERRA2DailyAt(ctx context.Context, date time.Time, lat, lon float64) (MERRA2Daily, error) {
	// Collection 400 covers 1980-present.
	url := fmt.Sprintf(
		"%s/MERRA2/M2SDNXSLV.5.12.4/%04d/%02d/MERRA2_400.statD_2d_slv_Nx.%s.json",
		c.gesdiscBaseURL, date.Year(), date.Month(), date.Format("20060102"))

	ds, err := c.fetchDataset(ctx, url)
	if err != nil {
		return MERRA2Daily{}, fmt.Errorf("merra-2 fetch: %w", err)
	}

	c.logger.Debug().
		Float64("cell_distance_km", ds.CellDistanceKm(lat, lon)).
		Str("date", date.Format("2006-01-02")).
		Msg("merra-2 grid selected")

	u := ds.Select("U10M", lat, lon)
	v := ds.Select("V10M", lat, lon)

	return MERRA2Daily{
		Temp: ds.Select("T2M", lat, lon).Map(kelvinToCelsius),
		Wind: windMagnitude(u, v),
		Soil: selectSoil(ds, lat, lon),
	}, nil
}

func selectSoil(ds *Dataset, lat, lon float64) reading.Value {
	for _, name := range merraSoilVars {
		v := ds.Select(name, lat, lon)
		if !v.Present() {
			continue
		}
		if name == "SOILM" {
			return v.ClampPercent()
		}
		return v.Map(func(frac float64) float64 { return frac * 100.0 }).ClampPercent()
	}
	return reading.Absent()
}

func windMagnitude(u, v reading.Value) reading.Value {
	uu, okU := u.Float()
	vv, okV := v.Float()
	if !okU || !okV {
		return reading.Absent()
	}
	return reading.Of(math.Hypot(uu, vv))
}
