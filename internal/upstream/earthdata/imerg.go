package earthdata

import (
	"context"
	"fmt"
	"time"

	"github.com/climasphere/climasphere/internal/reading"
)

// Calibrated precipitation is preferred; older granules only carry the
// uncalibrated field.
var imergPrecipVars = []string{"precipitationCal", "precipitation"}

// IMERGDailyAt fetches the GPM IMERG daily accumulated precipitation
// (mm/day) at the given point.
func (c *Client) IMERGDailyAt(ctx context.Context, date time.Time, lat, lon float64) (reading.Value, error) {
	url := fmt.Sprintf(
		"%s/GPM_L3/GPM_3IMERGDF.07/%04d/%02d/3B-DAY.MS.MRG.3IMERG.%s-S000000-E235959.V07.json",
		c.imergBaseURL, date.Year(), date.Month(), date.Format("20060102"))

	ds, err := c.fetchDataset(ctx, url)
	if err != nil {
		return reading.Absent(), fmt.Errorf("imerg fetch: %w", err)
	}

	c.logger.Debug().
		Float64("cell_distance_km", ds.CellDistanceKm(lat, lon)).
		Str("date", date.Format("2006-01-02")).
		Msg("imerg grid selected")

	return ds.SelectFirst(imergPrecipVars, lat, lon).NonNeg(), nil
}
