package fusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/fusion"
	"github.com/climasphere/climasphere/internal/reading"
)

func TestBiasCorrectTemperature(t *testing.T) {
	tests := []struct {
		name       string
		forecast   reading.Value
		reanalysis reading.Value
		climMean   reading.Value
		want       float64
		present    bool
	}{
		{
			name:       "full correction",
			forecast:   reading.Of(25),
			reanalysis: reading.Of(24),
			climMean:   reading.Of(22),
			want:       27, // 25 + (24 - 22)
			present:    true,
		},
		{
			name:       "negative bias",
			forecast:   reading.Of(25),
			reanalysis: reading.Of(20),
			climMean:   reading.Of(22),
			want:       23,
			present:    true,
		},
		{
			name:       "forecast absent falls back to climatology mean then corrects",
			forecast:   reading.Absent(),
			reanalysis: reading.Of(24),
			climMean:   reading.Of(22),
			want:       24, // 22 + (24 - 22)
			present:    true,
		},
		{
			name:       "no reanalysis passes forecast through",
			forecast:   reading.Of(25),
			reanalysis: reading.Absent(),
			climMean:   reading.Of(22),
			want:       25,
			present:    true,
		},
		{
			name:       "no climatology passes forecast through",
			forecast:   reading.Of(25),
			reanalysis: reading.Of(24),
			climMean:   reading.Absent(),
			want:       25,
			present:    true,
		},
		{
			name:       "everything absent stays absent",
			forecast:   reading.Absent(),
			reanalysis: reading.Of(24),
			climMean:   reading.Absent(),
			present:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fusion.BiasCorrectTemperature(tt.forecast, tt.reanalysis, tt.climMean)
			if !tt.present {
				assert.False(t, got.Present())
				return
			}
			v, ok := got.Float()
			require.True(t, ok)
			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestClimatologyMean_RequiresBoth(t *testing.T) {
	v, ok := fusion.ClimatologyMean(reading.Of(30), reading.Of(18)).Float()
	require.True(t, ok)
	assert.Equal(t, 24.0, v)

	assert.False(t, fusion.ClimatologyMean(reading.Of(30), reading.Absent()).Present())
	assert.False(t, fusion.ClimatologyMean(reading.Absent(), reading.Of(18)).Present())
}

func TestWindMagnitude(t *testing.T) {
	v, ok := fusion.WindMagnitude(reading.Of(3), reading.Of(4)).Float()
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-9)

	assert.False(t, fusion.WindMagnitude(reading.Of(3), reading.Absent()).Present())
	assert.False(t, fusion.WindMagnitude(reading.Absent(), reading.Of(4)).Present())
}

func TestBlend_PreferenceOrdering(t *testing.T) {
	in := fusion.Inputs{
		ForecastTemp:      reading.Of(25),
		ForecastRH:        reading.Of(60),
		ForecastWindU:     reading.Of(3),
		ForecastWindV:     reading.Of(4),
		ReanalysisTemp:    reading.Of(24),
		ReanalysisWind:    reading.Of(9),
		ClimatologyTMax:   reading.Of(30),
		ClimatologyTMin:   reading.Of(18),
		ClimatologyRH:     reading.Of(50),
		ClimatologyPrecip: reading.Of(1.5),
		GriddedPrecip:     reading.Of(4.0),
	}

	out := fusion.Blend(in)

	temp, _ := out.Temperature.Float()
	assert.InDelta(t, 25.0, temp, 1e-9) // 25 + (24 - 24)

	wind, _ := out.WindSpeed.Float()
	assert.InDelta(t, 5.0, wind, 1e-9) // forecast components win over reanalysis

	rh, _ := out.Humidity.Float()
	assert.Equal(t, 60.0, rh) // forecast RH wins

	precip, _ := out.Precipitation.Float()
	assert.Equal(t, 4.0, precip) // gridded product wins
}

func TestBlend_Fallbacks(t *testing.T) {
	in := fusion.Inputs{
		ReanalysisWind:    reading.Of(9),
		ClimatologyTMax:   reading.Of(30),
		ClimatologyTMin:   reading.Of(18),
		ClimatologyRH:     reading.Of(50),
		ClimatologyPrecip: reading.Of(1.5),
	}

	out := fusion.Blend(in)

	temp, ok := out.Temperature.Float()
	require.True(t, ok)
	assert.Equal(t, 24.0, temp) // climatology mean stands in for the forecast

	wind, _ := out.WindSpeed.Float()
	assert.Equal(t, 9.0, wind)

	rh, _ := out.Humidity.Float()
	assert.Equal(t, 50.0, rh)

	precip, _ := out.Precipitation.Float()
	assert.Equal(t, 1.5, precip)
}

func TestBlend_Idempotent(t *testing.T) {
	in := fusion.Inputs{
		ForecastTemp:    reading.Of(25),
		ReanalysisTemp:  reading.Of(26),
		ClimatologyTMax: reading.Of(30),
		ClimatologyTMin: reading.Of(20),
	}
	first := fusion.Blend(in)
	second := fusion.Blend(in)
	assert.Equal(t, first, second)
}
