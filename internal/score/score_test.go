package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
)

func TestLogistic_Midpoint(t *testing.T) {
	for _, k := range []float64{0.5, 1.5, 2.0, 2.5} {
		assert.InDelta(t, 50.0, score.Logistic(35, 35, k), 1e-9)
	}
}

func TestLogistic_Monotone(t *testing.T) {
	prev := score.Logistic(-50, 10, 1.5)
	for x := -49.0; x <= 50; x++ {
		cur := score.Logistic(x, 10, 1.5)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestLogistic_Bounds(t *testing.T) {
	// Extreme inputs must degrade to the bounds, never panic or escape [0,100].
	assert.InDelta(t, 0.0, score.Logistic(-1e9, 0, 2.5), 1e-9)
	assert.InDelta(t, 100.0, score.Logistic(1e9, 0, 2.5), 1e-9)
}

func TestHumidex(t *testing.T) {
	h := score.Humidex(reading.Of(40), reading.Of(20))
	v, ok := h.Float()
	require.True(t, ok)
	// Hot dry air still reads warmer than the dry-bulb temperature.
	assert.Greater(t, v, 40.0)
	assert.Less(t, v, 50.0)

	// Humid heat reads much warmer.
	h2 := score.Humidex(reading.Of(30), reading.Of(90))
	v2, ok := h2.Float()
	require.True(t, ok)
	assert.Greater(t, v2, 38.0)
}

func TestHumidex_MissingInputs(t *testing.T) {
	assert.False(t, score.Humidex(reading.Absent(), reading.Of(50)).Present())
	assert.False(t, score.Humidex(reading.Of(20), reading.Absent()).Present())
	assert.False(t, score.Humidex(reading.Absent(), reading.Absent()).Present())
}

func TestHumidex_ZeroHumidity(t *testing.T) {
	// rh=0 goes through the 1e-6 floor instead of log(0).
	h := score.Humidex(reading.Of(25), reading.Of(0))
	assert.True(t, h.Present())
}

func TestWindChill_Passthrough(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		wind float64 // m/s
	}{
		{"warm air", 15, 10},
		{"just above threshold temp", 10.1, 10},
		{"calm wind", 5, 1.0},    // 3.6 km/h <= 4.8
		{"boundary wind", 5, 4.8 / 3.6}, // exactly 4.8 km/h
		{"zero wind", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := score.WindChill(reading.Of(tt.temp), reading.Of(tt.wind)).Float()
			require.True(t, ok)
			assert.Equal(t, tt.temp, v)
		})
	}
}

func TestWindChill_Applies(t *testing.T) {
	v, ok := score.WindChill(reading.Of(0), reading.Of(10)).Float()
	require.True(t, ok)
	// 36 km/h at 0 degrees feels well below freezing.
	assert.Less(t, v, -5.0)

	assert.False(t, score.WindChill(reading.Absent(), reading.Of(5)).Present())
	assert.False(t, score.WindChill(reading.Of(0), reading.Absent()).Present())
}

func TestConfidenceBand(t *testing.T) {
	b := score.ConfidenceBand(50, true)
	assert.Equal(t, score.Band{Center: 50, Low: 35, High: 65}, b)

	b = score.ConfidenceBand(50, false)
	assert.Equal(t, score.Band{Center: 50, Low: 40, High: 60}, b)

	// Bounds clamp to [0,100].
	b = score.ConfidenceBand(95, true)
	assert.Equal(t, score.Band{Center: 95, Low: 80, High: 100}, b)

	b = score.ConfidenceBand(3, false)
	assert.Equal(t, score.Band{Center: 3, Low: 0, High: 13}, b)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, score.TierLow, score.TierFor(29.9, 30, 60))
	assert.Equal(t, score.TierMedium, score.TierFor(30, 30, 60))
	assert.Equal(t, score.TierHigh, score.TierFor(60, 30, 60))
	assert.Equal(t, score.TierMedium, score.TierFor(35, 35, 60))
}
