package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/score"
)

func TestBushfire_ExtremeConditions(t *testing.T) {
	// 10 + 40 (temp) + 40 (humidity) + 30 (wind) + 40 (dryness) = 160,
	// x1.2 (El Nino) x1.1 (positive IOD) = 211.2, clamped to 100.
	s, tier := score.Bushfire(
		reading.Of(42), reading.Of(15), reading.Of(35), reading.Of(85),
		reading.Of(0.8), reading.Of(0.5),
	)
	assert.Equal(t, 100.0, s)
	assert.Equal(t, score.TierHigh, tier)
}

func TestBushfire_AllAbsent(t *testing.T) {
	s, tier := score.Bushfire(
		reading.Absent(), reading.Absent(), reading.Absent(), reading.Absent(),
		reading.Absent(), reading.Absent(),
	)
	assert.Equal(t, 10.0, s)
	assert.Equal(t, score.TierLow, tier)
}

func TestBushfire_LaNinaDampens(t *testing.T) {
	base, _ := score.Bushfire(
		reading.Of(32), reading.Of(35), reading.Of(15), reading.Absent(),
		reading.Absent(), reading.Absent(),
	)
	damped, _ := score.Bushfire(
		reading.Of(32), reading.Of(35), reading.Of(15), reading.Absent(),
		reading.Of(-1.0), reading.Of(-0.6),
	)
	assert.InDelta(t, base*0.8*0.9, damped, 1e-9)
}

func TestBushfire_MissingDataMonotonicity(t *testing.T) {
	full, _ := score.Bushfire(
		reading.Of(36), reading.Of(25), reading.Of(22), reading.Of(65),
		reading.Absent(), reading.Absent(),
	)
	factors := []int{0, 1, 2, 3}
	for _, drop := range factors {
		in := []reading.Value{reading.Of(36), reading.Of(25), reading.Of(22), reading.Of(65)}
		in[drop] = reading.Absent()
		s, _ := score.Bushfire(in[0], in[1], in[2], in[3], reading.Absent(), reading.Absent())
		assert.LessOrEqual(t, s, full, "dropping factor %d must not raise the score", drop)
	}
}

func TestBushfire_ScoreAlwaysBounded(t *testing.T) {
	extremes := []reading.Value{reading.Absent(), reading.Of(-100), reading.Of(0), reading.Of(50), reading.Of(1000)}
	for _, temp := range extremes {
		for _, hum := range extremes {
			s, tier := score.Bushfire(temp, hum, reading.Of(40), reading.Of(95), reading.Of(2), reading.Of(2))
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
			assert.Contains(t, []score.Tier{score.TierLow, score.TierMedium, score.TierHigh}, tier)
		}
	}
}

func TestFlood_WarningOverride(t *testing.T) {
	// An official warning forces exactly 95 regardless of everything else.
	p, tier := score.Flood(
		reading.Absent(), reading.Absent(), reading.Absent(), reading.Absent(),
		reading.Of(1.5), reading.Of(0.9), true,
	)
	assert.Equal(t, 95.0, p)
	assert.Equal(t, score.TierHigh, tier)
}

func TestFlood_GriddedRainfallPreferred(t *testing.T) {
	// When the gridded product is present the climatology rainfall is ignored.
	withGPM, _ := score.Flood(
		reading.Of(160), reading.Of(5), reading.Absent(), reading.Absent(),
		reading.Absent(), reading.Absent(), false,
	)
	assert.Equal(t, 50.0, withGPM) // 10 + 40

	powerOnly, _ := score.Flood(
		reading.Absent(), reading.Of(120), reading.Absent(), reading.Absent(),
		reading.Absent(), reading.Absent(), false,
	)
	assert.Equal(t, 40.0, powerOnly) // 10 + 30
}

func TestFlood_IndexAdjustments(t *testing.T) {
	base, _ := score.Flood(
		reading.Of(60), reading.Absent(), reading.Of(75), reading.Of(65),
		reading.Absent(), reading.Absent(), false,
	)
	assert.Equal(t, 40.0, base) // 10 + 20 + 10

	laNina, _ := score.Flood(
		reading.Of(60), reading.Absent(), reading.Of(75), reading.Of(65),
		reading.Of(-0.8), reading.Of(-0.5), false,
	)
	assert.InDelta(t, base*1.3*1.2, laNina, 1e-9)

	elNino, _ := score.Flood(
		reading.Of(60), reading.Absent(), reading.Of(75), reading.Of(65),
		reading.Of(0.8), reading.Of(0.5), false,
	)
	assert.InDelta(t, base*0.7*0.8, elNino, 1e-9)
}

func TestBushfireSeasonal(t *testing.T) {
	tests := []struct {
		name string
		oni  reading.Value
		iod  reading.Value
		want float64
		tier score.Tier
	}{
		{"no indices", reading.Absent(), reading.Absent(), 20, score.TierLow},
		{"el nino positive iod", reading.Of(0.8), reading.Of(0.5), 45, score.TierMedium},
		{"la nina negative iod", reading.Of(-0.8), reading.Of(-0.5), 5, score.TierLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tier := score.BushfireSeasonal(tt.oni, tt.iod)
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestFloodSeasonal(t *testing.T) {
	s, tier := score.FloodSeasonal(reading.Of(-0.8), reading.Of(-0.5))
	assert.Equal(t, 70.0, s) // 20 + 30 + 20
	assert.Equal(t, score.TierHigh, tier)

	s, tier = score.FloodSeasonal(reading.Of(0.8), reading.Of(0.5))
	assert.Equal(t, 0.0, s) // 20 - 30 - 20, clamped
	assert.Equal(t, score.TierLow, tier)
}

func TestCycloneSeasonal(t *testing.T) {
	s, tier := score.CycloneSeasonal(reading.Of(-0.8), reading.Of(-0.5))
	assert.Equal(t, 70.0, s)
	assert.Equal(t, score.TierHigh, tier)

	// Cyclone's Medium threshold is 35, not 30.
	s, tier = score.CycloneSeasonal(reading.Of(-0.6), reading.Of(0.5))
	assert.Equal(t, 35.0, s) // 20 + 30 - 15
	assert.Equal(t, score.TierMedium, tier)

	s, tier = score.CycloneSeasonal(reading.Of(0.8), reading.Of(0.5))
	assert.Equal(t, 0.0, s) // 20 - 20 - 15, clamped
	assert.Equal(t, score.TierLow, tier)
}
