package bushfire_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/hazard/bushfire"
	"github.com/climasphere/climasphere/internal/reading"
	"github.com/climasphere/climasphere/internal/upstream/indices"
	"github.com/climasphere/climasphere/internal/upstream/power"
)

type fakeFire struct {
	value power.FireDaily
	err   error
	calls int
}

func (f *fakeFire) FireDaily(_ context.Context, _, _ float64, _ time.Time) (power.FireDaily, error) {
	f.calls++
	return f.value, f.err
}

type fakeIndices struct {
	pair  indices.Pair
	calls int
}

func (f *fakeIndices) Fetch(context.Context) indices.Pair {
	f.calls++
	return f.pair
}

func okIndex(v float64) indices.Index {
	return indices.Index{Value: reading.Of(v), Status: indices.StatusOK}
}

func downIndex() indices.Index {
	return indices.Index{Value: reading.Absent(), Status: indices.StatusUnavailable}
}

var testDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestAll_ExtremeConditions(t *testing.T) {
	fire := &fakeFire{value: power.FireDaily{
		Temp:     reading.Of(42),
		Humidity: reading.Of(15),
		Wind:     reading.Of(35),
		Precip:   reading.Of(0),
	}}
	idx := &fakeIndices{pair: indices.Pair{ONI: okIndex(0.8), IOD: okIndex(0.5)}}

	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: fire, Indices: idx})
	results := svc.All(context.Background(), testDate)

	require.Len(t, results, 8)
	assert.Equal(t, 1, idx.calls, "indices fetched once for the whole batch")
	assert.Equal(t, 8, fire.calls)

	first := results[0]
	assert.Equal(t, "Queensland", first.State)
	assert.Equal(t, "2024-01-15", first.Date)
	assert.Equal(t, 100.0, first.RiskScore)
	assert.Equal(t, "High", first.RiskLevel)
	assert.Equal(t, "High bushfire risk – follow official warnings.", first.AIAdvice)
	assert.Equal(t, 0.8, first.ENSOONI)
	assert.Equal(t, 0.5, first.IODIndex)
}

func TestAll_StateOrderIsTableOrder(t *testing.T) {
	svc := bushfire.NewService(bushfire.ServiceConfig{
		Fire:    &fakeFire{},
		Indices: &fakeIndices{},
	})

	results := svc.All(context.Background(), testDate)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.State
	}
	assert.Equal(t, []string{
		"Queensland", "New South Wales", "Victoria", "Tasmania",
		"Western Australia", "South Australia", "Northern Territory",
		"Australian Capital Territory",
	}, names)
}

func TestAll_UpstreamFailureDegradesToUnavailable(t *testing.T) {
	fire := &fakeFire{err: errors.New("power down")}
	idx := &fakeIndices{pair: indices.Pair{ONI: downIndex(), IOD: downIndex()}}

	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: fire, Indices: idx})
	results := svc.All(context.Background(), testDate)
	require.Len(t, results, 8)

	raw, err := json.Marshal(results[0])
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "unavailable", m["temperature"])
	assert.Equal(t, "unavailable", m["humidity"])
	assert.Equal(t, "unavailable", m["wind_speed"])
	assert.Equal(t, "unavailable", m["vegetation_dryness"])
	assert.Equal(t, indices.StatusUnavailable, m["enso_oni"])
	assert.Equal(t, indices.StatusUnavailable, m["iod_index"])

	// Bare base score with nothing contributing.
	assert.Equal(t, 10.0, results[0].RiskScore)
	assert.Equal(t, "Low", results[0].RiskLevel)
}

func TestAll_HeuristicDryness(t *testing.T) {
	// humidity 40 -> 60; precip 5 -> 90; mean 75; wind 10 -> +12 capped; 87.
	fire := &fakeFire{value: power.FireDaily{
		Temp:     reading.Of(20),
		Humidity: reading.Of(40),
		Wind:     reading.Of(10),
		Precip:   reading.Of(5),
	}}
	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: fire, Indices: &fakeIndices{}})

	results := svc.All(context.Background(), testDate)
	d, ok := results[0].VegetationDryness.Float()
	require.True(t, ok)
	assert.InDelta(t, 87.0, d, 1e-9)
}

func TestAll_DrynessAbsentWithoutHumidityAndRain(t *testing.T) {
	fire := &fakeFire{value: power.FireDaily{
		Temp: reading.Of(30),
		Wind: reading.Of(15),
	}}
	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: fire, Indices: &fakeIndices{}})

	results := svc.All(context.Background(), testDate)
	assert.False(t, results[0].VegetationDryness.Present())
}

func TestEarly_SeasonalBaseline(t *testing.T) {
	idx := &fakeIndices{pair: indices.Pair{ONI: okIndex(0.8), IOD: okIndex(0.5)}}
	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: &fakeFire{}, Indices: idx})

	results := svc.Early(context.Background(), testDate)
	require.Len(t, results, 8)

	// 20 + 15 (El Nino) + 10 (positive IOD) = 45, Medium.
	for _, r := range results {
		assert.Equal(t, 45, r.BushfireProbability)
		assert.Equal(t, "Medium", r.RiskLevel)
		assert.Equal(t, "Seasonal outlook: Elevated bushfire risk – prepare and stay informed.", r.AIAdvice)
	}
}

func TestEarly_NoUpstreamReads(t *testing.T) {
	fire := &fakeFire{}
	svc := bushfire.NewService(bushfire.ServiceConfig{Fire: fire, Indices: &fakeIndices{}})

	svc.Early(context.Background(), testDate)
	assert.Zero(t, fire.calls)
}
