package reading_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/reading"
)

func TestSanitize_Sentinels(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		present bool
	}{
		{"normal value", 23.4, true},
		{"zero", 0, true},
		{"negative temperature", -12.5, true},
		{"sentinel -9999", -9999, false},
		{"sentinel -999", -999, false},
		{"sentinel -99", -99, false},
		{"NaN", math.NaN(), false},
		{"huge positive", 1e7, false},
		{"huge negative", -2e6, false},
		{"just under magnitude cap", 999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := reading.Sanitize(tt.in)
			assert.Equal(t, tt.present, v.Present())
			if tt.present {
				f, ok := v.Float()
				require.True(t, ok)
				assert.Equal(t, tt.in, f)
			}
		})
	}
}

func TestValue_Or(t *testing.T) {
	primary := reading.Of(1.0)
	fallback := reading.Of(2.0)

	f, ok := primary.Or(fallback).Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	f, ok = reading.Absent().Or(fallback).Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, f)

	assert.False(t, reading.Absent().Or(reading.Absent()).Present())
}

func TestValue_ClampPercent(t *testing.T) {
	f, _ := reading.Of(150).ClampPercent().Float()
	assert.Equal(t, 100.0, f)

	f, _ = reading.Of(-5).ClampPercent().Float()
	assert.Equal(t, 0.0, f)

	assert.False(t, reading.Absent().ClampPercent().Present())
}

func TestValue_NonNeg(t *testing.T) {
	f, _ := reading.Of(-3.2).NonNeg().Float()
	assert.Equal(t, 0.0, f)

	f, _ = reading.Of(3.2).NonNeg().Float()
	assert.Equal(t, 3.2, f)
}

func TestValue_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(reading.Of(23.5))
	require.NoError(t, err)
	assert.Equal(t, "23.5", string(b))

	b, err = json.Marshal(reading.Absent())
	require.NoError(t, err)
	assert.Equal(t, `"unavailable"`, string(b))
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var v reading.Value
	require.NoError(t, json.Unmarshal([]byte("12.3"), &v))
	f, ok := v.Float()
	require.True(t, ok)
	assert.Equal(t, 12.3, f)

	require.NoError(t, json.Unmarshal([]byte(`"unavailable"`), &v))
	assert.False(t, v.Present())

	// Sentinel numbers are filtered on the way in too.
	require.NoError(t, json.Unmarshal([]byte("-9999"), &v))
	assert.False(t, v.Present())
}

func TestValue_Ptr(t *testing.T) {
	p := reading.Of(7.0).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 7.0, *p)

	assert.Nil(t, reading.Absent().Ptr())
}

func TestMean(t *testing.T) {
	f, ok := reading.Mean(reading.Of(10), reading.Of(20)).Float()
	require.True(t, ok)
	assert.Equal(t, 15.0, f)

	f, ok = reading.Mean(reading.Of(10), reading.Absent()).Float()
	require.True(t, ok)
	assert.Equal(t, 10.0, f)

	assert.False(t, reading.Mean(reading.Absent(), reading.Absent()).Present())
}
