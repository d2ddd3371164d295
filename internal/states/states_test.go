package states_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/states"
)

func TestAll_OrderAndSize(t *testing.T) {
	all := states.All()
	require.Len(t, all, 8)

	// Iteration order is part of the batch response contract.
	assert.Equal(t, "Queensland", all[0].Name)
	assert.Equal(t, "New South Wales", all[1].Name)
	assert.Equal(t, "Australian Capital Territory", all[7].Name)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"NSW", "New South Wales", true},
		{"nsw", "New South Wales", true},
		{" qld ", "Queensland", true},
		{"New South Wales", "New South Wales", true},
		{"new south wales", "New South Wales", true},
		{"ACT", "Australian Capital Territory", true},
		{"Northern Territory", "Northern Territory", true},
		{"ZZ", "", false},
		{"", "", false},
		{"Auckland", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			st, err := states.Normalize(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, states.ErrUnknownState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.Name)
		})
	}
}

func TestNormalize_Coordinates(t *testing.T) {
	st, err := states.Normalize("VIC")
	require.NoError(t, err)
	assert.InDelta(t, -37.8136, st.Lat, 1e-9)
	assert.InDelta(t, 144.9631, st.Lon, 1e-9)
}
