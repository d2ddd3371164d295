package indices_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climasphere/climasphere/internal/provider/resilience"
	"github.com/climasphere/climasphere/internal/upstream/indices"
)

func newTestClient(t *testing.T, oniHandler, iodHandler http.HandlerFunc) *indices.Client {
	t.Helper()
	oni := httptest.NewServer(oniHandler)
	iod := httptest.NewServer(iodHandler)
	t.Cleanup(oni.Close)
	t.Cleanup(iod.Close)
	return indices.NewClient(indices.ClientConfig{
		ONIURL:     oni.URL,
		IODURL:     iod.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})
}

func TestClient_Fetch_BothPresent(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "SEAS YR TOTAL ANOM\nDJF 2023 26.5 0.3\nJFM 2024 27.1 0.8\n")
		},
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "2024 01 28.1 -0.4\n2024 02 28.3 -0.6\n")
		},
	)

	pair := client.Fetch(context.Background())

	oni, ok := pair.ONI.Value.Float()
	require.True(t, ok)
	assert.Equal(t, 0.8, oni)
	assert.Equal(t, indices.StatusOK, pair.ONI.Status)

	iod, ok := pair.IOD.Value.Float()
	require.True(t, ok)
	assert.Equal(t, -0.6, iod)
	assert.Equal(t, indices.StatusOK, pair.IOD.Status)
}

func TestClient_Fetch_TrailingBlankLinesIgnored(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "JFM 2024 27.1 1.2\n\n\n")
		},
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "2024 02 28.3 0.5\n   \n")
		},
	)

	pair := client.Fetch(context.Background())

	oni, _ := pair.ONI.Value.Float()
	assert.Equal(t, 1.2, oni)
	iod, _ := pair.IOD.Value.Float()
	assert.Equal(t, 0.5, iod)
}

func TestClient_Fetch_FailuresYieldStatus(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "2024 02 28.3 not-a-number\n")
		},
	)

	pair := client.Fetch(context.Background())

	assert.False(t, pair.ONI.Value.Present())
	assert.Equal(t, indices.StatusUnavailable, pair.ONI.Status)

	assert.False(t, pair.IOD.Value.Present())
	assert.Equal(t, indices.StatusUnavailable, pair.IOD.Status)
}

func TestIndex_Echo(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "JFM 2024 27.1 0.8\n")
		},
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
	)

	pair := client.Fetch(context.Background())

	assert.Equal(t, 0.8, pair.ONI.Echo())
	assert.Equal(t, indices.StatusUnavailable, pair.IOD.Echo())
}
