package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveComputation(t *testing.T) {
	m := New()

	m.ObserveComputation("standings", "ok", 10*time.Millisecond)
	m.ObserveComputation("standings", "ok", 5*time.Millisecond)
	m.ObserveComputation("pairings", "odd_player_count", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.computations.WithLabelValues("standings", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.computations.WithLabelValues("pairings", "odd_player_count")))
}

func TestGaugesAndFailures(t *testing.T) {
	m := New()

	m.SetPlayers(8)
	m.SetPairings(4)
	m.StoreFailure("players")

	assert.Equal(t, 8.0, testutil.ToFloat64(m.players))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.pairings))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeFailures.WithLabelValues("players")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveComputation("standings", "ok", time.Second)
		m.StoreFailure("results")
		m.SetPlayers(1)
		m.SetPairings(1)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.SetPlayers(6)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "swiss_players 6"))
}
