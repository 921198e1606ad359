package services

import (
	"context"
	"errors"
	"testing"

	"core/metrics"
	"core/models"
	"core/utils"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerStore struct {
	players []models.Player
	err     error
}

func (f *fakePlayerStore) ListPlayers(context.Context) ([]models.Player, error) {
	return f.players, f.err
}

type fakeResultStore struct {
	results []models.MatchResult
	err     error
}

func (f *fakeResultStore) ListMatchResults(context.Context) ([]models.MatchResult, error) {
	return f.results, f.err
}

func fourPlayers() []models.Player {
	return []models.Player{
		{ID: 1, Name: "Ada"},
		{ID: 2, Name: "Bo"},
		{ID: 3, Name: "Cy"},
		{ID: 4, Name: "Di"},
	}
}

func TestStandingsService_GetStandings(t *testing.T) {
	players := &fakePlayerStore{players: fourPlayers()}
	results := &fakeResultStore{results: []models.MatchResult{
		{PlayerID: 2, Points: 1},
		{PlayerID: 1, Points: 0},
	}}
	svc := NewStandingsService(players, results, metrics.New())

	standings, err := svc.GetStandings(context.Background())
	require.NoError(t, err)
	require.Len(t, standings, 4)
	assert.Equal(t, models.StandingEntry{ID: 2, Name: "Bo", Wins: 1, Matches: 1}, standings[0])
}

func TestStandingsService_StoreUnavailable(t *testing.T) {
	driverErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		players *fakePlayerStore
		results *fakeResultStore
		source  string
	}{
		{
			name:    "players",
			players: &fakePlayerStore{err: driverErr},
			results: &fakeResultStore{},
			source:  "players",
		},
		{
			name:    "results",
			players: &fakePlayerStore{players: fourPlayers()},
			results: &fakeResultStore{err: driverErr},
			source:  "results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New()
			svc := NewStandingsService(tt.players, tt.results, m)

			_, err := svc.GetStandings(context.Background())
			require.ErrorIs(t, err, ErrStoreUnavailable)
			assert.ErrorIs(t, err, driverErr)

			_, _, err = svc.GetPairings(context.Background())
			require.ErrorIs(t, err, ErrStoreUnavailable)

			failures, err := testutil.GatherAndCount(m.Registry(), "swiss_store_failures_total")
			require.NoError(t, err)
			assert.Equal(t, 1, failures)
		})
	}
}

func TestStandingsService_GetPairings(t *testing.T) {
	players := &fakePlayerStore{players: fourPlayers()}
	results := &fakeResultStore{results: []models.MatchResult{
		{PlayerID: 1, Points: 1},
		{PlayerID: 2, Points: 0},
		{PlayerID: 3, Points: 1},
		{PlayerID: 4, Points: 1},
	}}
	svc := NewStandingsService(players, results, metrics.New())

	pairings, round, err := svc.GetPairings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, round)
	require.Len(t, pairings, 2)
	assert.Equal(t, uint(1), pairings[0].ID1)
	assert.Equal(t, uint(3), pairings[0].ID2)
	assert.Equal(t, uint(4), pairings[1].ID1)
	assert.Equal(t, uint(2), pairings[1].ID2)
}

func TestStandingsService_OddPlayerCount(t *testing.T) {
	ps := append(fourPlayers(), models.Player{ID: 5, Name: "Ed"})
	svc := NewStandingsService(&fakePlayerStore{players: ps}, &fakeResultStore{}, metrics.New())

	pairings, _, err := svc.GetPairings(context.Background())
	require.ErrorIs(t, err, utils.ErrOddPlayerCount)
	assert.Nil(t, pairings)

	// Standings stay available for an odd field.
	standings, err := svc.GetStandings(context.Background())
	require.NoError(t, err)
	assert.Len(t, standings, 5)
}

func TestStandingsService_NilMetrics(t *testing.T) {
	svc := NewStandingsService(&fakePlayerStore{players: fourPlayers()}, &fakeResultStore{}, nil)

	pairings, round, err := svc.GetPairings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, round)
	assert.Len(t, pairings, 2)
}
