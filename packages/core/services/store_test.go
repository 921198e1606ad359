package services

import (
	"context"
	"testing"

	"core/metrics"
	"core/models"
	"core/testutil"
	"core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPlayerService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPlayerService(db)

	_, err := svc.RegisterPlayer("   ")
	require.ErrorIs(t, err, ErrEmptyName)

	p, err := svc.RegisterPlayer("  Magnus ")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Magnus", p.Name)

	_, err = svc.RegisterPlayer("Judit")
	require.NoError(t, err)

	count, err := svc.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	got, err := svc.GetPlayerByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Magnus", got.Name)

	_, err = svc.GetPlayerByID(p.ID + 1000)
	require.ErrorIs(t, err, ErrPlayerNotFound)

	players, err := svc.ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Magnus", players[0].Name)
	assert.Equal(t, "Judit", players[1].Name)

	require.NoError(t, svc.DeletePlayers())
	count, err = svc.CountPlayers()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMatchService_ReportMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.RegisterPlayers(t, db, "A", "B", "C", "D")
	svc := NewMatchService(db)

	_, err := svc.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: ps[0].ID})
	require.ErrorIs(t, err, ErrSamePlayer)

	_, err = svc.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: 999999})
	require.ErrorIs(t, err, ErrPlayerNotFound)

	decisive, err := svc.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: ps[1].ID})
	require.NoError(t, err)
	require.NotNil(t, decisive.WinnerID)
	assert.Equal(t, ps[0].ID, *decisive.WinnerID)
	assert.False(t, decisive.IsTie)
	assert.Len(t, decisive.Results, 2)

	tie, err := svc.ReportMatch(models.ReportMatchRequest{WinnerID: ps[2].ID, LoserID: ps[3].ID, Tie: true})
	require.NoError(t, err)
	assert.Nil(t, tie.WinnerID)
	assert.True(t, tie.IsTie)

	results, err := svc.ListMatchResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 4)

	points := map[uint]int{}
	for _, r := range results {
		points[r.PlayerID] += r.Points
	}
	assert.Equal(t, map[uint]int{ps[0].ID: 1, ps[1].ID: 0, ps[2].ID: 1, ps[3].ID: 1}, points)

	recent, err := svc.GetRecentMatches(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, tie.ID, recent[0].ID)

	require.NoError(t, svc.DeleteMatches())
	results, err = svc.ListMatchResults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMatchService_ReportMatchPanicRollsBack(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.RegisterPlayers(t, db, "A", "B")
	svc := NewMatchService(db)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_results", func(tx *gorm.DB) {
		if tx.Statement.Table == "match_results" {
			panic("results insert failed")
		}
	}))

	assert.PanicsWithValue(t, "results insert failed", func() {
		_, _ = svc.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: ps[1].ID})
	})

	var matches int64
	require.NoError(t, db.Model(&models.Match{}).Count(&matches).Error)
	assert.Zero(t, matches, "match header must be rolled back with its results")
}

func TestStandingsFromStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.RegisterPlayers(t, db, "A", "B", "C", "D")
	players := NewPlayerService(db)
	matches := NewMatchService(db)
	standings := NewStandingsService(players, matches, metrics.New())

	// No matches yet: everybody at zero and paired anyway.
	entries, err := standings.GetStandings(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Zero(t, e.Wins)
		assert.Zero(t, e.Matches)
	}

	_, err = matches.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: ps[1].ID})
	require.NoError(t, err)
	_, err = matches.ReportMatch(models.ReportMatchRequest{WinnerID: ps[2].ID, LoserID: ps[3].ID, Tie: true})
	require.NoError(t, err)

	entries, err = standings.GetStandings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ps[1].ID, entries[3].ID)
	assert.Equal(t, 0, entries[3].Wins)

	pairings, round, err := standings.GetPairings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, round)
	require.Len(t, pairings, 2)
	assert.Equal(t, ps[1].ID, pairings[1].ID2)

	// A fifth player makes the field odd.
	testutil.RegisterPlayers(t, db, "E")
	_, _, err = standings.GetPairings(context.Background())
	require.ErrorIs(t, err, utils.ErrOddPlayerCount)

	snapshots := NewSnapshotService(db, standings)
	_, err = snapshots.GetLatestSnapshot(context.Background())
	require.ErrorIs(t, err, ErrSnapshotNotFound)

	snap, err := snapshots.TakeSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Round)

	latest, err := snapshots.GetLatestSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.ID, latest.ID)
	assert.Len(t, latest.Standings, 5)
}

func TestStatsService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ps := testutil.RegisterPlayers(t, db, "A", "B")
	matches := NewMatchService(db)

	_, err := matches.ReportMatch(models.ReportMatchRequest{WinnerID: ps[0].ID, LoserID: ps[1].ID, Tie: true})
	require.NoError(t, err)

	stats, err := NewStatsService(db).GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalPlayers)
	assert.Equal(t, int64(1), stats.TotalMatches)
	assert.Equal(t, int64(1), stats.TiedMatches)
	assert.Equal(t, int64(2), stats.TotalResults)
	assert.Equal(t, int64(1), stats.MatchesLast7Days)
	assert.Zero(t, stats.MatchesPrevious7Days)
}
