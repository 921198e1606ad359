package utils

import (
	"errors"
	"sort"

	"core/models"
)

// Swiss scoring: a decisive game is worth one point to the winner and nothing
// to the loser, a declared tie is worth one point to each side.
const (
	WinPoints  = 1
	LossPoints = 0
	TiePoints  = 1
)

// ErrOddPlayerCount is returned when pairings are requested for an odd number
// of players. Byes are not supported.
var ErrOddPlayerCount = errors.New("odd number of players, cannot pair everyone")

// MatchPoints returns the points recorded for the two participants of a game.
func MatchPoints(tie bool) (winnerPoints, loserPoints int) {
	if tie {
		return TiePoints, TiePoints
	}
	return WinPoints, LossPoints
}

// ComputeStandings reduces match results into one entry per player, ranked by
// wins (highest first). Players without results get zero wins and zero
// matches. Ties in wins are not broken: tied players keep the order of the
// players slice. Results for players absent from players are ignored.
//
// Neither input is modified.
func ComputeStandings(players []models.Player, results []models.MatchResult) []models.StandingEntry {
	standings := make([]models.StandingEntry, len(players))
	index := make(map[uint]int, len(players))
	for i, p := range players {
		standings[i] = models.StandingEntry{ID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for _, r := range results {
		i, ok := index[r.PlayerID]
		if !ok {
			continue
		}
		standings[i].Wins += r.Points
		standings[i].Matches++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})

	return standings
}

// ComputePairings groups ranked standings two by two: (0,1), (2,3), ... so
// each player meets the opponent closest in rank.
//
// Pairing history is not tracked, so players adjacent again in a later round
// are paired again.
func ComputePairings(standings []models.StandingEntry) ([]models.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, ErrOddPlayerCount
	}

	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i+1 < len(standings); i += 2 {
		a, b := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			ID1:   a.ID,
			Name1: a.Name,
			ID2:   b.ID,
			Name2: b.Name,
		})
	}

	return pairings, nil
}

// RoundsPlayed returns the number of completed rounds, taken as the highest
// match count in the standings.
func RoundsPlayed(standings []models.StandingEntry) int {
	rounds := 0
	for _, s := range standings {
		if s.Matches > rounds {
			rounds = s.Matches
		}
	}
	return rounds
}
