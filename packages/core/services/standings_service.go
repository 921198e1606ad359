package services

import (
	"context"
	"core/metrics"
	"core/models"
	"core/utils"
	"errors"
	"fmt"
	"log"
	"time"
)

// PlayerStore lists registered players.
type PlayerStore interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
}

// ResultStore lists recorded match results.
type ResultStore interface {
	ListMatchResults(ctx context.Context) ([]models.MatchResult, error)
}

type StandingsService struct {
	players PlayerStore
	results ResultStore
	metrics *metrics.Metrics
}

func NewStandingsService(players PlayerStore, results ResultStore, m *metrics.Metrics) *StandingsService {
	return &StandingsService{
		players: players,
		results: results,
		metrics: m,
	}
}

// GetStandings reads one snapshot of players and results and ranks them.
func (s *StandingsService) GetStandings(ctx context.Context) ([]models.StandingEntry, error) {
	start := time.Now()

	standings, err := s.standings(ctx)
	if err != nil {
		s.metrics.ObserveComputation("standings", "store_unavailable", time.Since(start))
		return nil, err
	}

	s.metrics.ObserveComputation("standings", "ok", time.Since(start))
	s.metrics.SetPlayers(len(standings))
	return standings, nil
}

// GetPairings computes the current standings and pairs adjacent ranks for the
// next round. It fails with utils.ErrOddPlayerCount when someone would be left
// without an opponent.
func (s *StandingsService) GetPairings(ctx context.Context) ([]models.Pairing, int, error) {
	start := time.Now()

	standings, err := s.standings(ctx)
	if err != nil {
		s.metrics.ObserveComputation("pairings", "store_unavailable", time.Since(start))
		return nil, 0, err
	}

	pairings, err := utils.ComputePairings(standings)
	if err != nil {
		if errors.Is(err, utils.ErrOddPlayerCount) {
			s.metrics.ObserveComputation("pairings", "odd_player_count", time.Since(start))
		}
		return nil, 0, err
	}

	s.metrics.ObserveComputation("pairings", "ok", time.Since(start))
	s.metrics.SetPairings(len(pairings))
	return pairings, utils.RoundsPlayed(standings) + 1, nil
}

func (s *StandingsService) standings(ctx context.Context) ([]models.StandingEntry, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		log.Printf("Error listing players: %v", err)
		s.metrics.StoreFailure("players")
		return nil, fmt.Errorf("%w: list players: %w", ErrStoreUnavailable, err)
	}

	results, err := s.results.ListMatchResults(ctx)
	if err != nil {
		log.Printf("Error listing match results: %v", err)
		s.metrics.StoreFailure("results")
		return nil, fmt.Errorf("%w: list match results: %w", ErrStoreUnavailable, err)
	}

	return utils.ComputeStandings(players, results), nil
}
