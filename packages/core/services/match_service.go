package services

import (
	"context"
	"core/models"
	"core/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// ReportMatch records the outcome of a game: the match header plus one result
// row per participant, in a single transaction.
func (s *MatchService) ReportMatch(req models.ReportMatchRequest) (*models.Match, error) {
	if req.WinnerID == req.LoserID {
		return nil, ErrSamePlayer
	}

	// Validate that players exist
	var winner, loser models.Player
	if err := s.db.First(&winner, req.WinnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	if err := s.db.First(&loser, req.LoserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	now := time.Now()
	match := models.Match{
		Player1ID: req.WinnerID,
		Player2ID: req.LoserID,
		IsTie:     req.Tie,
		CreatedAt: now,
	}
	if !req.Tie {
		match.WinnerID = &req.WinnerID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}

		winnerPoints, loserPoints := utils.MatchPoints(req.Tie)
		results := []models.MatchResult{
			{MatchID: match.ID, PlayerID: req.WinnerID, Points: winnerPoints, CreatedAt: now},
			{MatchID: match.ID, PlayerID: req.LoserID, Points: loserPoints, CreatedAt: now},
		}
		return tx.Create(&results).Error
	})
	if err != nil {
		return nil, err
	}

	// Load the created match with relationships
	if err := s.db.Preload("Player1").Preload("Player2").Preload("Results").First(&match, match.ID).Error; err != nil {
		return nil, err
	}

	return &match, nil
}

// ListMatchResults returns every recorded result row.
func (s *MatchService) ListMatchResults(ctx context.Context) ([]models.MatchResult, error) {
	var results []models.MatchResult

	if err := s.db.WithContext(ctx).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (s *MatchService) GetRecentMatches(limit int) ([]models.Match, error) {
	var matches []models.Match

	result := s.db.Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Preload("Player1").
		Preload("Player2").
		Preload("Results").
		Find(&matches)

	if result.Error != nil {
		return nil, result.Error
	}

	return matches, nil
}

// DeleteMatches removes every match record; players are kept.
func (s *MatchService) DeleteMatches() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MatchResult{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Match{}).Error
	})
}
