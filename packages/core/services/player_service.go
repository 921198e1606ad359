package services

import (
	"context"
	"core/models"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

// RegisterPlayer adds a player. The database assigns the id; names need not
// be unique.
func (s *PlayerService) RegisterPlayer(name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	player := &models.Player{Name: name}
	if err := s.db.Create(player).Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// ListPlayers returns every registered player in registration order.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var players []models.Player

	if err := s.db.WithContext(ctx).Order("id ASC").Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}

func (s *PlayerService) CountPlayers() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Player{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeletePlayers removes every player. Results and match headers go first so
// no foreign key is left dangling.
func (s *PlayerService) DeletePlayers() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MatchResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Match{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Player{}).Error
	})
}
