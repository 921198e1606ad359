package services

import (
	"context"
	"core/models"
	"core/utils"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SnapshotService persists the standings as they stood at a given moment so
// past rounds can be consulted after more results come in.
type SnapshotService struct {
	db        *gorm.DB
	standings *StandingsService
}

func NewSnapshotService(db *gorm.DB, standings *StandingsService) *SnapshotService {
	return &SnapshotService{
		db:        db,
		standings: standings,
	}
}

func (s *SnapshotService) TakeSnapshot(ctx context.Context) (*models.StandingsSnapshot, error) {
	standings, err := s.standings.GetStandings(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(standings)
	if err != nil {
		return nil, fmt.Errorf("encode standings: %w", err)
	}

	snapshot := &models.StandingsSnapshot{
		ID:        uuid.NewString(),
		Round:     utils.RoundsPlayed(standings),
		Payload:   string(payload),
		CreatedAt: time.Now(),
		Standings: standings,
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (s *SnapshotService) GetLatestSnapshot(ctx context.Context) (*models.StandingsSnapshot, error) {
	var snapshot models.StandingsSnapshot

	result := s.db.WithContext(ctx).Order("created_at DESC").First(&snapshot)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, result.Error
	}

	if err := json.Unmarshal([]byte(snapshot.Payload), &snapshot.Standings); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", snapshot.ID, err)
	}

	return &snapshot, nil
}
