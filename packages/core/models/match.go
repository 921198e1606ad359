package models

import (
	"time"
)

// Match is the header of a reported game. The points the standings are built
// from live in MatchResult, one row per participant.
type Match struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Player1ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"player1_id"`
	Player2ID uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"player2_id"`
	WinnerID  *uint     `json:"winner_id"` // nil for a tie
	IsTie     bool      `gorm:"default:false" json:"is_tie"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Player1 Player        `gorm:"foreignKey:Player1ID;references:ID" json:"player1,omitempty"`
	Player2 Player        `gorm:"foreignKey:Player2ID;references:ID" json:"player2,omitempty"`
	Results []MatchResult `gorm:"foreignKey:MatchID" json:"results,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// MatchResult is an append-only score row: one per participant per match.
type MatchResult struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID   uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"match_id"`
	PlayerID  uint      `gorm:"not null;constraint:OnDelete:CASCADE" json:"player_id"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

func (MatchResult) TableName() string {
	return "match_results"
}

// ReportMatchRequest records a game between two players. With Tie set both
// players score; WinnerID/LoserID then only name the participants.
type ReportMatchRequest struct {
	WinnerID uint `json:"winner_id" binding:"required"`
	LoserID  uint `json:"loser_id" binding:"required"`
	Tie      bool `json:"tie"`
}
