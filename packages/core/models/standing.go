package models

import (
	"time"
)

// StandingEntry is one row of the ranked standings. It is derived from
// players and match results and never stored on its own.
type StandingEntry struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Wins    int    `json:"wins"`
	Matches int    `json:"matches"`
}

// Pairing opposes two players adjacent in the standings.
type Pairing struct {
	ID1   uint   `json:"id1"`
	Name1 string `json:"name1"`
	ID2   uint   `json:"id2"`
	Name2 string `json:"name2"`
}

type StandingsResponse struct {
	Data         []StandingEntry `json:"data"`
	TotalPlayers int             `json:"total_players"`
	Round        int             `json:"round"`
}

type PairingsResponse struct {
	Data  []Pairing `json:"data"`
	Round int       `json:"round"`
}

// StandingsSnapshot freezes the standings at a point in time. Payload holds
// the JSON-encoded []StandingEntry.
type StandingsSnapshot struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Round     int       `gorm:"not null;default:0" json:"round"`
	Payload   string    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	Standings []StandingEntry `gorm:"-" json:"standings"`
}

func (StandingsSnapshot) TableName() string {
	return "standings_snapshots"
}
