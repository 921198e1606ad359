package models

import (
	"time"
)

type Player struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Results []MatchResult `gorm:"foreignKey:PlayerID" json:"results,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type RegisterPlayerRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type PlayerCountResponse struct {
	Count int64 `json:"count"`
}
