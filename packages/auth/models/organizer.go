package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Roles []string

// Implémente l'interface driver.Valuer pour GORM
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		return json.Marshal(GetDefaultRoles())
	}
	return json.Marshal(r)
}

// Implémente l'interface sql.Scanner pour GORM
func (r *Roles) Scan(value interface{}) error {
	if value == nil {
		*r = GetDefaultRoles()
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, r)
}

// Organizer is a tournament staff account allowed to register players and
// report results.
type Organizer struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Name      string     `json:"name"`
	Password  string     `json:"-" gorm:"not null"`
	Enabled   bool       `json:"enabled" gorm:"default:true"`
	Roles     Roles      `json:"roles" gorm:"type:jsonb;default:'[\"organizer\"]'::jsonb"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName spécifie le nom de la table au pluriel
func (Organizer) TableName() string {
	return "organizers"
}

// HasRole vérifie si l'organisateur a un rôle spécifique
func (o *Organizer) HasRole(role string) bool {
	for _, r := range o.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole ajoute un rôle à l'organisateur
func (o *Organizer) AddRole(role string) {
	if !o.HasRole(role) {
		o.Roles = append(o.Roles, role)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse représente la réponse avec l'access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"` // secondes
	TokenType   string `json:"token_type"`
}

type AuthResponse struct {
	TokenResponse
	Organizer Organizer `json:"organizer"`
}
