package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"auth/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AccessTokenExpiry = 12 * time.Hour // une journée de tournoi

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// Claims portées par l'access token
type Claims struct {
	OrganizerID uint     `json:"organizer_id"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

func secret() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, ErrMissingSecret
	}
	return []byte(s), nil
}

// GenerateToken signe un access token HS256 pour l'organisateur
func GenerateToken(organizer models.Organizer) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		OrganizerID: organizer.ID,
		Email:       organizer.Email,
		Roles:       organizer.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(organizer.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenExpiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ParseToken vérifie la signature et l'expiration du token
func ParseToken(tokenString string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// NewTokenResponse génère le token et la réponse associée
func NewTokenResponse(organizer models.Organizer) (*models.TokenResponse, error) {
	accessToken, err := GenerateToken(organizer)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(AccessTokenExpiry.Seconds()),
		TokenType:   "Bearer",
	}, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
