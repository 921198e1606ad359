package utils

import (
	"testing"
	"time"

	"auth/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	organizer := models.Organizer{
		ID:    7,
		Email: "td@example.com",
		Roles: models.Roles{models.RoleOrganizer, models.RoleAdmin},
	}

	resp, err := NewTokenResponse(organizer)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(AccessTokenExpiry.Seconds()), resp.ExpiresIn)

	claims, err := ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.OrganizerID)
	assert.Equal(t, "td@example.com", claims.Email)
	assert.Equal(t, []string{"organizer", "admin"}, claims.Roles)
	assert.Equal(t, "7", claims.Subject)
}

func TestParseToken_Rejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken(models.Organizer{ID: 1})
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "another-secret")
		_, err = ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := Claims{
			OrganizerID: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{OrganizerID: 1}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(models.Organizer{ID: 1})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("swiss-gambit")
	require.NoError(t, err)
	assert.NotEqual(t, "swiss-gambit", hash)

	assert.True(t, CheckPassword("swiss-gambit", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
