package middleware

import (
	"net/http"
	"strings"

	"auth/utils"

	"github.com/gin-gonic/gin"
)

const (
	organizerIDKey = "organizer_id"
	emailKey       = "email"
	rolesKey       = "roles"
)

// JWTMiddleware exige un header "Authorization: Bearer <token>" valide
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(organizerIDKey, claims.OrganizerID)
		c.Set(emailKey, claims.Email)
		c.Set(rolesKey, claims.Roles)
		c.Next()
	}
}

func GetOrganizerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(organizerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func GetOrganizerEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(emailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

func getRoles(c *gin.Context) []string {
	v, exists := c.Get(rolesKey)
	if !exists {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
