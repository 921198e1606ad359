package auth

import (
	"auth/handlers"
	"auth/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	Handler *handlers.AuthHandler
}

func NewModule(db *gorm.DB) *Module {
	return &Module{
		Handler: handlers.NewAuthHandler(db),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", m.Handler.Login)
		auth.GET("/me", middleware.JWTMiddleware(), m.Handler.Profile)
	}
}

func JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware()
}

func GetOrganizerID(c *gin.Context) (uint, bool) {
	return middleware.GetOrganizerID(c)
}

func GetOrganizerEmail(c *gin.Context) (string, bool) {
	return middleware.GetOrganizerEmail(c)
}

func RequireRole(role string) gin.HandlerFunc {
	return middleware.RequireRole(role)
}

func RequireAnyRole(roles ...string) gin.HandlerFunc {
	return middleware.RequireAnyRole(roles...)
}
