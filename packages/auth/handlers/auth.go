package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"auth/middleware"
	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{DB: db}
}

// @Summary Organizer Login
// @Description Login with email and password to get a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Organizer credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var organizer models.Organizer
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.DB.Where("email = ?", email).First(&organizer).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error loading organizer %s: %v", email, err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(req.Password, organizer.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !organizer.Enabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account disabled"})
		return
	}

	now := time.Now()
	organizer.LastLogin = &now
	if err := h.DB.Model(&organizer).Update("last_login", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update login info"})
		return
	}

	token, err := utils.NewTokenResponse(organizer)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		TokenResponse: *token,
		Organizer:     organizer,
	})
}

// @Summary Get Organizer Profile
// @Description Get the authenticated organizer
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Organizer
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	organizerID, exists := middleware.GetOrganizerID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var organizer models.Organizer
	if err := h.DB.First(&organizer, organizerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organizer not found"})
		return
	}

	c.JSON(http.StatusOK, organizer)
}
