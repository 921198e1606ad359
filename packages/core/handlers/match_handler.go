package handlers

import (
	"auth"
	"core/models"
	"core/services"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetRecentMatches retrieves the N most recent matches
// @Summary Get recent matches
// @Description Get the N most recent matches ordered by creation date (newest first)
// @Tags matches
// @Produce json
// @Param limit query int false "Number of matches to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/recent [get]
func (h *MatchHandler) GetRecentMatches(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid limit parameter",
		})
		return
	}

	// Cap the limit to prevent excessive queries
	if limit > 100 {
		limit = 100
	}

	matches, err := h.matchService.GetRecentMatches(limit)
	if err != nil {
		log.Printf("Error retrieving recent matches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve recent matches",
		})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// ReportMatch records the outcome of a match
// @Summary Report a match
// @Description Record a decisive result (1 point to the winner) or a tie (1 point each)
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.ReportMatchRequest true "Match outcome"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) ReportMatch(c *gin.Context) {
	var req models.ReportMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	match, err := h.matchService.ReportMatch(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSamePlayer):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Error reporting match: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to report match"})
		}
		return
	}

	email, _ := auth.GetOrganizerEmail(c)
	log.Printf("Match %d reported by %s", match.ID, email)

	c.JSON(http.StatusCreated, match)
}

// DeleteMatches removes every match record
// @Summary Delete all matches
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [delete]
func (h *MatchHandler) DeleteMatches(c *gin.Context) {
	if err := h.matchService.DeleteMatches(); err != nil {
		log.Printf("Error deleting matches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete matches",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All matches deleted",
	})
}
