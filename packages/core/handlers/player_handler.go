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

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetAllPlayers lists every registered player
// @Summary List players
// @Description Get all registered players in registration order
// @Tags players
// @Produce json
// @Success 200 {array} models.Player
// @Failure 500 {object} map[string]string
// @Router /players [get]
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	players, err := h.playerService.ListPlayers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing players: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve players",
		})
		return
	}

	c.JSON(http.StatusOK, players)
}

// CountPlayers returns the number of registered players
// @Summary Count players
// @Tags players
// @Produce json
// @Success 200 {object} models.PlayerCountResponse
// @Failure 500 {object} map[string]string
// @Router /players/count [get]
func (h *PlayerHandler) CountPlayers(c *gin.Context) {
	count, err := h.playerService.CountPlayers()
	if err != nil {
		log.Printf("Error counting players: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to count players",
		})
		return
	}

	c.JSON(http.StatusOK, models.PlayerCountResponse{Count: count})
}

// GetPlayer retrieves a player by ID
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid player ID",
		})
		return
	}

	player, err := h.playerService.GetPlayerByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}
		log.Printf("Error loading player %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, player)
}

// RegisterPlayer adds a player to the tournament
// @Summary Register a player
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param player body models.RegisterPlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var req models.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	player, err := h.playerService.RegisterPlayer(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Printf("Error registering player: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to register player",
		})
		return
	}

	organizerID, _ := auth.GetOrganizerID(c)
	log.Printf("Player %d (%s) registered by organizer %d", player.ID, player.Name, organizerID)

	c.JSON(http.StatusCreated, player)
}

// DeletePlayers removes every player along with their results
// @Summary Delete all players
// @Tags players
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players [delete]
func (h *PlayerHandler) DeletePlayers(c *gin.Context) {
	if err := h.playerService.DeletePlayers(); err != nil {
		log.Printf("Error deleting players: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete players",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All players deleted",
	})
}
