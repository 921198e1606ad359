package handlers

import (
	"core/models"
	"core/services"
	"core/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
	snapshotService  *services.SnapshotService
}

func NewStandingsHandler(standingsService *services.StandingsService, snapshotService *services.SnapshotService) *StandingsHandler {
	return &StandingsHandler{
		standingsService: standingsService,
		snapshotService:  snapshotService,
	}
}

// GetStandings returns the current standings
// @Summary Get standings
// @Description Players ranked by wins (highest first). Players tied on wins are not ordered by any tiebreak.
// @Tags standings
// @Produce json
// @Success 200 {object} models.StandingsResponse
// @Failure 503 {object} map[string]string
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(c *gin.Context) {
	standings, err := h.standingsService.GetStandings(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.StandingsResponse{
		Data:         standings,
		TotalPlayers: len(standings),
		Round:        utils.RoundsPlayed(standings),
	})
}

// GetPairings returns the pairings for the next round
// @Summary Get next-round pairings
// @Description Pairs players adjacent in the standings. Requires an even number of players; pairing history is not taken into account.
// @Tags standings
// @Produce json
// @Success 200 {object} models.PairingsResponse
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /pairings [get]
func (h *StandingsHandler) GetPairings(c *gin.Context) {
	pairings, round, err := h.standingsService.GetPairings(c.Request.Context())
	if err != nil {
		if errors.Is(err, utils.ErrOddPlayerCount) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "An even number of players is required to generate pairings",
			})
			return
		}
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PairingsResponse{
		Data:  pairings,
		Round: round,
	})
}

// GetLatestSnapshot returns the most recent standings snapshot
// @Summary Get latest standings snapshot
// @Tags standings
// @Produce json
// @Success 200 {object} models.StandingsSnapshot
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /standings/snapshots/latest [get]
func (h *StandingsHandler) GetLatestSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.GetLatestSnapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No snapshot recorded yet",
			})
			return
		}
		log.Printf("Error loading latest snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve snapshot",
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// CreateSnapshot persists the current standings
// @Summary Take a standings snapshot
// @Tags standings
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.StandingsSnapshot
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /standings/snapshots [post]
func (h *StandingsHandler) CreateSnapshot(c *gin.Context) {
	snapshot, err := h.snapshotService.TakeSnapshot(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func storeError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Tournament data is temporarily unavailable",
		})
		return
	}

	log.Printf("Error computing standings: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
