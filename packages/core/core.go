package core

import (
	"core/cron"
	"core/handlers"
	"core/metrics"
	"core/services"
	"log"

	"auth"
	authModels "auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler    *handlers.PlayerHandler
	PlayerService    *services.PlayerService
	MatchHandler     *handlers.MatchHandler
	MatchService     *services.MatchService
	StandingsHandler *handlers.StandingsHandler
	StandingsService *services.StandingsService
	SnapshotService  *services.SnapshotService
	StatsHandler     *handlers.StatsHandler
	StatsService     *services.StatsService
	Metrics          *metrics.Metrics
	Scheduler        *cron.Scheduler
}

// NewModule wires the tournament services on db. An empty snapshotSchedule
// falls back to cron.DefaultSnapshotSchedule.
func NewModule(db *gorm.DB, snapshotSchedule string) *Module {
	m := metrics.New()

	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	standingsService := services.NewStandingsService(playerService, matchService, m)
	snapshotService := services.NewSnapshotService(db, standingsService)
	standingsHandler := handlers.NewStandingsHandler(standingsService, snapshotService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(snapshotService, snapshotSchedule)

	return &Module{
		PlayerHandler:    playerHandler,
		PlayerService:    playerService,
		MatchHandler:     matchHandler,
		MatchService:     matchService,
		StandingsHandler: standingsHandler,
		StandingsService: standingsService,
		SnapshotService:  snapshotService,
		StatsHandler:     statsHandler,
		StatsService:     statsService,
		Metrics:          m,
		Scheduler:        scheduler,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	// Admins can do everything organizers can
	organizer := []gin.HandlerFunc{auth.JWTMiddleware(), auth.RequireAnyRole(authModels.RoleOrganizer, authModels.RoleAdmin)}
	admin := []gin.HandlerFunc{auth.JWTMiddleware(), auth.RequireRole(authModels.RoleAdmin)}

	players := r.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/count", m.PlayerHandler.CountPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.POST("", append(organizer, m.PlayerHandler.RegisterPlayer)...)
		players.DELETE("", append(admin, m.PlayerHandler.DeletePlayers)...)
	}

	matches := r.Group("/matches")
	{
		matches.GET("/recent", m.MatchHandler.GetRecentMatches)
		matches.POST("", append(organizer, m.MatchHandler.ReportMatch)...)
		matches.DELETE("", append(admin, m.MatchHandler.DeleteMatches)...)
	}

	standings := r.Group("/standings")
	{
		standings.GET("", m.StandingsHandler.GetStandings)
		standings.GET("/snapshots/latest", m.StandingsHandler.GetLatestSnapshot)
		standings.POST("/snapshots", append(organizer, m.StandingsHandler.CreateSnapshot)...)
	}

	r.GET("/pairings", m.StandingsHandler.GetPairings)
	r.GET("/stats", m.StatsHandler.GetStats)
	r.GET("/metrics", gin.WrapH(m.Metrics.Handler()))
}

// StartScheduler starts the periodic standings snapshots
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunSnapshotNow manually triggers a standings snapshot
func (m *Module) RunSnapshotNow() {
	log.Println("Manually triggering standings snapshot...")
	m.Scheduler.RunNow()
}
