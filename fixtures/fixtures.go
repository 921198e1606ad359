package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	"core/services"

	"gorm.io/gorm"
)

const (
	DefaultAdminEmail    = "admin@swiss-tournament.local"
	DefaultAdminPassword = "password123"
	DefaultRounds        = 3

	tieChance = 0.1
)

var playerNames = []string{
	"alexandre", "marie", "julien", "sophie",
	"thomas", "camille", "nicolas", "laura",
}

type Fixtures struct {
	db            *gorm.DB
	rng           *rand.Rand
	adminEmail    string
	adminPassword string

	players   *services.PlayerService
	matches   *services.MatchService
	standings *services.StandingsService
	snapshots *services.SnapshotService
}

// NewFixtures prepares a generator. Empty admin credentials fall back to the defaults.
func NewFixtures(db *gorm.DB, adminEmail, adminPassword string, seed int64) *Fixtures {
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	if adminPassword == "" {
		adminPassword = DefaultAdminPassword
	}

	players := services.NewPlayerService(db)
	matches := services.NewMatchService(db)
	standings := services.NewStandingsService(players, matches, nil)

	return &Fixtures{
		db:            db,
		rng:           rand.New(rand.NewSource(seed)), // #nosec G404
		adminEmail:    strings.ToLower(adminEmail),
		adminPassword: adminPassword,
		players:       players,
		matches:       matches,
		standings:     standings,
		snapshots:     services.NewSnapshotService(db, standings),
	}
}

// GenerateTestData seeds an admin organizer, eight players and plays
// DefaultRounds Swiss rounds with random outcomes.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	if err := f.generateAdmin(); err != nil {
		return fmt.Errorf("failed to generate admin: %w", err)
	}

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	matches, err := f.playRounds(context.Background(), DefaultRounds)
	if err != nil {
		return fmt.Errorf("failed to play rounds: %w", err)
	}

	snapshot, err := f.snapshots.TakeSnapshot(context.Background())
	if err != nil {
		return fmt.Errorf("failed to take snapshot: %w", err)
	}

	log.Printf("Created %d players, %d matches over %d rounds (snapshot %s)", len(players), matches, DefaultRounds, snapshot.ID)
	return nil
}

func (f *Fixtures) generateAdmin() error {
	hashedPassword, err := authUtils.HashPassword(f.adminPassword)
	if err != nil {
		return err
	}

	admin := authModels.Organizer{
		Email:    f.adminEmail,
		Name:     "Tournament Director",
		Password: hashedPassword,
		Enabled:  true,
		Roles:    authModels.GetAllRoles(),
	}

	if err := f.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created admin organizer: %s (ID: %d)", admin.Email, admin.ID)
	return nil
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	players := make([]models.Player, 0, len(playerNames))
	for _, name := range playerNames {
		player, err := f.players.RegisterPlayer(name)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
		log.Printf("Registered player: %s (ID: %d)", player.Name, player.ID)
	}
	return players, nil
}

// playRounds pairs the current standings and reports a random outcome for
// every pairing, rounds times. It returns the number of matches reported.
func (f *Fixtures) playRounds(ctx context.Context, rounds int) (int, error) {
	reported := 0
	for i := 0; i < rounds; i++ {
		pairings, round, err := f.standings.GetPairings(ctx)
		if err != nil {
			return reported, err
		}

		for _, p := range pairings {
			req := models.ReportMatchRequest{WinnerID: p.ID1, LoserID: p.ID2}
			switch r := f.rng.Float64(); {
			case r < tieChance:
				req.Tie = true
			case r < (1+tieChance)/2:
				req.WinnerID, req.LoserID = p.ID2, p.ID1
			}

			if _, err := f.matches.ReportMatch(req); err != nil {
				return reported, err
			}
			reported++
		}
		log.Printf("Round %d played: %d matches", round, len(pairings))
	}
	return reported, nil
}

func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	if err := f.db.Where("1 = 1").Delete(&models.StandingsSnapshot{}).Error; err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}

	// Results and matches go with the players
	if err := f.players.DeletePlayers(); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	if err := f.db.Where("1 = 1").Delete(&authModels.Organizer{}).Error; err != nil {
		return fmt.Errorf("failed to clear organizers: %w", err)
	}

	// Reset auto-increment sequences to start from 1
	sequences := []string{
		"ALTER SEQUENCE organizers_id_seq RESTART WITH 1",
		"ALTER SEQUENCE players_id_seq RESTART WITH 1",
		"ALTER SEQUENCE matches_id_seq RESTART WITH 1",
		"ALTER SEQUENCE match_results_id_seq RESTART WITH 1",
	}

	var errs []error
	for _, seq := range sequences {
		if err := f.db.Exec(seq).Error; err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Printf("Warning: failed to reset sequences: %v", err)
	}

	log.Println("All fixture data cleared!")
	return nil
}
