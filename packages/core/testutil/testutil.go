package testutil

import (
	"os"
	"testing"

	"core/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB connects to the database named by TEST_DATABASE_URL and recreates
// the core tables. Tests are skipped when the variable is unset.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if err := db.Exec(`
		DROP TABLE IF EXISTS standings_snapshots CASCADE;
		DROP TABLE IF EXISTS match_results CASCADE;
		DROP TABLE IF EXISTS matches CASCADE;
		DROP TABLE IF EXISTS players CASCADE;
	`).Error; err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Player{},
		&models.Match{},
		&models.MatchResult{},
		&models.StandingsSnapshot{},
	); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// RegisterPlayers inserts players with the given names and returns them in
// insertion order.
func RegisterPlayers(t *testing.T, db *gorm.DB, names ...string) []models.Player {
	t.Helper()

	players := make([]models.Player, 0, len(names))
	for _, name := range names {
		p := models.Player{Name: name}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("Failed to create player %s: %v", name, err)
		}
		players = append(players, p)
	}
	return players
}
