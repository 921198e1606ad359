package fixtures

import (
	"os"
	"testing"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	"swiss-tournament-api/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
		DROP TABLE IF EXISTS migrations CASCADE;
		DROP TABLE IF EXISTS standings_snapshots CASCADE;
		DROP TABLE IF EXISTS match_results CASCADE;
		DROP TABLE IF EXISTS matches CASCADE;
		DROP TABLE IF EXISTS players CASCADE;
		DROP TABLE IF EXISTS organizers CASCADE;
	`).Error)

	m, err := migrations.NewDefaultMigrator(db)
	require.NoError(t, err)
	require.NoError(t, m.Migrate())

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestGenerateTestData(t *testing.T) {
	db := setupDB(t)

	f := NewFixtures(db, "", "", 42)
	require.NoError(t, f.GenerateTestData())

	assert.Equal(t, int64(len(playerNames)), count(t, db, &models.Player{}))
	assert.Equal(t, int64(DefaultRounds*len(playerNames)/2), count(t, db, &models.Match{}))
	assert.Equal(t, int64(DefaultRounds*len(playerNames)), count(t, db, &models.MatchResult{}))
	assert.Equal(t, int64(1), count(t, db, &models.StandingsSnapshot{}))

	var admin authModels.Organizer
	require.NoError(t, db.Where("email = ?", DefaultAdminEmail).First(&admin).Error)
	assert.True(t, admin.HasRole(authModels.RoleAdmin))
	assert.True(t, authUtils.CheckPassword(DefaultAdminPassword, admin.Password))

	// Every player took part in every round
	var perPlayer []struct {
		PlayerID uint
		N        int
	}
	require.NoError(t, db.Model(&models.MatchResult{}).
		Select("player_id, COUNT(*) AS n").
		Group("player_id").
		Scan(&perPlayer).Error)
	require.Len(t, perPlayer, len(playerNames))
	for _, p := range perPlayer {
		assert.Equal(t, DefaultRounds, p.N)
	}
}

func TestClearAllData(t *testing.T) {
	db := setupDB(t)

	f := NewFixtures(db, "td@example.com", "secret-password", 7)
	require.NoError(t, f.GenerateTestData())
	require.NoError(t, f.ClearAllData())

	assert.Zero(t, count(t, db, &models.Player{}))
	assert.Zero(t, count(t, db, &models.Match{}))
	assert.Zero(t, count(t, db, &models.MatchResult{}))
	assert.Zero(t, count(t, db, &models.StandingsSnapshot{}))
	assert.Zero(t, count(t, db, &authModels.Organizer{}))

	// Regenerate after a clear
	require.NoError(t, f.GenerateTestData())
	assert.Equal(t, int64(len(playerNames)), count(t, db, &models.Player{}))
}
