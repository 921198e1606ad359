package migrations

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrationDefinitions(t *testing.T) {
	all := append(GetAuthMigrations(), GetCoreMigrations()...)

	seen := make(map[string]bool)
	for i, m := range all {
		assert.False(t, seen[m.Name], "duplicate migration %s", m.Name)
		seen[m.Name] = true
		assert.NotNil(t, m.Up, m.Name)
		assert.NotNil(t, m.Down, m.Name)
		if i > 0 {
			assert.Less(t, all[i-1].Name, m.Name, "migrations must be registered in order")
		}
	}
}

func TestMigrator_FindMigration(t *testing.T) {
	m := &Migrator{}
	for _, def := range GetCoreMigrations() {
		m.AddMigration(def)
	}

	found := m.findMigration("2024_01_05_000000_create_standings_snapshots_table")
	require.NotNil(t, found)
	assert.Equal(t, "2024_01_05_000000_create_standings_snapshots_table", found.Name)
	assert.Nil(t, m.findMigration("unknown"))
}

func openTestDB(t *testing.T) *gorm.DB {
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

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestMigrator_MigrateAndRollback(t *testing.T) {
	db := openTestDB(t)

	m, err := NewDefaultMigrator(db)
	require.NoError(t, err)
	assert.Len(t, m.Pending(), 3)

	require.NoError(t, m.Migrate())
	assert.Empty(t, m.Pending())

	applied, err := m.Status()
	require.NoError(t, err)
	require.Len(t, applied, 3)
	for _, a := range applied {
		assert.Equal(t, 1, a.Batch)
	}

	for _, table := range []string{"organizers", "players", "matches", "match_results", "standings_snapshots"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// Running again is a no-op
	require.NoError(t, m.Migrate())
	applied, err = m.Status()
	require.NoError(t, err)
	assert.Len(t, applied, 3)

	require.NoError(t, m.Rollback(1))
	assert.False(t, db.Migrator().HasTable("players"))
	assert.False(t, db.Migrator().HasTable("organizers"))
	assert.Len(t, m.Pending(), 3)
}
