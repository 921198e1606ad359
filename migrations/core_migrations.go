package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_01_04_000000_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				// Create matches table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						player1_id BIGINT NOT NULL,
						player2_id BIGINT NOT NULL,
						winner_id BIGINT NULL,
						is_tie BOOLEAN DEFAULT false,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (player1_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (player2_id) REFERENCES players(id) ON DELETE CASCADE,
						FOREIGN KEY (winner_id) REFERENCES players(id) ON DELETE CASCADE,
						CHECK (player1_id <> player2_id)
					);
					CREATE INDEX IF NOT EXISTS idx_matches_player1_id ON matches(player1_id);
					CREATE INDEX IF NOT EXISTS idx_matches_player2_id ON matches(player2_id);
					CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at);
				`).Error; err != nil {
					return err
				}

				// Create match_results table
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS match_results (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						points INT NOT NULL DEFAULT 0,
						created_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_match_results_match_id ON match_results(match_id);
					CREATE INDEX IF NOT EXISTS idx_match_results_player_id ON match_results(player_id);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("DROP TABLE IF EXISTS match_results CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS matches CASCADE").Error; err != nil {
					return err
				}
				return db.Exec("DROP TABLE IF EXISTS players CASCADE").Error
			},
		},
		{
			Name: "2024_01_05_000000_create_standings_snapshots_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS standings_snapshots (
						id VARCHAR(36) PRIMARY KEY,
						round INT NOT NULL DEFAULT 0,
						payload JSONB NOT NULL,
						created_at TIMESTAMP DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_standings_snapshots_created_at ON standings_snapshots(created_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS standings_snapshots CASCADE").Error
			},
		},
	}
}
