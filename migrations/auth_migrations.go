package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_01_01_000000_create_organizers_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS organizers (
						id SERIAL PRIMARY KEY,
						email VARCHAR(255) UNIQUE NOT NULL,
						name VARCHAR(255),
						password VARCHAR(255) NOT NULL,
						enabled BOOLEAN DEFAULT true,
						last_login TIMESTAMP NULL,
						roles JSONB DEFAULT '["organizer"]'::jsonb,
						created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
					);
					CREATE INDEX IF NOT EXISTS idx_organizers_email ON organizers(email);
					CREATE INDEX IF NOT EXISTS idx_organizers_roles ON organizers USING GIN (roles);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS organizers CASCADE").Error
			},
		},
	}
}
