package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Config struct {
	Port             string   `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	DBHost           string   `env:"DB_HOST" envDefault:"localhost"`
	DBPort           string   `env:"DB_PORT" envDefault:"5432" validate:"numeric"`
	DBUser           string   `env:"DB_USER" envDefault:"postgres"`
	DBPassword       string   `env:"DB_PASSWORD"`
	DBName           string   `env:"DB_NAME" envDefault:"swiss_tournament"`
	DBSSLMode        string   `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DatabaseURL      string   `env:"DATABASE_URL"`
	JWTSecret        string   `env:"JWT_SECRET" validate:"omitempty,min=16"`
	CORSOrigins      []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	SnapshotSchedule string   `env:"SNAPSHOT_SCHEDULE"`
	GinMode          string   `env:"GIN_MODE" envDefault:"debug" validate:"oneof=debug release test"`
	AdminEmail       string   `env:"ADMIN_EMAIL" validate:"omitempty,email"`
	AdminPassword    string   `env:"ADMIN_PASSWORD"`
}

// Load lit la configuration depuis l'environnement (.env déjà chargé par godotenv)
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ValidateServer checks the settings only the API server needs. The migrate
// and fixtures commands skip it.
func (c *Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return errors.New("invalid config: JWT_SECRET is required to serve the API")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise builds a key/value DSN from the DB_* parts.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	parts := []string{
		"host=" + c.DBHost,
		"port=" + c.DBPort,
		"user=" + c.DBUser,
		"dbname=" + c.DBName,
		"sslmode=" + c.DBSSLMode,
	}
	if c.DBPassword != "" {
		parts = append(parts, "password="+c.DBPassword)
	}
	return strings.Join(parts, " ")
}

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// ConnectDatabase ouvre la connexion et la garde dans DB. Fatal en cas d'échec.
func ConnectDatabase(cfg *Config) {
	db, err := Open(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("Database connection established")
}
