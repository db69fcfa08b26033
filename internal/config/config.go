package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"mongo"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string        `env:"MONGO_URI"        envDefault:"mongodb://localhost:27017"`
	Database   string        `env:"MONGO_DATABASE"   envDefault:"games"`
	Collection string        `env:"MONGO_COLLECTION" envDefault:"games"`
	Timeout    time.Duration `env:"MONGO_TIMEOUT"    envDefault:"5s"`
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT"                  envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE"               envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS"        envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS"        envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
	Migrate            bool   `env:"DB_MIGRATE"               envDefault:"true"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	Timezone        string        `env:"APP_TIMEZONE"     envDefault:"UTC"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Store           StoreConfig
	Mongo           MongoConfig
	Database        DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Store.Driver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return &cfg, nil
}
