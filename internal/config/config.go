package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBHealthCheck   time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"30s"`
	Store           string        `env:"STORE" envDefault:"postgres"`
	FactorsFile     string        `env:"FACTORS_FILE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var ErrNoDatabaseURL = errString("DATABASE_URL not set")

type errString string

func (e errString) Error() string { return string(e) }

// Load reads the environment. A missing DATABASE_URL is returned as
// ErrNoDatabaseURL alongside a usable Config so callers can decide.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Store {
	case StorePostgres, StoreMemory:
	default:
		return cfg, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store)
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabaseURL
	}
	return cfg, nil
}
