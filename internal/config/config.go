package config

import (
	"fmt"
	"strings"
)

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port       string `env:"PORT" envDefault:"4000"`
	Provider   string `env:"PROVIDER" envDefault:"riot"`
	Riot       RiotConfig
	DataDragon DataDragonConfig
	Snapshots  SnapshotConfig
	Metrics    MetricsConfig
	Log        LogConfig
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := ValidateProvider(cfg.Provider); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateProvider rejects provider names the service cannot build.
func ValidateProvider(name string) error {
	switch name {
	case ProviderRiot, ProviderFixture, ProviderSnapshot:
		return nil
	default:
		return fmt.Errorf("unknown provider %q (want %s, %s or %s)", name, ProviderRiot, ProviderFixture, ProviderSnapshot)
	}
}
