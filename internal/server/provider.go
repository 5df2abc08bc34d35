package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/preston-bernstein/match-thread-service/internal/config"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
	"github.com/preston-bernstein/match-thread-service/internal/providers/ddragon"
	"github.com/preston-bernstein/match-thread-service/internal/providers/fixture"
	"github.com/preston-bernstein/match-thread-service/internal/providers/riot"
	"github.com/preston-bernstein/match-thread-service/internal/snapshots"
)

// NewProvider builds the configured data provider wrapped with logging and metrics.
// Riot match data and Data Dragon champions are instrumented under separate names.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, error) {
	switch cfg.Provider {
	case config.ProviderRiot:
		return providers.Composite{
			Matches:   providers.InstrumentMatches(NewRiotClient(cfg), config.ProviderRiot, logger, recorder),
			Champions: providers.InstrumentChampions(NewDataDragonClient(cfg), "ddragon", logger, recorder),
		}, nil
	case config.ProviderFixture:
		return providers.NewInstrumentedProvider(fixture.New(), config.ProviderFixture, logger, recorder), nil
	case config.ProviderSnapshot:
		store := snapshots.NewFSStore(cfg.Snapshots.Dir)
		return providers.NewInstrumentedProvider(store, config.ProviderSnapshot, logger, recorder), nil
	default:
		return nil, config.ValidateProvider(cfg.Provider)
	}
}

// NewRiotClient builds the match-history client from configuration.
func NewRiotClient(cfg config.Config) *riot.Client {
	return riot.NewClient(riot.Config{
		CORSProxy:  cfg.Riot.Proxy(),
		HTTPClient: &http.Client{Timeout: cfg.Riot.HTTPTimeout},
	})
}

// NewDataDragonClient builds the champion metadata client from configuration.
func NewDataDragonClient(cfg config.Config) *ddragon.Client {
	return ddragon.NewClient(ddragon.Config{
		BaseURL:    cfg.DataDragon.BaseURL,
		Locale:     cfg.DataDragon.Locale,
		HTTPClient: &http.Client{Timeout: cfg.DataDragon.HTTPTimeout},
	})
}

// readinessCheck reports whether the configured provider has what it needs to serve.
func readinessCheck(cfg config.Config) func() error {
	if cfg.Provider != config.ProviderSnapshot {
		return nil
	}
	dir := cfg.Snapshots.Dir
	return func() error {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("snapshot dir unavailable: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("snapshot dir %s is not a directory", dir)
		}
		return nil
	}
}
