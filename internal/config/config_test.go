package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderRiot {
		t.Fatalf("expected default provider riot, got %s", cfg.Provider)
	}
	if cfg.Riot.Proxy() != "https://cors-anywhere.herokuapp.com/" {
		t.Fatalf("unexpected default proxy %s", cfg.Riot.Proxy())
	}
	if cfg.Riot.HTTPTimeout != 10*time.Second || cfg.DataDragon.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeouts %s %s", cfg.Riot.HTTPTimeout, cfg.DataDragon.HTTPTimeout)
	}
	if cfg.DataDragon.BaseURL != "https://ddragon.leagueoflegends.com" || cfg.DataDragon.Locale != "en_US" {
		t.Fatalf("unexpected data dragon defaults %+v", cfg.DataDragon)
	}
	if cfg.Snapshots.Dir != "data/snapshots" {
		t.Fatalf("unexpected snapshot dir %s", cfg.Snapshots.Dir)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" || cfg.Metrics.ServiceName != "match-thread-service" {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", " Fixture ")
	t.Setenv("RIOT_CORS_PROXY", "direct")
	t.Setenv("RIOT_HTTP_TIMEOUT", "3s")
	t.Setenv("DDRAGON_LOCALE", "de_DE")
	t.Setenv("SNAPSHOT_DIR", "/tmp/snaps")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" || cfg.Provider != ProviderFixture {
		t.Fatalf("unexpected port/provider %s/%s", cfg.Port, cfg.Provider)
	}
	if cfg.Riot.Proxy() != "" || cfg.Riot.HTTPTimeout != 3*time.Second {
		t.Fatalf("unexpected riot config %+v", cfg.Riot)
	}
	if cfg.DataDragon.Locale != "de_DE" || cfg.Snapshots.Dir != "/tmp/snaps" {
		t.Fatalf("unexpected overrides %+v %+v", cfg.DataDragon, cfg.Snapshots)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("unexpected metrics config %+v", cfg.Metrics)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("PROVIDER", "opgg")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("expected unknown provider error, got %v", err)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("RIOT_HTTP_TIMEOUT", "soon")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}
