package server

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/match-thread-service/internal/config"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
)

func TestNewProviderRiotSplitsInstrumentation(t *testing.T) {
	cfg := config.Config{Provider: config.ProviderRiot}
	p, err := NewProvider(cfg, nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, ok := p.(providers.Composite); !ok {
		t.Fatalf("expected composite provider, got %T", p)
	}
}

func TestNewProviderFixtureServesData(t *testing.T) {
	rec := metrics.NewRecorder()
	p, err := NewProvider(config.Config{Provider: config.ProviderFixture}, nil, rec)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	dir, err := p.FetchChampions(context.Background())
	if err != nil || dir.Len() == 0 {
		t.Fatalf("expected fixture champions, got %d err %v", dir.Len(), err)
	}
	if rec.ProviderCalls(config.ProviderFixture) != 1 {
		t.Fatalf("expected fixture call recorded, got %d", rec.ProviderCalls(config.ProviderFixture))
	}
}

func TestNewProviderSnapshotReadsStore(t *testing.T) {
	cfg := config.Config{Provider: config.ProviderSnapshot}
	cfg.Snapshots.Dir = t.TempDir()
	p, err := NewProvider(cfg, nil, nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, err := p.FetchChampions(context.Background()); err == nil {
		t.Fatalf("expected missing champions snapshot error")
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(config.Config{Provider: "nope"}, nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestReadinessCheck(t *testing.T) {
	if fn := readinessCheck(config.Config{Provider: config.ProviderRiot}); fn != nil {
		t.Fatalf("expected no readiness check for riot")
	}

	dir := t.TempDir()
	cfg := config.Config{Provider: config.ProviderSnapshot}
	cfg.Snapshots.Dir = dir
	if err := readinessCheck(cfg)(); err != nil {
		t.Fatalf("expected ready, got %v", err)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg.Snapshots.Dir = file
	if err := readinessCheck(cfg)(); err == nil {
		t.Fatalf("expected error for non-directory")
	}

	cfg.Snapshots.Dir = filepath.Join(dir, "missing")
	if err := readinessCheck(cfg)(); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
