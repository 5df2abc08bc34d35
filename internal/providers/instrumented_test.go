package providers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
	"github.com/preston-bernstein/match-thread-service/internal/teststubs"
	"github.com/preston-bernstein/match-thread-service/internal/testutil"
)

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	stub := &teststubs.StubSource{Match: matches.Match{GameID: 42}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(stub, "fixture", nil, rec)

	m, err := p.FetchMatch(context.Background(), "https://example.test/match")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.GameID != 42 {
		t.Fatalf("expected game 42, got %d", m.GameID)
	}
	if _, err := p.FetchChampions(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if rec.ProviderCalls("fixture") != 2 {
		t.Fatalf("expected 2 calls, got %d", rec.ProviderCalls("fixture"))
	}
	if rec.ProviderErrors("fixture") != 0 {
		t.Fatalf("expected no errors, got %d", rec.ProviderErrors("fixture"))
	}
}

func TestInstrumentedProviderDoesNotRetry(t *testing.T) {
	stub := &teststubs.StubSource{TimelineErr: errors.New("boom")}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(stub, "riot", logger, rec)

	if _, err := p.FetchTimeline(context.Background(), "tl"); err == nil {
		t.Fatal("expected error")
	}
	if got := stub.Calls(); len(got) != 1 {
		t.Fatalf("expected exactly one upstream call, got %v", got)
	}
	if rec.ProviderErrors("riot") != 1 {
		t.Fatalf("expected 1 error, got %d", rec.ProviderErrors("riot"))
	}
	out := buf.String()
	if !strings.Contains(out, "provider fetch failed") || !strings.Contains(out, "provider=riot") {
		t.Fatalf("expected failure log with provider, got %s", out)
	}
}

func TestInstrumentedProviderRecordsRateLimit(t *testing.T) {
	stub := &teststubs.StubSource{MatchErr: &RateLimitError{Provider: "riot", RetryAfter: 3 * time.Second}}
	rec := metrics.NewRecorder()
	p := InstrumentMatches(stub, "riot", nil, rec)

	_, err := p.FetchMatch(context.Background(), "m")
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatalf("expected rate limit error to pass through, got %v", err)
	}
	if rec.RateLimitHits("riot") != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", rec.RateLimitHits("riot"))
	}
	if rec.LastRetryAfter("riot") != 3*time.Second {
		t.Fatalf("expected retry after 3s, got %s", rec.LastRetryAfter("riot"))
	}
}

func TestInstrumentChampionsUsesSeparateName(t *testing.T) {
	stub := &teststubs.StubSource{}
	rec := metrics.NewRecorder()
	p := InstrumentChampions(stub, "ddragon", nil, rec)

	if _, err := p.FetchChampions(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if rec.ProviderCalls("ddragon") != 1 || rec.ProviderCalls("riot") != 0 {
		t.Fatalf("expected call recorded under ddragon only")
	}
}

func TestInstrumentedProviderLogsSuccessAtDebug(t *testing.T) {
	stub := &teststubs.StubSource{}
	logger, buf := testutil.NewBufferLoggerAt(slog.LevelDebug)
	p := InstrumentMatches(stub, "riot", logger, nil)

	if _, err := p.FetchMatch(context.Background(), "https://example.test/match"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "url=https://example.test/match") {
		t.Fatalf("expected debug fetch log with url, got %s", out)
	}
}
