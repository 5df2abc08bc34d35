package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
	"github.com/preston-bernstein/match-thread-service/internal/logging"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
)

// observer logs and records every upstream call. It never retries.
type observer struct {
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

func newObserver(name string, logger *slog.Logger, recorder *metrics.Recorder) observer {
	return observer{name: name, logger: logger, recorder: recorder, now: time.Now}
}

func (o observer) observe(ctx context.Context, op, url string, fn func() error) error {
	start := o.now()
	err := fn()
	elapsed := o.now().Sub(start)

	o.recorder.RecordProviderAttempt(o.name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		o.recorder.RecordRateLimit(o.name, rl.RetryAfter)
	}

	args := []any{
		"op", op,
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	if url != "" {
		args = append(args, slog.String(logging.FieldURL, url))
	}
	if err != nil {
		logWithProvider(ctx, o.logger, slog.LevelWarn, o.name, "provider fetch failed", append(args, logging.FieldError, err)...)
		return err
	}
	logWithProvider(ctx, o.logger, slog.LevelDebug, o.name, "provider fetch", args...)
	return nil
}

type instrumentedMatches struct {
	inner MatchSource
	obs   observer
}

// InstrumentMatches wraps a match/timeline source with logging and metrics.
func InstrumentMatches(inner MatchSource, name string, logger *slog.Logger, recorder *metrics.Recorder) MatchSource {
	return &instrumentedMatches{inner: inner, obs: newObserver(name, logger, recorder)}
}

func (p *instrumentedMatches) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	var m matches.Match
	err := p.obs.observe(ctx, "match", url, func() error {
		var err error
		m, err = p.inner.FetchMatch(ctx, url)
		return err
	})
	return m, err
}

func (p *instrumentedMatches) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	var tl matches.Timeline
	err := p.obs.observe(ctx, "timeline", url, func() error {
		var err error
		tl, err = p.inner.FetchTimeline(ctx, url)
		return err
	})
	return tl, err
}

type instrumentedChampions struct {
	inner ChampionProvider
	obs   observer
}

// InstrumentChampions wraps a champion source with logging and metrics.
func InstrumentChampions(inner ChampionProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ChampionProvider {
	return &instrumentedChampions{inner: inner, obs: newObserver(name, logger, recorder)}
}

func (p *instrumentedChampions) FetchChampions(ctx context.Context) (champions.Directory, error) {
	var dir champions.Directory
	err := p.obs.observe(ctx, "champions", "", func() error {
		var err error
		dir, err = p.inner.FetchChampions(ctx)
		return err
	})
	return dir, err
}

// NewInstrumentedProvider wraps every capability of a DataProvider under one provider name.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return Composite{
		Matches:   InstrumentMatches(inner, name, logger, recorder),
		Champions: InstrumentChampions(inner, name, logger, recorder),
	}
}
