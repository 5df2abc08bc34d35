package threads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/match-thread-service/internal/logging"
	"github.com/preston-bernstein/match-thread-service/internal/metrics"
	"github.com/preston-bernstein/match-thread-service/internal/report"
)

// ErrInvalidRequest marks a request missing one of its links.
var ErrInvalidRequest = errors.New("invalid thread request")

// Generator renders a thread from its three links.
type Generator interface {
	Generate(ctx context.Context, req report.Request) (string, error)
}

// Request names the match-history page, match record and timeline of one game.
type Request struct {
	HistoryURL  string
	GameURL     string
	TimelineURL string
}

// Thread is a rendered post-match thread.
type Thread struct {
	Markdown string
	Elapsed  time.Duration
}

// Service is the render use case shared by the HTTP handler and the CLI.
type Service struct {
	generator Generator
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(generator Generator, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// Render validates req, generates the thread and records how long it took.
func (s *Service) Render(ctx context.Context, req Request) (Thread, error) {
	if err := req.validate(); err != nil {
		return Thread{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	start := s.now()
	markdown, err := s.generator.Generate(ctx, report.Request{
		HistoryURL:  req.HistoryURL,
		GameURL:     req.GameURL,
		TimelineURL: req.TimelineURL,
	})
	elapsed := s.now().Sub(start)
	s.metrics.RecordRender(elapsed, err)

	if err != nil {
		logging.Error(logger, "thread render failed", err,
			slog.String(logging.FieldURL, req.GameURL),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		return Thread{}, err
	}

	logging.Info(logger, "thread rendered",
		slog.String(logging.FieldURL, req.GameURL),
		slog.Int(logging.FieldCount, len(markdown)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return Thread{Markdown: markdown, Elapsed: elapsed}, nil
}

func (r Request) validate() error {
	var missing []string
	if strings.TrimSpace(r.HistoryURL) == "" {
		missing = append(missing, "history")
	}
	if strings.TrimSpace(r.GameURL) == "" {
		missing = append(missing, "game")
	}
	if strings.TrimSpace(r.TimelineURL) == "" {
		missing = append(missing, "timeline")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}
