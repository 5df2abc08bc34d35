package teststubs

import (
	"context"
	"sync"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// StubSource is a test double for report.Source and providers.DataProvider.
type StubSource struct {
	Champions   champions.Directory
	Match       matches.Match
	Timeline    matches.Timeline
	ChampErr    error
	MatchErr    error
	TimelineErr error

	mu    sync.Mutex
	calls []string
}

// FetchChampions returns the configured directory and error.
func (s *StubSource) FetchChampions(ctx context.Context) (champions.Directory, error) {
	_ = ctx
	s.record("champions")
	return s.Champions, s.ChampErr
}

// FetchMatch returns the configured match and error.
func (s *StubSource) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	_ = ctx
	s.record("match " + url)
	return s.Match, s.MatchErr
}

// FetchTimeline returns the configured timeline and error.
func (s *StubSource) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	_ = ctx
	s.record("timeline " + url)
	return s.Timeline, s.TimelineErr
}

// Calls returns the fetches made so far, in order.
func (s *StubSource) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *StubSource) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}
