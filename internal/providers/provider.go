package providers

import (
	"context"

	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// MatchProvider fetches a completed match record by its full URL.
type MatchProvider interface {
	FetchMatch(ctx context.Context, url string) (matches.Match, error)
}

// TimelineProvider fetches a match timeline by its full URL.
type TimelineProvider interface {
	FetchTimeline(ctx context.Context, url string) (matches.Timeline, error)
}

// ChampionProvider loads the champion directory for the latest metadata version.
type ChampionProvider interface {
	FetchChampions(ctx context.Context) (champions.Directory, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	MatchProvider
	TimelineProvider
	ChampionProvider
}

// MatchSource is the match and timeline half of a DataProvider.
type MatchSource interface {
	MatchProvider
	TimelineProvider
}

// Composite assembles a DataProvider from separate match/timeline and champion sources.
type Composite struct {
	Matches   MatchSource
	Champions ChampionProvider
}

func (c Composite) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	return c.Matches.FetchMatch(ctx, url)
}

func (c Composite) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	return c.Matches.FetchTimeline(ctx, url)
}

func (c Composite) FetchChampions(ctx context.Context) (champions.Directory, error) {
	return c.Champions.FetchChampions(ctx)
}
