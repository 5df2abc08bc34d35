package report

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
)

// Source is the upstream data a report is built from.
type Source interface {
	FetchChampions(ctx context.Context) (champions.Directory, error)
	FetchMatch(ctx context.Context, url string) (matches.Match, error)
	FetchTimeline(ctx context.Context, url string) (matches.Timeline, error)
}

// Request names the three links a thread is generated from.
type Request struct {
	HistoryURL  string
	GameURL     string
	TimelineURL string
}

// Assembler builds post-match threads. It holds no per-report state, so one Assembler may
// serve concurrent requests.
type Assembler struct {
	source Source
}

// NewAssembler constructs an Assembler over the given source.
func NewAssembler(source Source) *Assembler {
	return &Assembler{source: source}
}

// Generate fetches the champion directory, match and timeline in that order and renders the
// thread. Any failure aborts the whole thread.
func (a *Assembler) Generate(ctx context.Context, req Request) (string, error) {
	dir, err := a.source.FetchChampions(ctx)
	if err != nil {
		return "", fmt.Errorf("load champions: %w", err)
	}

	match, err := a.source.FetchMatch(ctx, req.GameURL)
	if err != nil {
		return "", fmt.Errorf("fetch match: %w", err)
	}
	if err := checkLayout(match); err != nil {
		return "", err
	}

	players := NewPlayerDirectory(match.Identities)
	if match.Teams[0].Name, err = players.TeamTag(0); err != nil {
		return "", fmt.Errorf("team one name: %w", err)
	}
	if match.Teams[1].Name, err = players.TeamTag(matches.TeamSize); err != nil {
		return "", fmt.Errorf("team two name: %w", err)
	}

	header := Header(match.Teams[0], match.Teams[1], match.DurationSeconds, req.HistoryURL)

	timeline, err := a.source.FetchTimeline(ctx, req.TimelineURL)
	if err != nil {
		return "", fmt.Errorf("fetch timeline: %w", err)
	}
	objectives, err := Objectives(match, timeline, dir)
	if err != nil {
		return "", fmt.Errorf("objectives: %w", err)
	}

	scoreboard, err := Scoreboard(match, players, dir)
	if err != nil {
		return "", fmt.Errorf("scoreboard: %w", err)
	}

	return header + "\n\n" + objectives + "\n\n" + scoreboard, nil
}

func checkLayout(m matches.Match) error {
	if len(m.Participants) != 2*matches.TeamSize {
		return fmt.Errorf("match %d has %d participants, want %d: %w",
			m.GameID, len(m.Participants), 2*matches.TeamSize, domain.ErrMalformedRecord)
	}
	return nil
}
