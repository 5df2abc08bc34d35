package snapshots

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/match-thread-service/internal/logging"
	"github.com/preston-bernstein/match-thread-service/internal/providers/ddragon"
	"github.com/preston-bernstein/match-thread-service/internal/providers/riot"
)

// RawMatchSource returns undecoded match and timeline payloads by URL.
type RawMatchSource interface {
	FetchRaw(ctx context.Context, url string) ([]byte, error)
}

// RawChampionSource returns the undecoded champion.json.
type RawChampionSource interface {
	FetchRawChampions(ctx context.Context) ([]byte, error)
}

// Capturer downloads the payloads a thread needs and stores them for offline rendering.
type Capturer struct {
	matches   RawMatchSource
	champions RawChampionSource
	writer    *Writer
	logger    *slog.Logger
}

// NewCapturer wires raw sources to a writer.
func NewCapturer(matches RawMatchSource, champions RawChampionSource, writer *Writer, logger *slog.Logger) *Capturer {
	return &Capturer{matches: matches, champions: champions, writer: writer, logger: logger}
}

// Capture fetches the champion list, match and timeline in that order, validates each payload
// by decoding it, then writes them and updates the manifest. Nothing is written on failure.
func (c *Capturer) Capture(ctx context.Context, gameURL, timelineURL string) (Entry, error) {
	champData, err := c.champions.FetchRawChampions(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch champions: %w", err)
	}
	dir, err := ddragon.DecodeChampions("", bytes.NewReader(champData))
	if err != nil {
		return Entry{}, fmt.Errorf("decode champions: %w", err)
	}

	matchData, err := c.matches.FetchRaw(ctx, gameURL)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch match: %w", err)
	}
	if _, err := riot.DecodeMatch(bytes.NewReader(matchData)); err != nil {
		return Entry{}, fmt.Errorf("decode match: %w", err)
	}

	timelineData, err := c.matches.FetchRaw(ctx, timelineURL)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch timeline: %w", err)
	}
	if _, err := riot.DecodeTimeline(bytes.NewReader(timelineData)); err != nil {
		return Entry{}, fmt.Errorf("decode timeline: %w", err)
	}

	if err := c.writer.WriteChampions(champData); err != nil {
		return Entry{}, err
	}
	if err := c.writer.WriteMatch(gameURL, matchData); err != nil {
		return Entry{}, err
	}
	if err := c.writer.WriteTimeline(timelineURL, timelineData); err != nil {
		return Entry{}, err
	}
	entry, err := c.writer.RecordGame(gameURL, timelineURL, dir.Version())
	if err != nil {
		return Entry{}, err
	}

	logging.Info(logging.FromContext(ctx, c.logger), "snapshot captured",
		slog.String(logging.FieldURL, gameURL),
		slog.String(logging.FieldMatchSlug, entry.MatchSlug),
		slog.String("dir", c.writer.BasePath()),
		slog.Int(logging.FieldCount, dir.Len()),
	)
	return entry, nil
}
