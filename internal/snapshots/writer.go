package snapshots

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer persists raw upstream payloads and keeps the manifest current.
type Writer struct {
	basePath string
	now      func() time.Time
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath, now: time.Now}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMatch stores the raw match payload fetched from matchURL.
func (w *Writer) WriteMatch(matchURL string, data []byte) error {
	if err := w.check(matchURL, data); err != nil {
		return err
	}
	return writeAtomic(MatchPath(w.basePath, matchURL), data)
}

// WriteTimeline stores the raw timeline payload fetched from timelineURL.
func (w *Writer) WriteTimeline(timelineURL string, data []byte) error {
	if err := w.check(timelineURL, data); err != nil {
		return err
	}
	return writeAtomic(TimelinePath(w.basePath, timelineURL), data)
}

// WriteChampions stores the raw champion.json.
func (w *Writer) WriteChampions(data []byte) error {
	if err := w.check("champions", data); err != nil {
		return err
	}
	return writeAtomic(ChampionsPath(w.basePath), data)
}

// RecordGame adds or refreshes the manifest entry for a captured game.
func (w *Writer) RecordGame(gameURL, timelineURL, championsVersion string) (Entry, error) {
	if w == nil {
		return Entry{}, errors.New("snapshot writer not configured")
	}
	m, err := ReadManifest(w.basePath)
	if err != nil {
		return Entry{}, fmt.Errorf("read manifest: %w", err)
	}
	now := w.now().UTC()
	entry := Entry{
		GameURL:      gameURL,
		TimelineURL:  timelineURL,
		MatchSlug:    Slug(gameURL),
		TimelineSlug: Slug(timelineURL),
		RecordedAt:   now,
	}
	m.upsert(entry)
	if championsVersion != "" {
		m.ChampionsVersion = championsVersion
	}
	if err := writeManifest(w.basePath, m, now); err != nil {
		return Entry{}, fmt.Errorf("write manifest: %w", err)
	}
	return entry, nil
}

func (w *Writer) check(name string, data []byte) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if name == "" {
		return errors.New("snapshot url required")
	}
	if len(data) == 0 {
		return fmt.Errorf("snapshot %s: empty payload", name)
	}
	return nil
}

// writeAtomic writes through a temp file and skips the write when contents are unchanged.
func writeAtomic(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
