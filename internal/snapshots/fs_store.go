package snapshots

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
	"github.com/preston-bernstein/match-thread-service/internal/providers/ddragon"
	"github.com/preston-bernstein/match-thread-service/internal/providers/riot"
)

// FSStore serves recorded raw payloads from disk so threads can be rendered offline.
// Files are expected at {basePath}/matches/{slug}.json, {basePath}/timelines/{slug}.json
// and {basePath}/champions.json.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// FetchMatch decodes the recorded match for url.
func (s *FSStore) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	_ = ctx
	f, err := s.open(url, func(base string) string { return MatchPath(base, url) })
	if err != nil {
		return matches.Match{}, err
	}
	defer f.Close()
	return riot.DecodeMatch(f)
}

// FetchTimeline decodes the recorded timeline for url.
func (s *FSStore) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	_ = ctx
	f, err := s.open(url, func(base string) string { return TimelinePath(base, url) })
	if err != nil {
		return matches.Timeline{}, err
	}
	defer f.Close()
	return riot.DecodeTimeline(f)
}

// FetchChampions decodes the recorded champion.json. Its embedded version is used.
func (s *FSStore) FetchChampions(ctx context.Context) (champions.Directory, error) {
	_ = ctx
	f, err := s.open("champions", ChampionsPath)
	if err != nil {
		return champions.Directory{}, err
	}
	defer f.Close()
	return ddragon.DecodeChampions("", f)
}

func (s *FSStore) open(name string, pathFor func(base string) string) (*os.File, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if name == "" {
		return nil, errors.New("snapshot url required")
	}
	path := pathFor(s.basePath)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("snapshot %s: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
