package snapshots

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// Manifest lists what a snapshot directory holds.
type Manifest struct {
	Version          int       `json:"version" yaml:"version"`
	GeneratedAt      time.Time `json:"generatedAt" yaml:"generated_at"`
	ChampionsVersion string    `json:"championsVersion,omitempty" yaml:"champions_version,omitempty"`
	Games            []Entry   `json:"games" yaml:"games"`
}

// Entry records one captured game.
type Entry struct {
	GameURL      string    `json:"gameUrl" yaml:"game_url"`
	TimelineURL  string    `json:"timelineUrl" yaml:"timeline_url"`
	MatchSlug    string    `json:"matchSlug" yaml:"match_slug"`
	TimelineSlug string    `json:"timelineSlug" yaml:"timeline_slug"`
	RecordedAt   time.Time `json:"recordedAt" yaml:"recorded_at"`
}

func defaultManifest() Manifest {
	return Manifest{Version: 1, Games: []Entry{}}
}

// ReadManifest loads the manifest under basePath. A missing file yields an empty manifest.
func ReadManifest(basePath string) (Manifest, error) {
	f, err := os.Open(filepath.Join(basePath, manifestFile))
	if os.IsNotExist(err) {
		return defaultManifest(), nil
	}
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	return m, nil
}

// upsert replaces the entry for the same game URL or appends a new one, keeping
// entries sorted by game URL.
func (m *Manifest) upsert(e Entry) {
	for i := range m.Games {
		if m.Games[i].GameURL == e.GameURL {
			m.Games[i] = e
			return
		}
	}
	m.Games = append(m.Games, e)
	sort.Slice(m.Games, func(i, j int) bool { return m.Games[i].GameURL < m.Games[j].GameURL })
}

func writeManifest(basePath string, m Manifest, now time.Time) error {
	m.GeneratedAt = now.UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(basePath, manifestFile), data)
}
