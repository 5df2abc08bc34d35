package testutil

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

// Sample URLs shaped like the public match-history endpoints.
const (
	SampleHistoryURL  = "https://matchhistory.euw.leagueoflegends.com/en/#match-details/ESPORTSTMNT01/1001?gameHash=abc"
	SampleGameURL     = "https://acs.leagueoflegends.com/v1/stats/game/ESPORTSTMNT01/1001?gameHash=abc"
	SampleTimelineURL = "https://acs.leagueoflegends.com/v1/stats/game/ESPORTSTMNT01/1001/timeline?gameHash=abc"
)

// ThreadsPath builds a /threads request path with the given query values.
func ThreadsPath(history, game, timeline string) string {
	q := url.Values{}
	if history != "" {
		q.Set("history", history)
	}
	if game != "" {
		q.Set("game", game)
	}
	if timeline != "" {
		q.Set("timeline", timeline)
	}
	if len(q) == 0 {
		return "/threads"
	}
	return "/threads?" + q.Encode()
}

// WriteFile writes data under dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
