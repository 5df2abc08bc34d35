package snapshots

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path/filepath"
	"strings"
)

type snapshotKind string

const (
	kindMatches   snapshotKind = "matches"
	kindTimelines snapshotKind = "timelines"

	championsFile = "champions.json"
	manifestFile  = "manifest.json"
	maxSlugLength = 96
)

// Slug turns a match-history URL into a stable file name built from host, path and query.
// Characters outside [A-Za-z0-9._-] collapse into single dashes. Whenever that collapse
// loses information, or the slug is truncated, a hash of the full URL is appended so
// distinct URLs never share a file.
func Slug(raw string) string {
	key := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		key = u.Host + u.Path
		if u.RawQuery != "" {
			key += "?" + u.RawQuery
		}
		if u.Fragment != "" {
			key += "#" + u.Fragment
		}
	}

	var b strings.Builder
	dash := false
	for _, r := range key {
		if isSlugRune(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	lossy := slug != key
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
		lossy = true
	}
	if lossy {
		sum := sha256.Sum256([]byte(raw))
		slug += "-" + hex.EncodeToString(sum[:4])
	}
	return slug
}

func isSlugRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// MatchPath builds the path of a recorded match payload.
func MatchPath(basePath, matchURL string) string {
	return payloadPath(basePath, kindMatches, matchURL)
}

// TimelinePath builds the path of a recorded timeline payload.
func TimelinePath(basePath, timelineURL string) string {
	return payloadPath(basePath, kindTimelines, timelineURL)
}

// ChampionsPath builds the path of the recorded champion.json.
func ChampionsPath(basePath string) string {
	return filepath.Join(basePath, championsFile)
}

func payloadPath(basePath string, kind snapshotKind, rawURL string) string {
	return filepath.Join(basePath, string(kind), Slug(rawURL)+".json")
}
