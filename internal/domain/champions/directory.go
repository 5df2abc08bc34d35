package champions

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
)

// Champion is a Data Dragon champion entry.
type Champion struct {
	Key  int    `json:"key"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Directory maps numeric champion keys to champions for one metadata version.
// It is built once per report and never mutated afterwards.
type Directory struct {
	version string
	byKey   map[int]Champion
}

// NewDirectory builds a directory from the given entries. Later duplicates win.
func NewDirectory(version string, entries []Champion) Directory {
	byKey := make(map[int]Champion, len(entries))
	for _, c := range entries {
		byKey[c.Key] = c
	}
	return Directory{version: version, byKey: byKey}
}

// Version returns the metadata version the directory was built from.
func (d Directory) Version() string {
	return d.version
}

// Len returns the number of champions in the directory.
func (d Directory) Len() int {
	return len(d.byKey)
}

// Name returns the lowercased display name for the champion key.
func (d Directory) Name(key int) (string, error) {
	c, ok := d.byKey[key]
	if !ok {
		return "", fmt.Errorf("champion %d (version %q): %w", key, d.version, domain.ErrNotFound)
	}
	return strings.ToLower(c.Name), nil
}
