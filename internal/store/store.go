// Package store is a device-scoped key-value store backed by one JSON file
// per key. Values survive restarts and never expire; a value that fails to
// parse is treated as absent so corrupt or foreign data can never crash
// the game.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// schemaPrefix versions every key. Bumping it orphans all existing saves,
// which then read as absent rather than being misinterpreted.
const schemaPrefix = "ff:v1"

// Store reads and writes JSON values under a base directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DayKey scopes one day's progress to a date, a day index and a puzzle
// identity, so an epoch or catalog change can never resurrect a stale save.
func DayKey(date string, dayIndex int, puzzleID string) string {
	return fmt.Sprintf("%s:%d:%s", date, dayIndex, puzzleID)
}

// StatsKey names the statistics record for one device and puzzle kind.
func StatsKey(kind, deviceID string) string {
	return fmt.Sprintf("%s:%s:%s:stats", schemaPrefix, kind, deviceID)
}

// ProgressKey names one day's saved game or quiz state.
func ProgressKey(kind, deviceID, dayKey string) string {
	return fmt.Sprintf("%s:%s:%s:%s", schemaPrefix, kind, deviceID, dayKey)
}

// filename maps a key onto a safe file name. Runes outside the allowlist
// are hex-escaped rather than collapsed, so distinct keys can never share
// a file. The mapping is injective because '%' itself is escaped.
func (s *Store) filename(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '.':
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "%%%04x", r)
		}
	}
	return filepath.Join(s.dir, b.String()+".json")
}

// Get unmarshals the value stored under key into v and reports whether a
// usable value was found. A missing key or a corrupt value both report
// false; corrupt files are removed so they decode fresh next time.
func (s *Store) Get(key string, v any) bool {
	path := s.filename(key)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[WARN] Removing corrupt store file %s: %v", path, err)
		_ = os.Remove(path)
		return false
	}
	return true
}

// Set persists v under key, replacing any previous value. The write is a
// full marshal of an internally consistent object; a failed write leaves
// the previous value in place.
func (s *Store) Set(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}
	return os.WriteFile(s.filename(key), data, 0644)
}
