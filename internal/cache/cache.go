// Package cache stores raw API responses on disk so repeated
// invocations within the cache window do not hit the network.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrMiss is returned when no fresh entry is available for a key.
	ErrMiss = errors.New("no cached response")
)

// Store is an on-disk cache holding one file per key under a cache
// directory. There is no locking; concurrent invocations may race on
// the same file, which is acceptable for a single-user CLI tool.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory must already exist.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Key derives the cache key for a query. It hashes the string forms of
// latitude, longitude and units in that order, so the same coordinates
// written with different precision produce different keys.
func Key(lat, lon, units string) string {
	h := sha1.New()
	h.Write([]byte(lat))
	h.Write([]byte(lon))
	h.Write([]byte(units))
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the cached payload for key if it is no older than
// maxAge. An entry aged exactly maxAge is still fresh. A missing or
// stale entry, or any filesystem failure, reads as ErrMiss so callers
// fall through to a fresh fetch.
func (s *Store) Lookup(key string, maxAge time.Duration) ([]byte, error) {
	path := s.entryPath(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrMiss
	}

	if time.Since(info.ModTime()) > maxAge {
		return nil, ErrMiss
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrMiss
	}
	return payload, nil
}

// Save writes a payload for key, overwriting any existing entry.
func (s *Store) Save(key string, payload []byte) error {
	if err := os.WriteFile(s.entryPath(key), payload, 0o644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("last_response_%s.json", key))
}
