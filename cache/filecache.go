// Package cache persists tool results on disk with TTL-based expiry.
//
// The cache directory is shared state between plugin invocations, possibly
// across processes. Every operation stats, reads or writes the filesystem
// directly and holds nothing in memory, so no locking is needed: writes are
// tmp-file-plus-rename and readers see either the old entry or the new one.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNotEnabled reports that the cache directory is not mounted. It is a
// degrade signal, not a failure: callers skip caching and carry on.
var ErrNotEnabled = errors.New("cache is not enabled (directory not mounted)")

// Status classifies the outcome of a cache lookup. Miss and Stale both mean
// "refetch"; they are kept distinct for logging.
type Status int

const (
	Miss Status = iota
	Hit
	Stale
)

func (s Status) String() string {
	switch s {
	case Hit:
		return "hit"
	case Stale:
		return "stale"
	default:
		return "miss"
	}
}

// Store reads and writes tool results under a single directory.
type Store struct {
	dir string
	ttl time.Duration
	log zerolog.Logger
}

// New creates a store over dir. Entries older than ttl are treated as stale;
// a ttl of zero means every entry is stale on read, even a just-written one.
// The directory is not created: if it is absent, caching is disabled.
func New(dir string, ttl time.Duration, log zerolog.Logger) *Store {
	s := &Store{dir: dir, ttl: ttl, log: log}
	if !s.Enabled() {
		log.Info().Str("dir", dir).Msg("cache directory not mounted; caching disabled")
	}
	return s
}

// Enabled reports whether the cache directory is usable.
func (s *Store) Enabled() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

func (s *Store) path(tool, key string) string {
	return filepath.Join(s.dir, Filename(tool, key))
}

// Get looks up the entry for (tool, key) and decodes it into out. A missing
// directory, missing file or undecodable contents all degrade to Miss; an
// entry whose mtime age reaches the TTL is Stale. Get never fails.
func (s *Store) Get(tool, key string, out any) Status {
	if !s.Enabled() {
		return Miss
	}
	path := s.path(tool, key)
	info, err := os.Stat(path)
	if err != nil {
		return Miss
	}
	if time.Since(info.ModTime()) >= s.ttl {
		return Stale
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Miss
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Debug().Str("file", path).Err(err).Msg("ignoring corrupt cache entry")
		return Miss
	}
	return Hit
}

// Put writes payload as the entry for (tool, key). The data goes to a
// temporary file first and is renamed into place so that a concurrent reader
// never sees a partial entry. Last writer wins.
func (s *Store) Put(tool, key string, payload any) error {
	if !s.Enabled() {
		return ErrNotEnabled
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	path := s.path(tool, key)
	tmp := fmt.Sprintf("%s.tmp.%s", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry file in the cache directory, leaving any other
// file untouched, and returns the number removed. Removal keeps going past
// individual failures; those are folded into the returned error.
func (s *Store) Clear() (int, error) {
	if !s.Enabled() {
		return 0, ErrNotEnabled
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read cache directory: %w", err)
	}
	removed := 0
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	if len(errs) > 0 {
		return removed, fmt.Errorf("remove %d cache entries: %w", len(errs), errors.Join(errs...))
	}
	return removed, nil
}
