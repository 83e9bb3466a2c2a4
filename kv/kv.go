// Package kv is a small JSON key-value store on the local filesystem.
// It backs the fallback persistence path when no document database is
// configured, so it must never fail loudly: serialization and IO errors
// are swallowed and reads fall back to the zero value.
package kv

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore opens a store rooted at dir, creating it if needed.
func NewStore(dir string) *Store {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("kv: cannot create %s: %v", dir, err)
	}
	return &Store{dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get decodes the value stored under key into out. It returns false when
// the key is absent or the stored bytes cannot be decoded; out is left
// untouched in that case.
func (s *Store) Get(key string, out any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("kv: malformed value for %q, treating as absent: %v", key, err)
		return false
	}
	return true
}

// Set stores value under key, best-effort. Errors are logged and dropped.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("kv: cannot encode value for %q: %v", key, err)
		return
	}
	if err := os.WriteFile(s.path(key), raw, 0644); err != nil {
		log.Printf("kv: cannot write %q: %v", key, err)
	}
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	os.Remove(s.path(key))
}
