package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is the fallback data substrate: a durable, namespaced store of
// JSON-serialized collections, one file per namespace. It stands in for
// the remote backend when no database is configured, so reads and writes
// carry a small artificial latency to keep timing characteristics
// comparable. Pass zero latency in tests.
type Store struct {
	dir     string
	latency time.Duration
	mu      sync.Mutex
}

func New(dir string, latency time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create data dir: %w", err)
	}
	return &Store{dir: dir, latency: latency}, nil
}

// Get decodes a namespace into v. A namespace that was never written
// leaves v untouched.
func (s *Store) Get(namespace string, v interface{}) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(namespace, v)
}

// Put replaces a namespace's contents.
func (s *Store) Put(namespace string, v interface{}) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(namespace, v)
}

// Mutate runs a read-modify-write of one namespace under the store lock,
// giving repositories single-writer semantics within this process. fn
// mutates through v; returning an error aborts without writing.
func (s *Store) Mutate(namespace string, v interface{}, fn func() error) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.read(namespace, v); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return s.write(namespace, v)
}

func (s *Store) read(namespace string, v interface{}) error {
	data, err := os.ReadFile(s.path(namespace))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("localstore: read %s: %w", namespace, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("localstore: decode %s: %w", namespace, err)
	}
	return nil
}

func (s *Store) write(namespace string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", namespace, err)
	}

	// Write-then-rename so a crash never leaves a half-written namespace.
	tmp := s.path(namespace) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: write %s: %w", namespace, err)
	}
	if err := os.Rename(tmp, s.path(namespace)); err != nil {
		return fmt.Errorf("localstore: commit %s: %w", namespace, err)
	}
	return nil
}

func (s *Store) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

func (s *Store) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
