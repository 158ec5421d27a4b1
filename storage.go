package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Storage persists opaque values under string keys. The store writes the
// full ledger snapshot under a single fixed key on every mutation; a
// Storage only needs to overwrite whole values, never patch them.
type Storage interface {
	// Read returns the value stored under key. ok is false when the key
	// has never been written.
	Read(key string) (value []byte, ok bool, err error)
	// Write stores value under key, replacing any previous value.
	Write(key string, value []byte) error
}

// FileStorage keeps one file per key under a directory, "<dir>/<key>.json".
// The directory is created on first write.
type FileStorage struct {
	dir string
}

// NewFileStorage returns a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read storage file %q: %w", s.path(key), err)
	}
	return data, true, nil
}

func (s *FileStorage) Write(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create storage directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), value, 0644); err != nil {
		return fmt.Errorf("could not write storage file %q: %w", s.path(key), err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage, for tests and throwaway ledgers.
type MemoryStorage struct {
	values map[string][]byte
	// Writes counts successful writes, so tests can assert that every
	// mutation persisted a snapshot.
	Writes int
	// Fail, when set, makes every Write return this error.
	Fail error
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Read(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStorage) Write(key string, value []byte) error {
	if s.Fail != nil {
		return s.Fail
	}
	s.values[key] = append([]byte(nil), value...)
	s.Writes++
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStorage) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
