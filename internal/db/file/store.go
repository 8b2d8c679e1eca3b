// Package file implements db.Store over a single JSON file.
//
// The whole collection lives in memory behind one RWMutex and is written back
// on every mutation. Writes go to a temp file in the same directory followed
// by a rename, so a crash never leaves a truncated collection on disk.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/strdex/strdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds file store settings.
type Config struct {
	// Path is the location of the JSON collection file.
	Path string
}

// Store implements db.Store over a flat JSON array of records.
type Store struct {
	path string

	mu    sync.RWMutex
	order []string
	byID  map[string]json.RawMessage
}

// persistedRecord is the minimal view needed to key loaded records.
type persistedRecord struct {
	ID string `json:"id"`
}

// NewStore creates a file store and loads the existing collection.
// A missing file is an empty collection, not an error.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	s := &Store{
		path: cfg.Path,
		byID: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Ping checks that the collection directory is accessible.
func (s *Store) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close is a no-op; the file is closed after every write-back.
func (s *Store) Close() {}

// WaitForReady checks readiness once; local files need no polling.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// PutNX stores data under id and persists the collection.
func (s *Store) PutNX(_ context.Context, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; ok {
		return db.ErrKeyExists
	}

	s.order = append(s.order, id)
	s.byID[id] = append(json.RawMessage(nil), data...)

	if err := s.persist(); err != nil {
		// Roll the insert back so memory never diverges from disk.
		s.order = s.order[:len(s.order)-1]
		delete(s.byID, id)
		return err
	}
	return nil
}

// Get returns the record stored under id.
func (s *Store) Get(_ context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.byID[id]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return append([]byte(nil), data...), nil
}

// Delete removes the record stored under id and persists the collection.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.byID[id]
	if !ok {
		return db.ErrKeyNotFound
	}

	idx := -1
	for i, existing := range s.order {
		if existing == id {
			idx = i
			break
		}
	}
	delete(s.byID, id)
	s.order = append(s.order[:idx], s.order[idx+1:]...)

	if err := s.persist(); err != nil {
		s.order = append(s.order, "")
		copy(s.order[idx+1:], s.order[idx:])
		s.order[idx] = id
		s.byID[id] = data
		return err
	}
	return nil
}

// List returns all records in insertion order.
func (s *Store) List(_ context.Context) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]byte, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, append([]byte(nil), s.byID[id]...))
	}
	return out, nil
}

// load reads the collection file into memory.
func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &db.Error{Op: db.OpRead, Err: err}
	}
	if len(raw) == 0 {
		return nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return &db.Error{Op: db.OpRead, Err: fmt.Errorf("parse %s: %w", s.path, err)}
	}

	for _, rec := range records {
		var p persistedRecord
		if err := json.Unmarshal(rec, &p); err != nil || p.ID == "" {
			return &db.Error{Op: db.OpRead, Err: fmt.Errorf("record without id in %s", s.path)}
		}
		if _, ok := s.byID[p.ID]; ok {
			continue
		}
		s.order = append(s.order, p.ID)
		s.byID[p.ID] = rec
	}
	return nil
}

// persist writes the whole collection atomically. Callers hold the write lock.
func (s *Store) persist() error {
	records := make([]json.RawMessage, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.byID[id])
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &db.Error{Op: db.OpWrite, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &db.Error{Op: db.OpWrite, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".strings-*.json")
	if err != nil {
		return &db.Error{Op: db.OpWrite, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &db.Error{Op: db.OpWrite, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &db.Error{Op: db.OpWrite, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &db.Error{Op: db.OpWrite, Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &db.Error{Op: db.OpRename, Err: err}
	}
	return nil
}
