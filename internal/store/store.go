package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwel/imgtab/internal/config"
	"github.com/cwel/imgtab/internal/model"
)

// SessionFile is the name of the persisted session record.
const SessionFile = "session.json"

// Store handles session record persistence.
type Store struct {
	baseDir string
}

// New creates a new Store with the given base directory.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// DefaultStore returns a Store in the configured data directory.
func DefaultStore() *Store {
	return New(config.DataDir())
}

// Path returns the location of the session record.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, SessionFile)
}

// LoadRecord reads the session record. A missing file yields an empty
// record, which is written out so the file exists from then on.
func (s *Store) LoadRecord() (*model.Record, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		rec := model.EmptyRecord()
		if err := s.SaveRecord(rec); err != nil {
			return nil, err
		}
		return rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var rec model.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	rec.Normalize()

	return &rec, nil
}

// SaveRecord writes the session record atomically.
func (s *Store) SaveRecord(rec *model.Record) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	out := *rec
	out.Normalize()
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	path := s.Path()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename session file: %w", err)
	}

	return nil
}
