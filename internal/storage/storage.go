package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gabrielfornes/worklog/internal/worklog"
)

// document is the on-disk shape of a log.
type document struct {
	Logs []worklog.Entry `json:"logs"`
}

// Store reads and writes the whole log as one JSON file.
type Store struct {
	Path string // e.g. ~/.config/worklog/log.json
}

// New creates a Store backed by the file at path. The file does not need to
// exist yet.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the log from disk. A missing, unreadable or malformed file
// yields an empty log: a first run and a corrupt file look the same.
func (s *Store) Load() *worklog.Log {
	entries, err := s.read()
	if err != nil {
		log.Printf("starting with an empty log: %v", err)
		return worklog.NewLog()
	}
	return worklog.NewLog(entries...)
}

func (s *Store) read() ([]worklog.Entry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read log: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse log %s: %w", s.Path, err)
	}
	// Files written before entries carried ids get one on load.
	for i := range doc.Logs {
		if doc.Logs[i].ID == "" {
			doc.Logs[i].ID = uuid.NewString()
		}
	}
	return doc.Logs, nil
}

// Save writes the whole log. The data goes to a temporary file in the same
// directory which then replaces the log, so a failed write never truncates
// the previous version.
func (s *Store) Save(l *worklog.Log) error {
	doc := document{Logs: l.Entries()}
	if doc.Logs == nil {
		doc.Logs = []worklog.Entry{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode log: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not ensure directory exists: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("could not write log: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write log: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write log: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("could not replace log: %w", err)
	}
	log.Printf("saved %d entries to %s", l.Len(), s.Path)
	return nil
}
