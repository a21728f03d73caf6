// Package logbook persists completed study sessions, one JSON file per
// session, and renders them for export.
package logbook

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"studysync/internal/errors"
	"studysync/internal/session"
	"studysync/internal/storage"
	"studysync/internal/ui"
)

// FilenameLayout produces fixed-width timestamps, so lexicographic filename
// order is chronological order.
const FilenameLayout = "2006-01-02_1504"

// Store is the session-log store.
type Store struct {
	dir   string
	clock ui.Clock
}

// NewStore creates a Store writing to dir.
func NewStore(dir string, clock ui.Clock) *Store {
	return &Store{dir: dir, clock: clock}
}

// Dir returns the log directory.
func (s *Store) Dir() string { return s.dir }

// Save writes a completed session once, named after the current time. The
// record is immutable afterwards; corrections require a new session.
func (s *Store) Save(rec *session.Record) (string, error) {
	filename := s.clock.Now().Format(FilenameLayout) + ".json"
	if err := storage.WriteJSON(filepath.Join(s.dir, filename), rec); err != nil {
		return "", errors.NewIOFailure("save session", err)
	}
	return filename, nil
}

// List returns session filenames sorted most recent first.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOFailure("list sessions", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Read loads one session by filename.
func (s *Store) Read(filename string) (*session.Record, error) {
	rec := &session.Record{}
	if !storage.ReadJSON(filepath.Join(s.dir, filename), rec) {
		return nil, errors.NewNotFound(filename)
	}
	return rec, nil
}

// ReadAll loads every readable session, most recent first. Malformed files
// are skipped; aggregates work off whatever parses.
func (s *Store) ReadAll() ([]*session.Record, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	records := make([]*session.Record, 0, len(names))
	for _, name := range names {
		if rec, err := s.Read(name); err == nil {
			records = append(records, rec)
		}
	}
	return records, nil
}
