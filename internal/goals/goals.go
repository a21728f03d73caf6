// Package goals manages the study-goal document and renders progress against
// the session log.
package goals

import (
	"fmt"

	"studysync/internal/errors"
	"studysync/internal/stats"
	"studysync/internal/storage"
)

// Goal types.
const (
	TypeMinutes  = "minutes"
	TypeSessions = "sessions"
	TypeTopics   = "topics"
)

// Goal is one study target with a deadline.
type Goal struct {
	Type     string `json:"type"`
	Target   int    `json:"target"`
	Deadline string `json:"deadline"`
}

// Document is the persisted goals file.
type Document struct {
	Goals []Goal `json:"goals"`
}

// DisplayType renders the goal type for tables.
func (g Goal) DisplayType() string {
	switch g.Type {
	case TypeMinutes:
		return "Study Time"
	case TypeSessions:
		return "Complete Sessions"
	case TypeTopics:
		return "Study Topics"
	default:
		return g.Type
	}
}

// DisplayTarget renders the target with its unit.
func (g Goal) DisplayTarget() string {
	switch g.Type {
	case TypeMinutes:
		return fmt.Sprintf("%d minutes", g.Target)
	case TypeSessions:
		return fmt.Sprintf("%d sessions", g.Target)
	case TypeTopics:
		return fmt.Sprintf("%d topics", g.Target)
	default:
		return fmt.Sprintf("%d", g.Target)
	}
}

// Progress returns the completion percentage against the log totals, capped
// at 100. Unknown types and non-positive targets report 0.
func (g Goal) Progress(totals stats.Totals) int {
	if g.Target <= 0 {
		return 0
	}

	var current int
	switch g.Type {
	case TypeMinutes:
		current = totals.TotalMinutes
	case TypeSessions:
		current = totals.Sessions
	case TypeTopics:
		current = totals.TopicCount
	default:
		return 0
	}

	percent := current * 100 / g.Target
	if percent > 100 {
		percent = 100
	}
	return percent
}

// Store persists the single goals document.
type Store struct {
	path string
}

// NewStore creates a Store at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the goals document, empty when the file is missing or
// malformed.
func (s *Store) Load() *Document {
	doc := &Document{}
	if storage.ReadJSON(s.path, doc) {
		return doc
	}
	return &Document{}
}

// Save writes the goals document.
func (s *Store) Save(doc *Document) error {
	if err := storage.WriteJSON(s.path, doc); err != nil {
		return errors.NewIOFailure("save goals", err)
	}
	return nil
}

// Add appends a goal and saves.
func (s *Store) Add(goal Goal) error {
	doc := s.Load()
	doc.Goals = append(doc.Goals, goal)
	return s.Save(doc)
}

// Remove deletes the goal at the given 0-based index and saves.
func (s *Store) Remove(index int) error {
	doc := s.Load()
	if index < 0 || index >= len(doc.Goals) {
		return errors.NewInvalidInput(fmt.Sprintf("no goal at position %d", index+1))
	}
	doc.Goals = append(doc.Goals[:index], doc.Goals[index+1:]...)
	return s.Save(doc)
}

// Clear removes all goals and saves.
func (s *Store) Clear() error {
	return s.Save(&Document{})
}
