package buddy

import (
	"studysync/internal/errors"
	"studysync/internal/session"
	"studysync/internal/storage"
	"studysync/internal/ui"
)

// Store persists the single buddy profile.
type Store struct {
	path  string
	clock ui.Clock
}

// NewStore creates a Store at path.
func NewStore(path string, clock ui.Clock) *Store {
	return &Store{path: path, clock: clock}
}

// Load reads the profile, stamps the new login time, and writes it back.
// Returns nil when no usable profile exists yet; callers create one with
// Create.
func (s *Store) Load() *Profile {
	p := &Profile{}
	if !storage.ReadJSON(s.path, p) || p.Name == "" {
		return nil
	}
	if p.Topics == nil {
		p.Topics = map[string]int{}
	}

	p.LastLogin = s.clock.Now().Format(session.TimeLayout)
	// A failed write-back is not worth failing the visit over.
	_ = s.Save(p)
	return p
}

// Create builds and persists a fresh profile.
func (s *Store) Create(name string) (*Profile, error) {
	p := NewProfile(name, s.clock.Now())
	if err := s.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the profile.
func (s *Store) Save(p *Profile) error {
	if err := storage.WriteJSON(s.path, p); err != nil {
		return errors.NewIOFailure("save buddy profile", err)
	}
	return nil
}

// RecordMood appends a mood check-in and saves.
func (s *Store) RecordMood(p *Profile, mood, note string) error {
	p.MoodHistory = append(p.MoodHistory, MoodEntry{
		Timestamp: s.clock.Now().Format(session.TimeLayout),
		Mood:      mood,
		Note:      note,
	})
	return s.Save(p)
}

// RecordSession notes a completed session on the profile and saves.
func (s *Store) RecordSession(p *Profile, topic string, minutes int) error {
	p.Sessions = append(p.Sessions, SessionRef{
		Date:     s.clock.Now().Format(session.TimeLayout),
		Topic:    topic,
		Duration: minutes,
	})
	if topic != "" {
		p.Topics[topic]++
	}
	return s.Save(p)
}
