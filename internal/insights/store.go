package insights

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"studysync/internal/errors"
	"studysync/internal/session"
	"studysync/internal/storage"
)

// Store persists one TopicInsights JSON document per topic.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Slug derives the topic's filename stem by replacing every non-alphanumeric
// rune with an underscore. Letters and digits in any script pass through.
func Slug(topic string) string {
	var b strings.Builder
	for _, r := range topic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (s *Store) topicFile(topic string) string {
	return filepath.Join(s.dir, Slug(topic)+".json")
}

// Load returns the topic's document. A missing or malformed file yields a
// fresh empty document for the topic; that is recovery, not an error.
func (s *Store) Load(topic string) *TopicInsights {
	ti := &TopicInsights{}
	if storage.ReadJSON(s.topicFile(topic), ti) {
		return ti
	}
	return &TopicInsights{Topic: topic}
}

// Save writes the topic's document.
func (s *Store) Save(ti *TopicInsights) error {
	if err := storage.WriteJSON(s.topicFile(ti.Topic), ti); err != nil {
		return errors.NewIOFailure("save insights", err)
	}
	return nil
}

// AppendConcepts adds newly captured concepts to the topic and stamps
// LastStudied.
func (s *Store) AppendConcepts(topic string, concepts []Concept, now time.Time) error {
	if len(concepts) == 0 {
		return nil
	}

	ti := s.Load(topic)
	ti.Concepts = append(ti.Concepts, concepts...)
	last := now.Format(session.TimeLayout)
	ti.LastStudied = &last
	return s.Save(ti)
}

// ReviewConcept records a recall outcome for the concept identified by
// (content, createdAt) within the topic. The first match is updated.
func (s *Store) ReviewConcept(topic, content, createdAt string, remembered bool, now time.Time) error {
	ti := s.Load(topic)
	for i := range ti.Concepts {
		c := &ti.Concepts[i]
		if c.Content == content && c.CreatedAt == createdAt {
			Review(c, remembered, now)
			return s.Save(ti)
		}
	}
	return errors.NewNotFound("concept " + content)
}

// AddRelated links two topics symmetrically: adding A→B also adds B→A.
func (s *Store) AddRelated(topic, related string) error {
	ti := s.Load(topic)
	if !contains(ti.RelatedTopics, related) {
		ti.RelatedTopics = append(ti.RelatedTopics, related)
		if err := s.Save(ti); err != nil {
			return err
		}
	}

	other := s.Load(related)
	if !contains(other.RelatedTopics, topic) {
		other.RelatedTopics = append(other.RelatedTopics, topic)
		if err := s.Save(other); err != nil {
			return err
		}
	}
	return nil
}

// Topics loads every topic document in the store, sorted by topic name.
// Malformed files are skipped.
func (s *Store) Topics() ([]*TopicInsights, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewIOFailure("list insights", err)
	}

	var topics []*TopicInsights
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ti := &TopicInsights{}
		if storage.ReadJSON(filepath.Join(s.dir, entry.Name()), ti) && ti.Topic != "" {
			topics = append(topics, ti)
		}
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Topic < topics[j].Topic })
	return topics, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
