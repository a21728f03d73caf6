// Package insights implements spaced-repetition review of learned concepts.
// Concepts are captured during session breaks, stored one JSON document per
// topic, and scheduled for review along a fixed escalation ladder.
package insights

import (
	"math"
	"time"

	"studysync/internal/session"
)

// Intervals is the escalation ladder of review intervals in days, indexed by
// retention level. Levels past the end clamp to the last entry. The ladder
// values and the decrement-on-failure rule define the observable review
// cadence; they are not tunable.
var Intervals = []int{1, 3, 7, 14, 30, 90}

// MaxRetentionLevel caps a concept's retention level.
const MaxRetentionLevel = 5

// Concept is one spaced-repetition learning item. Within a topic the
// (Content, CreatedAt) pair is its natural key; there is no surrogate id.
type Concept struct {
	Content   string `json:"content"`
	Topic     string `json:"topic"`
	CreatedAt string `json:"created_at"`

	// LastReviewed is set after the first review, in session.TimeLayout.
	LastReviewed *string `json:"last_reviewed"`

	// NextReview is always set once the concept exists, in
	// session.DateLayout.
	NextReview *string `json:"next_review"`

	ReviewCount    int `json:"review_count"`
	RetentionLevel int `json:"retention_level"`
}

// TopicInsights is the per-topic concept document. Related-topic links are
// symmetric; the store maintains both directions.
type TopicInsights struct {
	Topic         string    `json:"topic"`
	Concepts      []Concept `json:"concepts"`
	RelatedTopics []string  `json:"related_topics"`
	LastStudied   *string   `json:"last_studied"`
}

// NewConcept creates a concept scheduled for its first review: retention
// level 0, next review Intervals[0] days out.
func NewConcept(content, topic string, now time.Time) Concept {
	next := now.AddDate(0, 0, Intervals[0]).Format(session.DateLayout)
	return Concept{
		Content:    content,
		Topic:      topic,
		CreatedAt:  now.Format(session.TimeLayout),
		NextReview: &next,
	}
}

// Due returns every concept whose next review date is on or before today.
// Dates are fixed-width YYYY-MM-DD, so string comparison is chronological.
func Due(ti *TopicInsights, today string) []Concept {
	var due []Concept
	for _, c := range ti.Concepts {
		if c.NextReview != nil && *c.NextReview <= today {
			due = append(due, c)
		}
	}
	return due
}

// Review applies a recall outcome: the retention level moves one step up or
// down, clamped to [0, MaxRetentionLevel], and the next review lands
// Intervals[level] days from now.
func Review(c *Concept, remembered bool, now time.Time) {
	if remembered {
		c.RetentionLevel = min(MaxRetentionLevel, c.RetentionLevel+1)
	} else {
		c.RetentionLevel = max(0, c.RetentionLevel-1)
	}

	c.ReviewCount++
	last := now.Format(session.TimeLayout)
	c.LastReviewed = &last

	idx := min(c.RetentionLevel, len(Intervals)-1)
	next := now.AddDate(0, 0, Intervals[idx]).Format(session.DateLayout)
	c.NextReview = &next
}

// LearningEffectiveness scores a topic 0..100 as the percentage of maximum
// retention across its concepts, rounded to two decimals. Zero when the
// topic has no concepts.
func LearningEffectiveness(ti *TopicInsights) float64 {
	if len(ti.Concepts) == 0 {
		return 0
	}

	total := 0
	for _, c := range ti.Concepts {
		total += c.RetentionLevel
	}
	maxTotal := MaxRetentionLevel * len(ti.Concepts)

	return math.Round(float64(total)/float64(maxTotal)*100*100) / 100
}
