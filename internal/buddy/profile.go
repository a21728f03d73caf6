// Package buddy keeps the study-buddy companion profile: who the user is,
// when they last showed up, how they were feeling, and what they have been
// working on.
package buddy

import (
	"time"

	"studysync/internal/session"
)

// Moods the tracker accepts. The last three trigger a check-in greeting on
// the next visit.
var Moods = []string{"happy", "calm", "motivated", "tired", "stressed", "overwhelmed"}

// MoodEntry is one logged mood check-in.
type MoodEntry struct {
	Timestamp string `json:"timestamp"`
	Mood      string `json:"mood"`
	Note      string `json:"note"`
}

// SessionRef is the profile's lightweight view of a completed session.
type SessionRef struct {
	Date     string `json:"date"`
	Topic    string `json:"topic"`
	Duration int    `json:"duration"`
}

// Preferences holds the user's buddy settings.
type Preferences struct {
	StudyTimePreference    string   `json:"study_time_preference"`
	FavoriteSubjects       []string `json:"favorite_subjects"`
	BreakReminder          bool     `json:"break_reminder"`
	EncouragementFrequency string   `json:"encouragement_frequency"`
}

// Profile is the persisted buddy state.
type Profile struct {
	Name         string         `json:"name"`
	CreatedAt    string         `json:"created_at"`
	LastLogin    string         `json:"last_login"`
	MoodHistory  []MoodEntry    `json:"mood_history"`
	Sessions     []SessionRef   `json:"sessions"`
	Topics       map[string]int `json:"topics"`
	Achievements []string       `json:"achievements"`
	Preferences  Preferences    `json:"preferences"`
}

// NewProfile builds a fresh profile with default preferences.
func NewProfile(name string, now time.Time) *Profile {
	stamp := now.Format(session.TimeLayout)
	return &Profile{
		Name:        name,
		CreatedAt:   stamp,
		LastLogin:   stamp,
		MoodHistory: []MoodEntry{},
		Sessions:    []SessionRef{},
		Topics:      map[string]int{},
		Preferences: Preferences{
			FavoriteSubjects:       []string{},
			BreakReminder:          true,
			EncouragementFrequency: "medium",
		},
	}
}

// LastMood returns the most recent logged mood, empty when none.
func (p *Profile) LastMood() string {
	if len(p.MoodHistory) == 0 {
		return ""
	}
	return p.MoodHistory[len(p.MoodHistory)-1].Mood
}

// TotalMinutes sums the durations of the profile's sessions.
func (p *Profile) TotalMinutes() int {
	total := 0
	for _, s := range p.Sessions {
		total += s.Duration
	}
	return total
}
