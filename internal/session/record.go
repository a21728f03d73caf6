package session

import "time"

// Session type markers persisted in the session_type field.
const (
	TypePlain    = "plain"
	TypePomodoro = "pomodoro"
)

// Timestamp layouts used across all persisted documents.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// FocusScore is one self-rating collected after an interval.
type FocusScore struct {
	// Timestamp is when the score was entered, in TimeLayout.
	Timestamp string `json:"timestamp"`

	// Score is the 1..5 self-rating.
	Score int `json:"score"`

	// Interval is the 1-based index of the interval the score rates.
	Interval int `json:"interval"`
}

// Record is one completed study session. It is built in memory during a run,
// written once at completion, and never edited afterwards; corrections
// require a new session.
type Record struct {
	Topic string `json:"topic"`
	Goal  string `json:"goal"`

	// Date is the session start time in TimeLayout.
	Date string `json:"date"`

	// Duration in minutes: the plan for plain sessions, the actual elapsed
	// minutes for pomodoro sessions.
	Duration int `json:"duration"`

	// SessionType is TypePlain or TypePomodoro.
	SessionType string `json:"session_type"`

	// BreakInterval is set for plain sessions only.
	BreakInterval int `json:"break_interval,omitempty"`

	// Pomodoro settings, set for pomodoro sessions only.
	WorkInterval       int `json:"work_interval,omitempty"`
	ShortBreak         int `json:"short_break,omitempty"`
	LongBreak          int `json:"long_break,omitempty"`
	CompletedIntervals int `json:"completed_intervals,omitempty"`

	// ActualDurationSeconds is wall-clock elapsed time; it can exceed the
	// plan when the human lingers at prompts.
	ActualDurationSeconds int `json:"actual_duration_seconds"`

	FocusScores []FocusScore `json:"focus_scores"`

	// AvgFocus is the arithmetic mean of FocusScores, 0 when none were
	// collected.
	AvgFocus float64 `json:"avg_focus"`
}

// AverageFocus computes the mean score, 0 for an empty slice.
func AverageFocus(scores []FocusScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s.Score
	}
	return float64(sum) / float64(len(scores))
}

// StartTime parses the record's date field.
func (r *Record) StartTime() (time.Time, error) {
	return time.Parse(TimeLayout, r.Date)
}
