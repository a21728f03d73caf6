// Package stats derives presentation aggregates from the session log:
// day-streaks, a rolling weekly overview, and lifetime totals.
package stats

import (
	"sort"
	"time"

	"studysync/internal/session"
)

// WeekdayOrder fixes the rendering order of the weekly overview.
var WeekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday",
	"Friday", "Saturday", "Sunday",
}

// parseDay accepts both the full timestamp layout and a bare date.
func parseDay(s string) (time.Time, bool) {
	if t, err := time.Parse(session.TimeLayout, s); err == nil {
		return t.Truncate(24 * time.Hour), true
	}
	if t, err := time.Parse(session.DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CurrentStreak counts consecutive calendar days with at least one session,
// ending today or yesterday. Multiple sessions on one day count once; any
// gap stops the scan.
func CurrentStreak(dates []string, now time.Time) int {
	seen := make(map[string]bool)
	var days []time.Time
	for _, s := range dates {
		day, ok := parseDay(s)
		if !ok {
			continue
		}
		key := day.Format(session.DateLayout)
		if !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	newest := days[0]
	if !sameDay(newest, today) && !sameDay(newest, today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for _, day := range days[1:] {
		if sameDay(day, newest.AddDate(0, 0, -streak)) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// DayStats aggregates one weekday of the rolling weekly window.
type DayStats struct {
	Sessions     int
	TotalMinutes int
	FocusScores  []int
	AvgFocus     float64
}

// Weekly buckets sessions from the last 7 days (inclusive, rolling from now
// rather than a calendar week) by weekday name. The average is the mean of
// all individual focus scores logged that day, not of per-session averages.
func Weekly(records []*session.Record, now time.Time) map[string]*DayStats {
	days := make(map[string]*DayStats)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, rec := range records {
		day, ok := parseDay(rec.Date)
		if !ok {
			continue
		}
		daysAgo := int(today.Sub(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())).Hours() / 24)
		if daysAgo > 7 || daysAgo < 0 {
			continue
		}

		name := day.Weekday().String()
		d := days[name]
		if d == nil {
			d = &DayStats{}
			days[name] = d
		}
		d.Sessions++
		d.TotalMinutes += rec.Duration
		for _, score := range rec.FocusScores {
			d.FocusScores = append(d.FocusScores, score.Score)
		}
	}

	for _, d := range days {
		if len(d.FocusScores) > 0 {
			sum := 0
			for _, s := range d.FocusScores {
				sum += s
			}
			d.AvgFocus = float64(sum) / float64(len(d.FocusScores))
		}
	}
	return days
}

// Totals summarizes the whole session log for the dashboard and goal
// progress.
type Totals struct {
	Sessions     int
	TotalMinutes int
	TopicCount   int
	Streak       int

	// LastSessionDate is the most recent session day, YYYY-MM-DD, empty when
	// the log is empty.
	LastSessionDate string
}

// Compute derives Totals from the full session log.
func Compute(records []*session.Record, now time.Time) Totals {
	t := Totals{Sessions: len(records)}

	topics := make(map[string]bool)
	var dates []string
	for _, rec := range records {
		t.TotalMinutes += rec.Duration
		if rec.Topic != "" {
			topics[rec.Topic] = true
		}
		dates = append(dates, rec.Date)
	}
	t.TopicCount = len(topics)
	t.Streak = CurrentStreak(dates, now)

	var newest time.Time
	for _, s := range dates {
		if day, ok := parseDay(s); ok && day.After(newest) {
			newest = day
		}
	}
	if !newest.IsZero() {
		t.LastSessionDate = newest.Format(session.DateLayout)
	}
	return t
}

// Achievements returns the unlocked achievement lines for the dashboard.
func Achievements(t Totals) []string {
	var unlocked []string
	if t.Sessions >= 10 {
		unlocked = append(unlocked, "Study Master: Completed 10+ sessions")
	}
	if t.TotalMinutes >= 500 {
		unlocked = append(unlocked, "Time Wizard: Studied for 500+ minutes")
	}
	if t.Streak >= 3 {
		unlocked = append(unlocked, "Consistency King: 3+ day streak")
	}
	if t.TopicCount >= 3 {
		unlocked = append(unlocked, "Knowledge Explorer: Studied 3+ topics")
	}
	return unlocked
}
