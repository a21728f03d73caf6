package buddy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"studysync/internal/session"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time        { return f.now }
func (f *fakeClock) Sleep(d time.Duration) { f.now = f.now.Add(d) }

var testNow = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: testNow}
	return NewStore(filepath.Join(t.TempDir(), "buddy_profile.json"), clock), clock
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	if p := store.Load(); p != nil {
		t.Errorf("Load = %+v, want nil", p)
	}
}

func TestStore_LoadCorruptReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	if err := os.WriteFile(store.path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if p := store.Load(); p != nil {
		t.Errorf("Load = %+v, want nil", p)
	}
}

func TestStore_CreateThenLoadStampsLogin(t *testing.T) {
	store, clock := newTestStore(t)

	created, err := store.Create("Ada")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Ada" || created.CreatedAt != testNow.Format(session.TimeLayout) {
		t.Errorf("created = %+v", created)
	}
	if !created.Preferences.BreakReminder || created.Preferences.EncouragementFrequency != "medium" {
		t.Errorf("default preferences = %+v", created.Preferences)
	}

	clock.now = clock.now.Add(48 * time.Hour)
	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Load returned nil after Create")
	}
	if loaded.LastLogin != clock.now.Format(session.TimeLayout) {
		t.Errorf("LastLogin = %q, want login stamp", loaded.LastLogin)
	}
	// The stamp must have been written back.
	again := &Profile{}
	if store.Load().LastLogin != loaded.LastLogin {
		t.Errorf("LastLogin not persisted, got %+v", again)
	}
}

func TestStore_RecordMood(t *testing.T) {
	store, _ := newTestStore(t)

	p, err := store.Create("Ada")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordMood(p, "stressed", "exam week"); err != nil {
		t.Fatalf("RecordMood failed: %v", err)
	}

	loaded := store.Load()
	if len(loaded.MoodHistory) != 1 {
		t.Fatalf("MoodHistory = %v", loaded.MoodHistory)
	}
	entry := loaded.MoodHistory[0]
	if entry.Mood != "stressed" || entry.Note != "exam week" {
		t.Errorf("entry = %+v", entry)
	}
	if loaded.LastMood() != "stressed" {
		t.Errorf("LastMood = %q", loaded.LastMood())
	}
}

func TestStore_RecordSession(t *testing.T) {
	store, _ := newTestStore(t)

	p, err := store.Create("Ada")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RecordSession(p, "Go", 50); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if err := store.RecordSession(p, "Go", 25); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	loaded := store.Load()
	if len(loaded.Sessions) != 2 || loaded.TotalMinutes() != 75 {
		t.Errorf("sessions = %+v", loaded.Sessions)
	}
	if loaded.Topics["Go"] != 2 {
		t.Errorf("Topics = %v", loaded.Topics)
	}
}

func TestGreeting_TimeOfDayBuckets(t *testing.T) {
	p := NewProfile("Ada", testNow)
	p.LastLogin = testNow.Format(session.TimeLayout)

	tests := []struct {
		hour int
		want string
	}{
		{6, "morning"},
		{13, "afternoon"},
		{18, "evening"},
		{23, "night"},
		{2, "night"},
	}

	for _, tt := range tests {
		now := time.Date(2026, 4, 2, tt.hour, 0, 0, 0, time.UTC)
		got := Greeting(p, now)
		if !strings.Contains(strings.ToLower(got), tt.want) {
			t.Errorf("Greeting(hour=%d) = %q, want mention of %q", tt.hour, got, tt.want)
		}
		if !strings.Contains(got, "Ada") {
			t.Errorf("Greeting(hour=%d) = %q, missing name", tt.hour, got)
		}
	}
}

func TestGreeting_LongAbsence(t *testing.T) {
	p := NewProfile("Ada", testNow)
	p.LastLogin = testNow.Format(session.TimeLayout)

	got := Greeting(p, testNow.AddDate(0, 0, 10))
	if !strings.Contains(got, "It's been 10 days") {
		t.Errorf("Greeting after 10 days = %q", got)
	}

	got = Greeting(p, testNow.AddDate(0, 0, 4))
	if !strings.Contains(got, "Good to see you again") {
		t.Errorf("Greeting after 4 days = %q", got)
	}
}

func TestGreeting_LowMoodOverridesTimeOfDay(t *testing.T) {
	p := NewProfile("Ada", testNow)
	p.LastLogin = testNow.Format(session.TimeLayout)
	p.MoodHistory = append(p.MoodHistory, MoodEntry{Mood: "overwhelmed"})

	got := Greeting(p, testNow)
	if !strings.Contains(got, "feeling overwhelmed last time") {
		t.Errorf("Greeting = %q", got)
	}

	// But a long absence still wins.
	got = Greeting(p, testNow.AddDate(0, 0, 10))
	if !strings.Contains(got, "It's been 10 days") {
		t.Errorf("Greeting = %q", got)
	}
}

func TestGreeting_NoName(t *testing.T) {
	p := &Profile{}

	if got := Greeting(p, testNow); !strings.Contains(got, "friend") {
		t.Errorf("Greeting = %q, want fallback name", got)
	}
}
