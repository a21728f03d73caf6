package logbook

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	stderrors "studysync/internal/errors"
	"studysync/internal/session"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time        { return f.now }
func (f *fakeClock) Sleep(d time.Duration) { f.now = f.now.Add(d) }

func testRecord() *session.Record {
	return &session.Record{
		Topic:                 "Physics - Chapter 2",
		Goal:                  "Finish problem set",
		Date:                  "2026-01-05 09:30:00",
		Duration:              60,
		SessionType:           session.TypePlain,
		BreakInterval:         25,
		ActualDurationSeconds: 3660,
		FocusScores: []session.FocusScore{
			{Timestamp: "2026-01-05 09:55:00", Score: 4, Interval: 1},
			{Timestamp: "2026-01-05 10:20:30", Score: 5, Interval: 2},
		},
		AvgFocus: 4.5,
	}
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 5, 10, 31, 0, 0, time.UTC)}
	return NewStore(t.TempDir(), clock), clock
}

func TestStore_SaveReadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	want := testRecord()
	filename, err := store.Save(want)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if filename != "2026-01-05_1031.json" {
		t.Errorf("filename = %q, want 2026-01-05_1031.json", filename)
	}

	got, err := store.Read(filename)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestStore_ListDescending(t *testing.T) {
	store, clock := newTestStore(t)

	times := []time.Time{
		time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 4, 22, 15, 0, 0, time.UTC),
	}
	for _, ts := range times {
		clock.now = ts
		if _, err := store.Save(testRecord()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{
		"2026-01-05_0900.json",
		"2026-01-04_2215.json",
		"2026-01-03_0800.json",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	store := NewStore(filepath.Join(t.TempDir(), "absent"), clock)

	names, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if names != nil {
		t.Errorf("List = %v, want nil", names)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Read("2026-01-01_0000.json")
	if !stderrors.Is(err, stderrors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestStore_ReadAllSkipsMalformed(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Save(testRecord()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(store.Dir(), "2026-01-06_0000.json"), []byte("{bad"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	records, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}
