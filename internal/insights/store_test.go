package insights

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	stderrors "studysync/internal/errors"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Go", "Go"},
		{"Physics - Chapter 2", "Physics___Chapter_2"},
		{"C++ & Rust!", "C_____Rust_"},
		{"abc123", "abc123"},
		{"Física", "Física"},
		{"日本語 N5", "日本語_N5"},
	}

	for _, tt := range tests {
		if got := Slug(tt.topic); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestStore_LoadMissingIsFresh(t *testing.T) {
	store := NewStore(t.TempDir())

	ti := store.Load("Biology")

	if ti.Topic != "Biology" {
		t.Errorf("Topic = %q, want Biology", ti.Topic)
	}
	if len(ti.Concepts) != 0 || len(ti.RelatedTopics) != 0 || ti.LastStudied != nil {
		t.Errorf("fresh document not empty: %+v", ti)
	}
}

func TestStore_LoadMalformedIsFresh(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "Biology.json"), []byte("{bad"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	ti := store.Load("Biology")
	if ti.Topic != "Biology" || len(ti.Concepts) != 0 {
		t.Errorf("malformed file not recovered as fresh: %+v", ti)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	concept := NewConcept("covalent bonds", "Chemistry", testNow)
	if err := store.AppendConcepts("Chemistry", []Concept{concept}, testNow); err != nil {
		t.Fatalf("AppendConcepts failed: %v", err)
	}

	got := store.Load("Chemistry")
	if len(got.Concepts) != 1 {
		t.Fatalf("len(Concepts) = %d, want 1", len(got.Concepts))
	}
	if got.Concepts[0] != concept {
		t.Errorf("concept = %+v, want %+v", got.Concepts[0], concept)
	}
	if got.LastStudied == nil || *got.LastStudied != "2026-03-10 14:00:00" {
		t.Errorf("LastStudied = %v", got.LastStudied)
	}
}

func TestStore_ReviewConcept_MatchesNaturalKey(t *testing.T) {
	store := NewStore(t.TempDir())

	first := NewConcept("entropy", "Physics", testNow)
	second := NewConcept("entropy", "Physics", testNow.Add(5*time.Minute))
	if err := store.AppendConcepts("Physics", []Concept{first, second}, testNow); err != nil {
		t.Fatalf("AppendConcepts failed: %v", err)
	}

	// Same content, different created_at: only the second must change.
	if err := store.ReviewConcept("Physics", "entropy", second.CreatedAt, true, testNow); err != nil {
		t.Fatalf("ReviewConcept failed: %v", err)
	}

	got := store.Load("Physics")
	if got.Concepts[0].RetentionLevel != 0 {
		t.Errorf("first concept reviewed, RetentionLevel = %d", got.Concepts[0].RetentionLevel)
	}
	if got.Concepts[1].RetentionLevel != 1 || got.Concepts[1].ReviewCount != 1 {
		t.Errorf("second concept = %+v", got.Concepts[1])
	}
}

func TestStore_ReviewConcept_NotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.ReviewConcept("Physics", "missing", "2026-01-01 00:00:00", true, testNow)
	if !stderrors.Is(err, stderrors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestStore_AddRelated_Symmetric(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.AddRelated("Algebra", "Geometry"); err != nil {
		t.Fatalf("AddRelated failed: %v", err)
	}
	// Repeating must not duplicate.
	if err := store.AddRelated("Algebra", "Geometry"); err != nil {
		t.Fatalf("AddRelated repeat failed: %v", err)
	}

	a := store.Load("Algebra")
	g := store.Load("Geometry")

	if len(a.RelatedTopics) != 1 || a.RelatedTopics[0] != "Geometry" {
		t.Errorf("Algebra related = %v", a.RelatedTopics)
	}
	if len(g.RelatedTopics) != 1 || g.RelatedTopics[0] != "Algebra" {
		t.Errorf("Geometry related = %v", g.RelatedTopics)
	}
}

func TestStore_Topics(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	for _, topic := range []string{"Zoology", "Algebra"} {
		ti := store.Load(topic)
		if err := store.Save(ti); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// A malformed stray file is skipped.
	if err := os.WriteFile(filepath.Join(dir, "stray.json"), []byte("nope"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	topics, err := store.Topics()
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("len(topics) = %d, want 2", len(topics))
	}
	if topics[0].Topic != "Algebra" || topics[1].Topic != "Zoology" {
		t.Errorf("topics order = %q, %q", topics[0].Topic, topics[1].Topic)
	}
}

func TestStore_TopicsMissingDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"))

	topics, err := store.Topics()
	if err != nil {
		t.Fatalf("Topics failed: %v", err)
	}
	if topics != nil {
		t.Errorf("topics = %v, want nil", topics)
	}
}
