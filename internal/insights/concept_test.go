package insights

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func TestNewConcept_InitialSchedule(t *testing.T) {
	c := NewConcept("pointers vs values", "Go", testNow)

	if c.CreatedAt != "2026-03-10 14:00:00" {
		t.Errorf("CreatedAt = %q", c.CreatedAt)
	}
	if c.NextReview == nil || *c.NextReview != "2026-03-11" {
		t.Errorf("NextReview = %v, want 2026-03-11", c.NextReview)
	}
	if c.RetentionLevel != 0 || c.ReviewCount != 0 {
		t.Errorf("RetentionLevel/ReviewCount = %d/%d, want 0/0", c.RetentionLevel, c.ReviewCount)
	}
	if c.LastReviewed != nil {
		t.Errorf("LastReviewed = %v, want nil", c.LastReviewed)
	}
}

func TestDue(t *testing.T) {
	yesterday := "2026-03-09"
	today := "2026-03-10"
	tomorrow := "2026-03-11"

	ti := &TopicInsights{
		Topic: "Go",
		Concepts: []Concept{
			{Content: "a", NextReview: &yesterday},
			{Content: "b", NextReview: &today},
			{Content: "c", NextReview: &tomorrow},
			{Content: "d"}, // no schedule
		},
	}

	due := Due(ti, today)
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].Content != "a" || due[1].Content != "b" {
		t.Errorf("due = %v", due)
	}
}

func TestReview_RememberedClimbsLadder(t *testing.T) {
	c := NewConcept("goroutines", "Go", testNow)

	wantNext := []string{
		"2026-03-13", // level 1 -> 3 days
		"2026-03-17", // level 2 -> 7 days
		"2026-03-24", // level 3 -> 14 days
		"2026-04-09", // level 4 -> 30 days
		"2026-06-08", // level 5 -> 90 days
		"2026-06-08", // stays at 5 -> 90 days
	}

	for i, want := range wantNext {
		Review(&c, true, testNow)
		if *c.NextReview != want {
			t.Errorf("review %d: NextReview = %q, want %q", i+1, *c.NextReview, want)
		}
	}

	if c.RetentionLevel != 5 {
		t.Errorf("RetentionLevel = %d, want 5 (never above)", c.RetentionLevel)
	}
	if c.ReviewCount != 6 {
		t.Errorf("ReviewCount = %d, want 6", c.ReviewCount)
	}
	if c.LastReviewed == nil || *c.LastReviewed != "2026-03-10 14:00:00" {
		t.Errorf("LastReviewed = %v", c.LastReviewed)
	}
}

func TestReview_ForgottenClampsAtZero(t *testing.T) {
	c := NewConcept("channels", "Go", testNow)
	c.RetentionLevel = 2

	for i := 0; i < 4; i++ {
		Review(&c, false, testNow)
	}

	if c.RetentionLevel != 0 {
		t.Errorf("RetentionLevel = %d, want 0 (never below)", c.RetentionLevel)
	}
	if *c.NextReview != "2026-03-11" {
		t.Errorf("NextReview = %q, want next-day interval", *c.NextReview)
	}
	if c.ReviewCount != 4 {
		t.Errorf("ReviewCount = %d, want 4", c.ReviewCount)
	}
}

func TestLearningEffectiveness(t *testing.T) {
	tests := []struct {
		levels []int
		want   float64
	}{
		{nil, 0},
		{[]int{5, 5, 5}, 100.0},
		{[]int{0, 0}, 0},
		{[]int{2, 3}, 50.0},
		{[]int{1, 0, 0}, 6.67},
	}

	for _, tt := range tests {
		ti := &TopicInsights{Topic: "x"}
		for _, lvl := range tt.levels {
			ti.Concepts = append(ti.Concepts, Concept{RetentionLevel: lvl})
		}
		if got := LearningEffectiveness(ti); got != tt.want {
			t.Errorf("LearningEffectiveness(%v) = %v, want %v", tt.levels, got, tt.want)
		}
	}
}
