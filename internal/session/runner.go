package session

import (
	"context"
	"fmt"
	"strconv"

	"studysync/internal/errors"
	"studysync/internal/ui"
)

// RecordSaver persists a completed session. Implemented by the logbook store.
type RecordSaver interface {
	Save(rec *Record) (string, error)
}

// ConceptCapturer collects key concepts during a break. Implemented by the
// insights capturer.
type ConceptCapturer interface {
	Capture(ctx context.Context, topic string) error
}

// Runner drives plain and pomodoro study sessions against an explicit console
// and clock, so runs are reproducible in tests without a real terminal.
type Runner struct {
	console  *ui.Console
	clock    ui.Clock
	saver    RecordSaver
	capturer ConceptCapturer

	// BreakSeconds is the fixed pause after the focus prompt in a plain
	// session break.
	BreakSeconds int
}

// NewRunner creates a Runner. capturer may be nil when concept capture is
// unavailable.
func NewRunner(console *ui.Console, clock ui.Clock, saver RecordSaver, capturer ConceptCapturer, breakSeconds int) *Runner {
	return &Runner{
		console:      console,
		clock:        clock,
		saver:        saver,
		capturer:     capturer,
		BreakSeconds: breakSeconds,
	}
}

// PlainInput contains parameters for a plain (non-pomodoro) session.
type PlainInput struct {
	Topic                string
	Goal                 string
	DurationMinutes      int
	BreakIntervalMinutes int
	CaptureConcepts      bool
}

// Interval is one planned study block.
type Interval struct {
	Seconds    int
	BreakAfter bool
}

// PlanIntervals splits a total duration into equal study intervals separated
// by breaks. A break follows every interval except the session's last unit:
// when the division leaves a remainder, a final short interval of the
// remainder runs with no trailing break.
func PlanIntervals(totalMinutes, breakIntervalMinutes int) []Interval {
	totalSeconds := totalMinutes * 60
	intervalSeconds := breakIntervalMinutes * 60
	numFull := totalSeconds / intervalSeconds
	remainder := totalSeconds % intervalSeconds

	plan := make([]Interval, 0, numFull+1)
	for i := 1; i <= numFull; i++ {
		plan = append(plan, Interval{
			Seconds:    intervalSeconds,
			BreakAfter: i < numFull || remainder > 0,
		})
	}
	if remainder > 0 {
		plan = append(plan, Interval{Seconds: remainder})
	}
	return plan
}

// RunPlain runs a plain session to completion and persists the record.
// Cancellation of ctx aborts the run; nothing is persisted for an
// interrupted session.
func (r *Runner) RunPlain(ctx context.Context, input PlainInput) (*Record, error) {
	startTime := r.clock.Now()

	r.console.Success(fmt.Sprintf("Starting study session: %s", input.Topic))
	r.console.Printf("Goal: %s\n", input.Goal)
	r.console.Printf("Total Duration: %d minutes\n", input.DurationMinutes)
	r.console.Printf("Break Interval: %d minutes\n\n", input.BreakIntervalMinutes)

	plan := PlanIntervals(input.DurationMinutes, input.BreakIntervalMinutes)
	var focusScores []FocusScore

	for i, interval := range plan {
		r.console.Title(fmt.Sprintf("Study Interval %d", i+1))
		if err := r.console.Countdown(ctx, "Studying: "+input.Topic, interval.Seconds); err != nil {
			return nil, err
		}

		if interval.BreakAfter {
			score, err := r.takeBreak(ctx, i+1, input.Topic, input.CaptureConcepts)
			if err != nil {
				return nil, err
			}
			focusScores = append(focusScores, score)
		}
	}

	endTime := r.clock.Now()
	actualSeconds := int(endTime.Sub(startTime).Seconds())

	rec := &Record{
		Topic:                 input.Topic,
		Goal:                  input.Goal,
		Date:                  startTime.Format(TimeLayout),
		Duration:              input.DurationMinutes,
		SessionType:           TypePlain,
		BreakInterval:         input.BreakIntervalMinutes,
		ActualDurationSeconds: actualSeconds,
		FocusScores:           focusScores,
		AvgFocus:              AverageFocus(focusScores),
	}

	r.showSummary("Session Complete!", rec, "Break")

	filename, err := r.saver.Save(rec)
	if err != nil {
		ioErr := errors.NewIOFailure("save session", err)
		r.console.Error(ioErr.Error())
		return rec, ioErr
	}
	r.console.Printf("\nSession saved: %s\n", filename)
	r.console.Rule()

	return rec, nil
}

// takeBreak runs one break: quote, focus prompt, optional concept capture,
// then the fixed break countdown.
func (r *Runner) takeBreak(ctx context.Context, intervalNum int, topic string, captureConcepts bool) (FocusScore, error) {
	r.console.Warn("\nBreak Time!")
	r.console.Quote(ui.MotivationalQuote())

	score := r.console.AskInt("How focused were you in the last session?", 0, 1, 5)
	fs := FocusScore{
		Timestamp: r.clock.Now().Format(TimeLayout),
		Score:     score,
		Interval:  intervalNum,
	}
	r.console.Printf("Focus score of %d/5 recorded.\n", score)

	if captureConcepts && r.capturer != nil {
		r.console.Title("\nLearning Insights")
		r.console.Println("Let's capture what you've learned in this study interval.")
		if err := r.capturer.Capture(ctx, topic); err != nil {
			return fs, err
		}
	}

	r.console.Println("Take a short break and prepare for the next interval...")
	if err := r.console.Countdown(ctx, "Break time remaining", r.BreakSeconds); err != nil {
		return fs, err
	}
	return fs, nil
}

// showSummary prints the end-of-session block and the per-score table.
func (r *Runner) showSummary(heading string, rec *Record, scoreLabel string) {
	r.console.Rule()
	r.console.Success(heading)
	r.console.Printf("Topic: %s\n", rec.Topic)
	r.console.Printf("Goal: %s\n", rec.Goal)
	r.console.Printf("Total Study Time: %s\n", ui.FormatDuration(rec.ActualDurationSeconds))
	if rec.SessionType == TypePomodoro {
		r.console.Printf("Completed Work Intervals: %d\n", rec.CompletedIntervals)
	}
	r.console.Printf("Average Focus Score: %s\n",
		ui.FocusScoreStyle(rec.AvgFocus).Render(fmt.Sprintf("%.2f/5.0", rec.AvgFocus)))

	if len(rec.FocusScores) > 0 {
		rows := make([][]string, 0, len(rec.FocusScores))
		for i, s := range rec.FocusScores {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				s.Timestamp,
				fmt.Sprintf("%d/5", s.Score),
			})
		}
		r.console.Printf("\nFocus Scores by %s:\n", scoreLabel)
		r.console.Table([]string{scoreLabel, "Timestamp", "Focus Score"}, rows)
	}
}
