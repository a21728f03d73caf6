package session

import (
	"context"
	"fmt"

	"studysync/internal/errors"
	"studysync/internal/ui"
)

// PomodoroInput contains parameters for a pomodoro session.
type PomodoroInput struct {
	Topic             string
	Goal              string
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	LongBreakInterval int

	// TargetWorkIntervals is the number of work intervals to complete. Only
	// work intervals count toward it; the timer's own counter advances on
	// every interval.
	TargetWorkIntervals int

	// CaptureConcepts enables concept capture during long breaks.
	CaptureConcepts bool
}

// RunPomodoro runs a pomodoro session until the target number of work
// intervals has been completed, then persists the record. Cancellation
// aborts without persisting.
func (r *Runner) RunPomodoro(ctx context.Context, input PomodoroInput) (*Record, error) {
	timer := NewTimer(input.WorkMinutes, input.ShortBreakMinutes, input.LongBreakMinutes, input.LongBreakInterval)

	startTime := r.clock.Now()
	var focusScores []FocusScore
	completedWorkIntervals := 0

	r.console.Success(fmt.Sprintf("Starting Pomodoro session: %s", input.Topic))
	r.console.Printf("Goal: %s\n", input.Goal)
	r.console.Printf("Work interval: %d minutes\n", input.WorkMinutes)
	r.console.Printf("Short break: %d minutes\n", input.ShortBreakMinutes)
	r.console.Printf("Long break: %d minutes\n", input.LongBreakMinutes)
	r.console.Printf("Total work intervals: %d\n\n", input.TargetWorkIntervals)

	for completedWorkIntervals < input.TargetWorkIntervals {
		kind, minutes := timer.NextIntervalType()

		var label string
		switch kind {
		case Work:
			completedWorkIntervals++
			r.console.Title(fmt.Sprintf("\nWork Interval %d/%d", completedWorkIntervals, input.TargetWorkIntervals))
			label = "Working: " + input.Topic
		case ShortBreak:
			r.console.Warn("\nShort Break!")
			label = "Break: " + input.Topic
		case LongBreak:
			r.console.Success("\nLong Break!")
			r.console.Quote(ui.MotivationalQuote())
			label = "Break: " + input.Topic
		}

		if err := r.console.Countdown(ctx, label, minutes*60); err != nil {
			return nil, err
		}

		timer.CompleteCurrentInterval()

		if kind == Work {
			score := r.console.AskInt("How focused were you in this work interval?", 0, 1, 5)
			focusScores = append(focusScores, FocusScore{
				Timestamp: r.clock.Now().Format(TimeLayout),
				Score:     score,
				Interval:  completedWorkIntervals,
			})
			r.console.Printf("Focus score of %d/5 recorded.\n", score)
		}

		if kind == LongBreak && input.CaptureConcepts && r.capturer != nil {
			r.console.Title("\nLearning Insights")
			r.console.Println("Let's capture what you've learned so far.")
			if err := r.capturer.Capture(ctx, input.Topic); err != nil {
				return nil, err
			}
		}
	}

	endTime := r.clock.Now()
	actualSeconds := int(endTime.Sub(startTime).Seconds())

	rec := &Record{
		Topic:                 input.Topic,
		Goal:                  input.Goal,
		Date:                  startTime.Format(TimeLayout),
		Duration:              actualSeconds / 60,
		SessionType:           TypePomodoro,
		WorkInterval:          input.WorkMinutes,
		ShortBreak:            input.ShortBreakMinutes,
		LongBreak:             input.LongBreakMinutes,
		CompletedIntervals:    completedWorkIntervals,
		ActualDurationSeconds: actualSeconds,
		FocusScores:           focusScores,
		AvgFocus:              AverageFocus(focusScores),
	}

	r.showSummary("Pomodoro Session Complete!", rec, "Interval")

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
