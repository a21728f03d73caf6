package ui

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const barWidth = 30

// Countdown runs a timed wait of totalSeconds one-second ticks, redrawing a
// progress bar after each tick. Cancellation of ctx aborts immediately and
// the error propagates to the caller, which discards any in-progress session
// state.
func (c *Console) Countdown(ctx context.Context, label string, totalSeconds int) error {
	for elapsed := 1; elapsed <= totalSeconds; elapsed++ {
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		default:
		}

		c.clock.Sleep(time.Second)

		remaining := totalSeconds - elapsed
		fmt.Fprintf(c.out, "\r%s %s %3.0f%%  %s remaining ",
			promptStyle.Render(label),
			renderBar(elapsed, totalSeconds),
			float64(elapsed)/float64(totalSeconds)*100,
			FormatDuration(remaining),
		)
	}
	fmt.Fprintln(c.out)
	return nil
}

func renderBar(done, total int) string {
	filled := done * barWidth / total
	if filled > barWidth {
		filled = barWidth
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", barWidth-filled))
}
