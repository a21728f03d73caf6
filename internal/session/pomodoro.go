package session

// IntervalKind identifies the type of a pomodoro interval.
type IntervalKind string

const (
	Work       IntervalKind = "work"
	ShortBreak IntervalKind = "short_break"
	LongBreak  IntervalKind = "long_break"
)

// Timer is the pomodoro interval state machine. It exists only for the
// duration of one session and is not persisted. CompletedIntervals counts
// every completed interval, work and break alike; the runner tracks completed
// work intervals separately.
type Timer struct {
	WorkMinutes        int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	LongBreakInterval  int
	CompletedIntervals int
}

// NewTimer creates a Timer. All inputs must be positive; the prompt layer
// validates them before construction.
func NewTimer(workMinutes, shortBreakMinutes, longBreakMinutes, longBreakInterval int) *Timer {
	return &Timer{
		WorkMinutes:       workMinutes,
		ShortBreakMinutes: shortBreakMinutes,
		LongBreakMinutes:  longBreakMinutes,
		LongBreakInterval: longBreakInterval,
	}
}

// NextIntervalType returns the kind and length in minutes of the next
// interval. It is a pure function of CompletedIntervals and the
// configuration: intervals alternate work/short-break, and every
// LongBreakInterval-th work interval is followed by a long break instead,
// which the cycle length 2*LongBreakInterval-1 encodes. With
// LongBreakInterval == 1 the cycle length is 1 and a long break follows
// every completed interval from the second interval on; that arithmetic is
// kept as-is.
func (t *Timer) NextIntervalType() (IntervalKind, int) {
	cycle := 2*t.LongBreakInterval - 1
	switch {
	case t.CompletedIntervals > 0 && t.CompletedIntervals%cycle == 0:
		return LongBreak, t.LongBreakMinutes
	case t.CompletedIntervals%2 == 0:
		return Work, t.WorkMinutes
	default:
		return ShortBreak, t.ShortBreakMinutes
	}
}

// CompleteCurrentInterval advances the state machine by one interval.
func (t *Timer) CompleteCurrentInterval() {
	t.CompletedIntervals++
}

// Progress summarizes the session so far.
type Progress struct {
	CompletedWorkIntervals int
	CompletedBreaks        int
	TotalWorkMinutes       int
}

// Progress derives work/break counts from the single interval counter.
func (t *Timer) Progress() Progress {
	workIntervals := (t.CompletedIntervals + 1) / 2
	return Progress{
		CompletedWorkIntervals: workIntervals,
		CompletedBreaks:        t.CompletedIntervals / 2,
		TotalWorkMinutes:       workIntervals * t.WorkMinutes,
	}
}
