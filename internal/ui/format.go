package ui

import (
	"fmt"
	"math/rand"
)

// FormatDuration renders a second count as HH:MM:SS, or MM:SS when under an
// hour.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	remainder := seconds % 3600
	minutes := remainder / 60
	secs := remainder % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

var quotes = []string{
	"The expert in anything was once a beginner. — Helen Hayes",
	"The beautiful thing about learning is that no one can take it away from you. — B.B. King",
	"Education is the passport to the future. — Malcolm X",
	"The more that you read, the more things you will know. — Dr. Seuss",
	"Learning is never done without errors and defeat. — Vladimir Lenin",
	"The mind is not a vessel to be filled, but a fire to be kindled. — Plutarch",
	"Study hard what interests you the most in the most undisciplined way possible. — Richard Feynman",
	"The cure for boredom is curiosity. There is no cure for curiosity. — Dorothy Parker",
	"Learning is not attained by chance, it must be sought with ardor and attended to with diligence. — Abigail Adams",
	"The more I read, the more I acquire, the more certain I am that I know nothing. — Voltaire",
}

// MotivationalQuote picks a quote from the static pool.
func MotivationalQuote() string {
	return quotes[rand.Intn(len(quotes))]
}
