package buddy

import (
	"fmt"
	"time"

	"studysync/internal/session"
)

func timeGreetings(name string, hour int) []string {
	switch {
	case hour >= 5 && hour < 12:
		return []string{
			fmt.Sprintf("Good morning, %s!", name),
			fmt.Sprintf("Rise and shine, %s! Ready for a productive day?", name),
			fmt.Sprintf("Morning, %s! The early bird catches the knowledge!", name),
		}
	case hour >= 12 && hour < 17:
		return []string{
			fmt.Sprintf("Good afternoon, %s!", name),
			fmt.Sprintf("Hello, %s! Hope your day is going well!", name),
			fmt.Sprintf("Afternoon greetings, %s! Ready for some studying?", name),
		}
	case hour >= 17 && hour < 21:
		return []string{
			fmt.Sprintf("Good evening, %s!", name),
			fmt.Sprintf("Evening, %s! Still got some energy for studying?", name),
			fmt.Sprintf("Hi %s! Evening is a great time for focused work!", name),
		}
	default:
		return []string{
			fmt.Sprintf("Hello night owl %s! Late night study session?", name),
			fmt.Sprintf("Working late, %s? I'm here to keep you company!", name),
			fmt.Sprintf("Night time is quiet time - perfect for deep focus, %s!", name),
		}
	}
}

// Greeting picks the buddy's opening line. Long absences take priority over
// the last logged mood, which takes priority over a time-of-day line.
func Greeting(p *Profile, now time.Time) string {
	name := p.Name
	if name == "" {
		name = "friend"
	}

	if p.LastLogin != "" {
		if lastLogin, err := time.Parse(session.TimeLayout, p.LastLogin); err == nil {
			days := int(now.Sub(lastLogin).Hours() / 24)
			if days > 7 {
				return fmt.Sprintf("Welcome back, %s! It's been %d days. I've missed our study sessions!", name, days)
			}
			if days > 2 {
				return fmt.Sprintf("Good to see you again, %s! Ready to pick up where we left off?", name)
			}
		}
	}

	switch p.LastMood() {
	case "stressed", "overwhelmed", "tired":
		return fmt.Sprintf("Welcome back, %s. I remember you were feeling %s last time. How are you doing today?", name, p.LastMood())
	}

	pool := timeGreetings(name, now.Hour())
	return pool[now.Minute()%len(pool)]
}
