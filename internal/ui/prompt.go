package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Bold(true)

// Prompter collects validated interactive input. Invalid entries are rejected
// at this boundary with a message and the prompt repeats, so callers can
// assume every returned value is in range.
type Prompter interface {
	// AskString reads a line, returning defaultValue on empty input.
	AskString(label, defaultValue string) string

	// AskInt reads an integer in [min, max], re-prompting until valid.
	// Empty input returns defaultValue.
	AskInt(label string, defaultValue, min, max int) int

	// AskChoice reads one of the given choices, re-prompting until valid.
	// Empty input returns defaultValue.
	AskChoice(label string, choices []string, defaultValue string) string

	// Confirm reads a yes/no answer, returning defaultValue on empty input.
	Confirm(label string, defaultValue bool) bool
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskString implements Prompter.
func (c *Console) AskString(label, defaultValue string) string {
	if defaultValue != "" {
		fmt.Fprintf(c.out, "%s (%s): ", promptStyle.Render(label), defaultValue)
	} else {
		fmt.Fprintf(c.out, "%s: ", promptStyle.Render(label))
	}

	line, err := c.readLine()
	if err != nil || line == "" {
		return defaultValue
	}
	return line
}

// AskInt implements Prompter.
func (c *Console) AskInt(label string, defaultValue, min, max int) int {
	for {
		fmt.Fprintf(c.out, "%s (%d): ", promptStyle.Render(label), defaultValue)

		line, err := c.readLine()
		if err != nil {
			// Exhausted input cannot be re-prompted; clamp so the in-range
			// contract still holds.
			if defaultValue < min {
				return min
			}
			if defaultValue > max {
				return max
			}
			return defaultValue
		}
		if line == "" {
			if defaultValue >= min && defaultValue <= max {
				return defaultValue
			}
			c.Error(fmt.Sprintf("Please enter a number between %d and %d!", min, max))
			continue
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			c.Error("Please enter a valid number!")
			continue
		}
		if n < min || n > max {
			c.Error(fmt.Sprintf("Please enter a number between %d and %d!", min, max))
			continue
		}
		return n
	}
}

// AskChoice implements Prompter.
func (c *Console) AskChoice(label string, choices []string, defaultValue string) string {
	for {
		fmt.Fprintf(c.out, "%s (%s) (%s): ", promptStyle.Render(label), strings.Join(choices, "/"), defaultValue)

		line, err := c.readLine()
		if err != nil {
			return defaultValue
		}
		if line == "" {
			return defaultValue
		}

		lower := strings.ToLower(line)
		for _, choice := range choices {
			if lower == strings.ToLower(choice) {
				return choice
			}
		}
		c.Error(fmt.Sprintf("Please choose one of: %s!", strings.Join(choices, ", ")))
	}
}

// Confirm implements Prompter.
func (c *Console) Confirm(label string, defaultValue bool) bool {
	hint := "y/N"
	if defaultValue {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(c.out, "%s [%s]: ", promptStyle.Render(label), hint)

		line, err := c.readLine()
		if err != nil {
			return defaultValue
		}
		switch strings.ToLower(line) {
		case "":
			return defaultValue
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			c.Error("Please answer y or n!")
		}
	}
}
