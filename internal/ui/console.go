package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	quoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("6"))
	barFillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Console renders styled output and reads interactive input. All components
// receive it (or the Prompter interface it satisfies) explicitly; there is no
// package-level console.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clock Clock
}

// NewConsole creates a Console over the given streams.
func NewConsole(in io.Reader, out io.Writer, clock Clock) *Console {
	return &Console{in: bufio.NewReader(in), out: out, clock: clock}
}

// Banner prints the application banner.
func (c *Console) Banner() {
	banner := strings.Join([]string{
		"╔═══════════════════════════════════════════╗",
		"║             STUDY SYNC                    ║",
		"╚═══════════════════════════════════════════╝",
	}, "\n")
	fmt.Fprintln(c.out, titleStyle.Render(banner))
}

// Panel prints body inside a rounded border with an optional title.
func (c *Console) Panel(title, body string) {
	if title != "" {
		body = titleStyle.Render(title) + "\n" + body
	}
	fmt.Fprintln(c.out, panelStyle.Render(body))
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf prints a formatted string.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Title prints a bold heading line.
func (c *Console) Title(s string) {
	fmt.Fprintln(c.out, titleStyle.Render(s))
}

// Success prints a green confirmation line.
func (c *Console) Success(s string) {
	fmt.Fprintln(c.out, successStyle.Render(s))
}

// Warn prints a yellow notice line.
func (c *Console) Warn(s string) {
	fmt.Fprintln(c.out, warnStyle.Render(s))
}

// Error prints a red error line.
func (c *Console) Error(s string) {
	fmt.Fprintln(c.out, errorStyle.Render(s))
}

// Dim prints a faint line.
func (c *Console) Dim(s string) {
	fmt.Fprintln(c.out, dimStyle.Render(s))
}

// Quote prints a motivational quote in a panel.
func (c *Console) Quote(q string) {
	c.Panel("", quoteStyle.Render(fmt.Sprintf("%q", q)))
}

// Rule prints a horizontal separator.
func (c *Console) Rule() {
	fmt.Fprintln(c.out, dimStyle.Render(strings.Repeat("=", 50)))
}

// Table renders rows with a header using simple column padding.
func (c *Console) Table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(c.out, style.Render(strings.Join(parts, "  ")))
	}

	line(header, titleStyle)
	for _, row := range rows {
		line(row, lipgloss.NewStyle())
	}
}

// FocusScoreStyle maps an average focus score to a display color.
func FocusScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 4.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case score >= 3.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case score >= 2.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case score >= 1.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
}

// TrendBar renders a horizontal bar for a 0..max value, chart-width 20.
func TrendBar(value, max float64) string {
	const width = 20
	if value <= 0 || max <= 0 {
		return ""
	}
	n := int(value / max * width)
	if n > width {
		n = width
	}
	var style lipgloss.Style
	switch {
	case value >= 4:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case value >= 3:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}
	return style.Render(strings.Repeat("█", n))
}
