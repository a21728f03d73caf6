package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"studysync/internal/logbook"
	"studysync/internal/stats"
	"studysync/internal/ui"
)

// newCLIApp creates the CLI application. Without a subcommand it runs the
// interactive menu; subcommands offer non-interactive views of the log.
func newCLIApp(in io.Reader, out io.Writer, clock ui.Clock) *cli.App {
	dirFlag := &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Value:   ".",
		Usage:   "Data directory (logs, insights, goals, profile)",
	}

	app := &cli.App{
		Name:    "studysync",
		Usage:   "Personal study session tracker",
		Version: Version,
		Flags:   []cli.Flag{dirFlag},
		Action: func(c *cli.Context) error {
			m := newMenu(c.String("dir"), in, out, clock)
			return m.Run(c.Context)
		},
		Commands: []*cli.Command{
			statsCmd(out, clock, dirFlag),
			exportCmd(out, clock, dirFlag),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// statsCmd prints the weekly overview without entering the menu.
func statsCmd(out io.Writer, clock ui.Clock, dirFlag *cli.StringFlag) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print the weekly study overview",
		Flags: []cli.Flag{dirFlag},
		Action: func(c *cli.Context) error {
			m := newMenu(c.String("dir"), nil, out, clock)
			m.weeklyStats()
			return nil
		},
	}
}

// exportCmd exports a logged session summary to a file.
func exportCmd(out io.Writer, clock ui.Clock, dirFlag *cli.StringFlag) *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a logged session summary (defaults to the most recent)",
		ArgsUsage: "[log filename]",
		Flags: []cli.Flag{
			dirFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "txt",
				Usage:   "Export format: txt|md|html",
			},
		},
		Action: func(c *cli.Context) error {
			m := newMenu(c.String("dir"), nil, out, clock)

			filename := c.Args().First()
			if filename == "" {
				files, err := m.logs.List()
				if err != nil {
					return err
				}
				if len(files) == 0 {
					return fmt.Errorf("no logged sessions to export")
				}
				filename = files[0]
			}

			rec, err := m.logs.Read(filename)
			if err != nil {
				return err
			}
			exported, err := m.logs.Export(rec, logbook.Format(c.String("format")))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Exported to %s\n", exported)
			return nil
		},
	}
}

// weekdayRows renders the weekly buckets in fixed weekday order.
func weekdayRows(days map[string]*stats.DayStats) [][]string {
	var rows [][]string
	for _, name := range stats.WeekdayOrder {
		d := days[name]
		if d == nil {
			continue
		}
		focus := "-"
		bar := ""
		if len(d.FocusScores) > 0 {
			focus = fmt.Sprintf("%.1f/5", d.AvgFocus)
			bar = ui.TrendBar(d.AvgFocus, 5)
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", d.Sessions),
			ui.FormatDuration(d.TotalMinutes * 60),
			focus,
			bar,
		})
	}
	return rows
}
