package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"studysync/internal/buddy"
	"studysync/internal/config"
	"studysync/internal/goals"
	"studysync/internal/insights"
	"studysync/internal/logbook"
	"studysync/internal/session"
	"studysync/internal/stats"
	"studysync/internal/ui"
)

// menu is the interactive shell. Everything it touches is injected so tests
// can drive it with scripted input and a fake clock.
type menu struct {
	console   *ui.Console
	clock     ui.Clock
	cfg       *config.Config
	logs      *logbook.Store
	insights  *insights.Store
	assistant *insights.Assistant
	goals     *goals.Store
	buddy     *buddy.Store
	runner    *session.Runner
}

func newMenu(baseDir string, in io.Reader, out io.Writer, clock ui.Clock) *menu {
	if in == nil {
		in = strings.NewReader("")
	}
	console := ui.NewConsole(in, out, clock)

	cfg, err := config.Load(baseDir)
	if err != nil {
		console.Warn(fmt.Sprintf("Could not read config, using defaults: %v", err))
		cfg = config.DefaultConfig()
	}

	logs := logbook.NewStore(config.LogsDir(baseDir), clock)
	insightStore := insights.NewStore(config.InsightsDir(baseDir))
	assistant := insights.NewAssistant(insightStore, console, clock)

	return &menu{
		console:   console,
		clock:     clock,
		cfg:       cfg,
		logs:      logs,
		insights:  insightStore,
		assistant: assistant,
		goals:     goals.NewStore(config.GoalsFile(baseDir)),
		buddy:     buddy.NewStore(config.ProfileFile(baseDir), clock),
		runner:    session.NewRunner(console, clock, logs, assistant, cfg.BreakSeconds),
	}
}

// Run loops the main menu until the user exits or ctx is cancelled.
func (m *menu) Run(ctx context.Context) error {
	m.console.Banner()
	m.console.Quote(ui.MotivationalQuote())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.dashboard()
		m.console.Panel("Main Menu", strings.Join([]string{
			"[1] Start Study Session",
			"[2] Start Pomodoro Session",
			"[3] View Past Sessions",
			"[4] Weekly Stats",
			"[5] Learning Insights",
			"[6] Knowledge Graph",
			"[7] Study Goals",
			"[8] Study Buddy",
			"[9] Exit",
		}, "\n"))

		switch m.console.AskInt("Choose an option", 9, 1, 9) {
		case 1:
			m.startPlain(ctx)
		case 2:
			m.startPomodoro(ctx)
		case 3:
			m.pastSessions()
		case 4:
			m.weeklyStats()
		case 5:
			m.learningInsights()
		case 6:
			m.knowledgeGraph()
		case 7:
			m.goalsMenu()
		case 8:
			m.buddyMenu()
		case 9:
			m.console.Success("Goodbye! Keep up the good work!")
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// dashboard prints lifetime totals, achievements, and goal progress above the
// menu.
func (m *menu) dashboard() {
	records, err := m.logs.ReadAll()
	if err != nil {
		m.console.Error(fmt.Sprintf("Could not read session logs: %v", err))
		return
	}
	if len(records) == 0 {
		return
	}

	totals := stats.Compute(records, m.clock.Now())

	lines := []string{
		fmt.Sprintf("Sessions: %d    Study time: %s    Topics: %d",
			totals.Sessions, ui.FormatDuration(totals.TotalMinutes*60), totals.TopicCount),
		fmt.Sprintf("Current streak: %d days    Last session: %s",
			totals.Streak, totals.LastSessionDate),
	}
	for _, a := range stats.Achievements(totals) {
		lines = append(lines, "* "+a)
	}
	for _, g := range m.goals.Load().Goals {
		lines = append(lines, fmt.Sprintf("Goal: %s, %s by %s - %d%%",
			g.DisplayType(), g.DisplayTarget(), g.Deadline, g.Progress(totals)))
	}
	m.console.Panel("Dashboard", strings.Join(lines, "\n"))
}

func (m *menu) startPlain(ctx context.Context) {
	topic := m.console.AskString("What are you studying today?", "")
	goal := m.console.AskString("What's your goal for this session?", "")
	duration := m.console.AskInt("Total session duration (minutes)", m.cfg.SessionMinutes, 1, 1440)
	breakDefault := min(m.cfg.BreakIntervalMinutes, duration)
	interval := m.console.AskInt("Minutes between breaks", breakDefault, 1, duration)
	capture := m.console.Confirm("Capture key concepts during breaks?", true)

	rec, err := m.runner.RunPlain(ctx, session.PlainInput{
		Topic:                topic,
		Goal:                 goal,
		DurationMinutes:      duration,
		BreakIntervalMinutes: interval,
		CaptureConcepts:      capture,
	})
	m.afterSession(ctx, rec, err)
}

func (m *menu) startPomodoro(ctx context.Context) {
	topic := m.console.AskString("What are you studying today?", "")
	goal := m.console.AskString("What's your goal for this session?", "")
	work := m.console.AskInt("Work interval (minutes)", m.cfg.WorkMinutes, 1, 180)
	shortBreak := m.console.AskInt("Short break (minutes)", m.cfg.ShortBreakMinutes, 1, 60)
	longBreak := m.console.AskInt("Long break (minutes)", m.cfg.LongBreakMinutes, 1, 120)
	longEvery := m.console.AskInt("Work intervals before a long break", m.cfg.LongBreakInterval, 1, 12)
	target := m.console.AskInt("Work intervals to complete", m.cfg.TargetWorkIntervals, 1, 24)
	capture := m.console.Confirm("Capture key concepts during long breaks?", true)

	rec, err := m.runner.RunPomodoro(ctx, session.PomodoroInput{
		Topic:               topic,
		Goal:                goal,
		WorkMinutes:         work,
		ShortBreakMinutes:   shortBreak,
		LongBreakMinutes:    longBreak,
		LongBreakInterval:   longEvery,
		TargetWorkIntervals: target,
		CaptureConcepts:     capture,
	})
	m.afterSession(ctx, rec, err)
}

// afterSession notes a saved run on the buddy profile and offers an export.
// Interrupted and unsaved runs skip both; the profile only ever claims
// sessions the log actually holds.
func (m *menu) afterSession(ctx context.Context, rec *session.Record, err error) {
	if err != nil {
		if ctx.Err() != nil {
			m.console.Warn("Session interrupted, nothing was saved.")
			return
		}
		m.console.Error(err.Error())
		return
	}

	if p := m.buddy.Load(); p != nil {
		if berr := m.buddy.RecordSession(p, rec.Topic, rec.Duration); berr != nil {
			m.console.Warn(berr.Error())
		}
	}

	if m.console.Confirm("Export this session summary?", false) {
		m.exportRecord(rec)
	}
}

func (m *menu) exportRecord(rec *session.Record) {
	format := m.console.AskChoice("Export format", []string{"txt", "md", "html"}, "txt")
	filename, err := m.logs.Export(rec, logbook.Format(format))
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	m.console.Success(fmt.Sprintf("Exported to %s/%s", m.logs.Dir(), filename))
}

func (m *menu) pastSessions() {
	files, err := m.logs.List()
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	if len(files) == 0 {
		m.console.Warn("No past sessions yet. Start studying!")
		return
	}

	const maxShown = 10
	if len(files) > maxShown {
		files = files[:maxShown]
	}

	rows := make([][]string, 0, len(files))
	recs := make([]*session.Record, len(files))
	for i, f := range files {
		rec, rerr := m.logs.Read(f)
		if rerr != nil {
			continue
		}
		recs[i] = rec
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			rec.Date,
			rec.Topic,
			fmt.Sprintf("%d min", rec.Duration),
			fmt.Sprintf("%.1f/5", rec.AvgFocus),
		})
	}
	m.console.Title("Past Sessions")
	m.console.Table([]string{"#", "Date", "Topic", "Duration", "Focus"}, rows)

	choice := m.console.AskInt("View session number (0 to go back)", 0, 0, len(files))
	if choice == 0 || recs[choice-1] == nil {
		return
	}
	rec := recs[choice-1]

	m.console.Panel(rec.Topic, strings.Join([]string{
		"Goal: " + rec.Goal,
		"Date: " + rec.Date,
		fmt.Sprintf("Duration: %d minutes (%s actual)", rec.Duration, ui.FormatDuration(rec.ActualDurationSeconds)),
		"Type: " + rec.SessionType,
		fmt.Sprintf("Average focus: %.2f/5.0", rec.AvgFocus),
	}, "\n"))

	if m.console.Confirm("Export this session summary?", false) {
		m.exportRecord(rec)
	}
}

func (m *menu) weeklyStats() {
	records, err := m.logs.ReadAll()
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	if len(records) == 0 {
		m.console.Warn("No sessions logged yet.")
		return
	}

	now := m.clock.Now()
	m.console.Title("Weekly Overview")
	m.console.Table(
		[]string{"Day", "Sessions", "Study Time", "Avg Focus", ""},
		weekdayRows(stats.Weekly(records, now)),
	)

	totals := stats.Compute(records, now)
	m.console.Printf("\nAll time: %d sessions, %s across %d topics. Streak: %d days.\n",
		totals.Sessions, ui.FormatDuration(totals.TotalMinutes*60), totals.TopicCount, totals.Streak)
	for _, a := range stats.Achievements(totals) {
		m.console.Success(a)
	}
}

func (m *menu) learningInsights() {
	topics, err := m.insights.Topics()
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	if len(topics) == 0 {
		m.console.Warn("No insights captured yet. Enable concept capture during a session.")
		return
	}

	today := m.clock.Now().Format(session.DateLayout)
	rows := make([][]string, 0, len(topics))
	for _, ti := range topics {
		lastStudied := "-"
		if ti.LastStudied != nil {
			lastStudied = *ti.LastStudied
		}
		rows = append(rows, []string{
			ti.Topic,
			fmt.Sprintf("%d", len(ti.Concepts)),
			fmt.Sprintf("%d", len(insights.Due(ti, today))),
			fmt.Sprintf("%.1f%%", insights.LearningEffectiveness(ti)),
			lastStudied,
		})
	}
	m.console.Title("Learning Insights")
	m.console.Table([]string{"Topic", "Concepts", "Due", "Retention", "Last Studied"}, rows)

	topic := m.console.AskString("Review concepts for topic (empty to go back)", "")
	if topic == "" {
		return
	}
	reviewed, err := m.assistant.ReviewDue(topic)
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	if !reviewed {
		m.console.Dim("Nothing due for review today.")
	}
}

func (m *menu) knowledgeGraph() {
	topics, err := m.insights.Topics()
	if err != nil {
		m.console.Error(err.Error())
		return
	}
	if len(topics) == 0 {
		m.console.Warn("No topics to connect yet.")
		return
	}

	var lines []string
	for _, ti := range topics {
		related := "(no connections)"
		if len(ti.RelatedTopics) > 0 {
			related = strings.Join(ti.RelatedTopics, ", ")
		}
		lines = append(lines, fmt.Sprintf("%s -> %s", ti.Topic, related))
	}
	m.console.Panel("Knowledge Graph", strings.Join(lines, "\n"))

	if !m.console.Confirm("Connect two topics?", false) {
		return
	}
	first := m.console.AskString("First topic", "")
	second := m.console.AskString("Second topic", "")
	if first == "" || second == "" || first == second {
		m.console.Error("Two different topic names are required.")
		return
	}
	if err := m.insights.AddRelated(first, second); err != nil {
		m.console.Error(err.Error())
		return
	}
	m.console.Success(fmt.Sprintf("Connected %s and %s.", first, second))
}

func (m *menu) goalsMenu() {
	doc := m.goals.Load()
	records, _ := m.logs.ReadAll()
	totals := stats.Compute(records, m.clock.Now())

	if len(doc.Goals) == 0 {
		m.console.Warn("No study goals set.")
	} else {
		rows := make([][]string, 0, len(doc.Goals))
		for i, g := range doc.Goals {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				g.DisplayType(),
				g.DisplayTarget(),
				g.Deadline,
				fmt.Sprintf("%d%%", g.Progress(totals)),
			})
		}
		m.console.Title("Study Goals")
		m.console.Table([]string{"#", "Goal", "Target", "Deadline", "Progress"}, rows)
	}

	switch m.console.AskInt("[1] Add goal  [2] Remove goal  [3] Clear all  [4] Back", 4, 1, 4) {
	case 1:
		m.addGoal()
	case 2:
		if len(doc.Goals) == 0 {
			return
		}
		idx := m.console.AskInt("Remove goal number", 1, 1, len(doc.Goals))
		if err := m.goals.Remove(idx - 1); err != nil {
			m.console.Error(err.Error())
			return
		}
		m.console.Success("Goal removed.")
	case 3:
		if m.console.Confirm("Remove all goals?", false) {
			if err := m.goals.Clear(); err != nil {
				m.console.Error(err.Error())
				return
			}
			m.console.Success("All goals cleared.")
		}
	}
}

func (m *menu) addGoal() {
	goalType := m.console.AskChoice("Goal type",
		[]string{goals.TypeMinutes, goals.TypeSessions, goals.TypeTopics}, goals.TypeMinutes)
	target := m.console.AskInt("Target", 100, 1, 100000)

	defaultDeadline := m.clock.Now().AddDate(0, 0, 30).Format(session.DateLayout)
	deadline := m.console.AskString("Deadline (YYYY-MM-DD)", defaultDeadline)
	if _, err := time.Parse(session.DateLayout, deadline); err != nil {
		m.console.Error("Deadline must look like 2026-12-31, using the default.")
		deadline = defaultDeadline
	}

	if err := m.goals.Add(goals.Goal{Type: goalType, Target: target, Deadline: deadline}); err != nil {
		m.console.Error(err.Error())
		return
	}
	m.console.Success("Goal added.")
}

func (m *menu) buddyMenu() {
	profile := m.buddy.Load()
	if profile == nil {
		m.console.Println("I don't think we've met before! What's your name?")
		name := m.console.AskString("Your name", "friend")
		created, err := m.buddy.Create(name)
		if err != nil {
			m.console.Error(err.Error())
			return
		}
		profile = created
		m.console.Success(fmt.Sprintf("Nice to meet you, %s! I've created your profile.", name))
	}

	m.console.Panel("Study Buddy", buddy.Greeting(profile, m.clock.Now()))
	if len(profile.Sessions) > 0 {
		m.console.Printf("Together we've done %d sessions over %s across %d topics.\n",
			len(profile.Sessions), ui.FormatDuration(profile.TotalMinutes()*60), len(profile.Topics))
	}

	switch m.console.AskInt("[1] Mood check-in  [2] Back", 2, 1, 2) {
	case 1:
		mood := m.console.AskChoice("How are you feeling?", buddy.Moods, "calm")
		note := m.console.AskString("Anything on your mind?", "")
		if err := m.buddy.RecordMood(profile, mood, note); err != nil {
			m.console.Error(err.Error())
			return
		}
		switch mood {
		case "stressed", "overwhelmed", "tired":
			m.console.Warn("Thanks for sharing. Be kind to yourself, short sessions count too.")
		default:
			m.console.Success("Glad to hear it! Let's put that energy to work.")
		}
	}
}
