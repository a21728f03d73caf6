package logbook

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"studysync/internal/errors"
	"studysync/internal/session"
	"studysync/internal/storage"
)

// Format selects an export rendering.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// Export renders a session record and writes it next to the logs as
// <timestamp>_export.<ext>. Exports are output-only; they are never re-read.
func (s *Store) Export(rec *session.Record, format Format) (string, error) {
	timestamp := s.clock.Now().Format(FilenameLayout)
	if start, err := rec.StartTime(); err == nil {
		timestamp = start.Format(FilenameLayout)
	}

	var content string
	switch format {
	case FormatMarkdown:
		content = formatMarkdown(rec)
	case FormatHTML:
		rendered, err := renderHTML(rec)
		if err != nil {
			return "", errors.NewInternal(err)
		}
		content = rendered
	case FormatText:
		content = formatText(rec)
	default:
		return "", errors.NewInvalidInput(fmt.Sprintf("unknown export format %q", format))
	}

	filename := fmt.Sprintf("%s_export.%s", timestamp, format)
	if err := storage.WriteFileAtomic(filepath.Join(s.dir, filename), []byte(content)); err != nil {
		return "", errors.NewIOFailure("export session", err)
	}
	return filename, nil
}

func formatText(rec *session.Record) string {
	lines := []string{
		"StudySync CLI - Session Summary",
		strings.Repeat("=", 30),
		fmt.Sprintf("Topic: %s", rec.Topic),
		fmt.Sprintf("Goal: %s", rec.Goal),
		fmt.Sprintf("Date: %s", rec.Date),
		fmt.Sprintf("Duration: %d minutes", rec.Duration),
		fmt.Sprintf("Average Focus Score: %.2f/5.0", rec.AvgFocus),
		"",
		"Focus Scores by Break:",
		strings.Repeat("-", 30),
	}

	if len(rec.FocusScores) > 0 {
		for i, score := range rec.FocusScores {
			lines = append(lines, fmt.Sprintf("Break %d: %s - Focus Score: %d/5", i+1, score.Timestamp, score.Score))
		}
	} else {
		lines = append(lines, "No focus scores recorded.")
	}

	return strings.Join(lines, "\n")
}

func formatMarkdown(rec *session.Record) string {
	lines := []string{
		"# Study Session Summary",
		"",
		fmt.Sprintf("**Topic:** %s", rec.Topic),
		fmt.Sprintf("**Goal:** %s", rec.Goal),
		fmt.Sprintf("**Date:** %s", rec.Date),
		fmt.Sprintf("**Duration:** %d minutes", rec.Duration),
		fmt.Sprintf("**Average Focus Score:** %.2f/5.0", rec.AvgFocus),
		"",
		"## Focus Scores",
		"",
		"| Break | Timestamp | Focus Score |",
		"| ------- | --------- | ----------- |",
	}

	if len(rec.FocusScores) > 0 {
		for i, score := range rec.FocusScores {
			lines = append(lines, fmt.Sprintf("| %d | %s | %d/5 |", i+1, score.Timestamp, score.Score))
		}
	} else {
		lines = append(lines, "*No focus scores recorded.*")
	}

	return strings.Join(lines, "\n")
}

// renderHTML converts the markdown rendering to a standalone HTML page.
func renderHTML(rec *session.Record) (string, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(formatMarkdown(rec)), &body); err != nil {
		return "", err
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>Study Session - %s</title>\n", rec.Topic)
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}
