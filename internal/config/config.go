package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration. Values are the defaults offered at
// the interactive prompts; every prompt still accepts an override.
type Config struct {
	// SessionMinutes is the default total duration for a plain study session.
	SessionMinutes int `json:"session_minutes"`

	// BreakIntervalMinutes is the default interval between breaks in a plain
	// session.
	BreakIntervalMinutes int `json:"break_interval_minutes"`

	// BreakSeconds is the length of the fixed pause after a focus prompt in a
	// plain session.
	BreakSeconds int `json:"break_seconds"`

	// WorkMinutes is the default pomodoro work interval.
	WorkMinutes int `json:"work_minutes"`

	// ShortBreakMinutes is the default pomodoro short break.
	ShortBreakMinutes int `json:"short_break_minutes"`

	// LongBreakMinutes is the default pomodoro long break.
	LongBreakMinutes int `json:"long_break_minutes"`

	// LongBreakInterval is the default number of work intervals before a long
	// break.
	LongBreakInterval int `json:"long_break_interval"`

	// TargetWorkIntervals is the default number of work intervals a pomodoro
	// session runs for.
	TargetWorkIntervals int `json:"target_work_intervals"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SessionMinutes:       60,
		BreakIntervalMinutes: 25,
		BreakSeconds:         30,
		WorkMinutes:          25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		LongBreakInterval:    4,
		TargetWorkIntervals:  8,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of the real
// data directory.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// when non-zero.
func Merge(base, overlay *Config) *Config {
	result := *overlay

	if result.SessionMinutes == 0 {
		result.SessionMinutes = base.SessionMinutes
	}
	if result.BreakIntervalMinutes == 0 {
		result.BreakIntervalMinutes = base.BreakIntervalMinutes
	}
	if result.BreakSeconds == 0 {
		result.BreakSeconds = base.BreakSeconds
	}
	if result.WorkMinutes == 0 {
		result.WorkMinutes = base.WorkMinutes
	}
	if result.ShortBreakMinutes == 0 {
		result.ShortBreakMinutes = base.ShortBreakMinutes
	}
	if result.LongBreakMinutes == 0 {
		result.LongBreakMinutes = base.LongBreakMinutes
	}
	if result.LongBreakInterval == 0 {
		result.LongBreakInterval = base.LongBreakInterval
	}
	if result.TargetWorkIntervals == 0 {
		result.TargetWorkIntervals = base.TargetWorkIntervals
	}

	return &result
}

// LogsDir returns the session-log directory under baseDir.
func LogsDir(baseDir string) string {
	return filepath.Join(baseDir, "logs")
}

// InsightsDir returns the per-topic concept directory under baseDir.
func InsightsDir(baseDir string) string {
	return filepath.Join(baseDir, "insights")
}

// GoalsFile returns the path of the goals document under baseDir.
func GoalsFile(baseDir string) string {
	return filepath.Join(baseDir, "goals.json")
}

// ProfileFile returns the path of the buddy profile document under baseDir.
func ProfileFile(baseDir string) string {
	return filepath.Join(baseDir, "buddy_profile.json")
}
