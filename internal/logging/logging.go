// Package logging builds leveled loggers and manages per-session JSONL log files.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is printed in front of console log lines.
const DefaultPrefix = "todomatic"

// Options holds logger configuration.
type Options struct {
	Level      log.Level
	Formatter  log.Formatter
	Timestamps bool
	Caller     bool
	Prefix     string
}

// DefaultOptions returns options for human-readable console output.
func DefaultOptions() Options {
	return Options{
		Level:     log.InfoLevel,
		Formatter: log.TextFormatter,
		Prefix:    DefaultPrefix,
	}
}

// OptionsFromConfig converts string settings, as found in config files and
// the environment, into Options.
func OptionsFromConfig(level, format string, timestamps, caller bool) Options {
	return Options{
		Level:      ParseLevel(level),
		Formatter:  ParseFormatter(format),
		Timestamps: timestamps,
		Caller:     caller,
		Prefix:     DefaultPrefix,
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.Timestamps,
		ReportCaller:    opts.Caller,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// ParseLevel maps a level name to a log.Level. Unknown names yield info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter maps a format name (text, json, logfmt) to a log.Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
