// Package cli implements the moodart command-line interface.
//
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library. Every command resolves its settings through
// pkg/config before running, so flags only need to name what differs from
// the config file and environment.
//
// # Commands
//
// The main commands are:
//   - generate: Paint one piece and write it as PNG
//   - batch: Paint many mood and style combinations into a directory
//   - story: Write a mood story to stdout or a text file
//   - pick: Choose mood and style interactively, then paint
//   - list: Show moods, styles or inspiration ideas
//   - serve: Run the HTTP API
//   - cache: Manage the render cache
//   - config: Print the effective configuration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every generation and cache event.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Painted 80 pieces (12.345s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
