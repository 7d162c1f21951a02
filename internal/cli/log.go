// Package cli wires the adaptivegrid binary together.
//
// Every subcommand reads a scene (TOML or JSON) or a stored .layout.json and
// hands it to the pipeline:
//   - layout: compute placements and write <scene>.layout.json
//   - render: write svg, png, jpg, dot, json or txt artifacts, or one of them
//     to stdout with -o -
//   - preview: resize and re-layout a scene interactively in the terminal
//   - serve: expose the pipeline as an HTTP API
//
// Diagnostics go through a charmbracelet/log logger that the root command
// stores on the command context; --verbose lowers it to debug. User-facing
// results are printed with the lipgloss helpers in ui.go instead.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat prints wall time with hundredths, e.g. 09:41:07.25.
const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// progress times one command step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the step's duration appended, as in
// "Wrote 2 files (8ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, p.elapsed())
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger the root command attached. Commands
// run outside the root (tests, completion) get log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
