// Package cli implements the statespace command-line interface.
//
// Every command runs one of the classic search demonstrations on top of the
// statespace library:
//   - maze:         solve a random (seeded) grid maze with DFS, BFS and/or A*
//   - missionaries: solve the missionaries-and-cannibals crossing with BFS
//   - route:        find the fewest-hop route between two US cities with BFS
//   - color:        colour the map of Australia with backtracking search
//   - queens:       place N queens with backtracking search
//
// # Configuration
//
// Parameters default to the classic puzzle sizes and may be overridden by a
// TOML file (--config) and then by command flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation together with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals and an elapsed key, rounded to the microsecond.
// Example output: "INFO BFS finished count=3 expanded=14 elapsed=312µs"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Microsecond))...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
