// SPDX-License-Identifier: MIT

// Package cli implements the tiledapsp command-line interface.
//
// # Commands
//
//   - distances: all-pairs shortest path lengths of a graph file
//   - closeness: closeness centrality of every node, or of one node
//   - blocksize: the blocking factor the engine would pick for n nodes
//
// # Configuration
//
// Engine settings are layered: --config file (YAML or TOML), then
// TILEDAPSP_* environment variables, then explicit flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The charm
// logger travels through context.Context and also backs the slog.Logger
// handed to the engine, so per-phase debug lines appear under -v.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// engineLogger adapts l for the apsp package, which logs through slog.
func engineLogger(l *log.Logger) *slog.Logger {
	return slog.New(l)
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "computed 512 nodes (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger stored in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
