// Package cli implements the sortwheel command-line interface.
//
// This package provides commands for animating sorting algorithms in the
// terminal, exporting animations as PNG frames and serving a live preview
// over HTTP. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - run: Animate a pipeline in the terminal (or log progress with --headless)
//   - export: Write every k-th frame to numbered PNG files
//   - serve: Serve the live frame, run status and Prometheus metrics
//   - algorithms: List the registered algorithms
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/sortwheel/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sortwheel/pkg/observability"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps (e.g. "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took once it is done.
// It is meant for a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
// Example output: "Exported 1,204 frames (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports stage boundaries on a logger. Headless runs register it
// so progress is visible without a terminal UI.
type logHooks struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

func (h logHooks) OnStageStart(_ context.Context, _, stage string) {
	h.logger.Info("stage started", "stage", stage)
}

func (h logHooks) OnStageComplete(_ context.Context, _, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("stage failed", "stage", stage, "err", err)
		return
	}
	h.logger.Debug("stage complete", "stage", stage, "duration", d.Round(time.Millisecond))
}
