package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
	"github.com/matzehuels/sortwheel/pkg/sequence"
)

// Runner executes pipelines against one frame source and renderer.
//
// The Runner holds no run state: every Execute call gets its own sequence,
// scheduler and run ID.
type Runner struct {
	Frames   scheduler.Frames
	Renderer scheduler.Renderer
	Logger   *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and hooks.
	RunID string

	// Sequence is the final state of the animated collection.
	Sequence sequence.Sequence

	// Report holds per-stage statistics.
	Report Report
}

// NewRunner creates a runner. A nil frame source runs unpaced, a nil
// renderer discards snapshots and a nil logger discards output.
func NewRunner(frames scheduler.Frames, renderer scheduler.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Frames: frames, Renderer: renderer, Logger: logger}
}

// Execute plans the canonical run for opts and executes it.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	p, err := Plan(opts)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.Logger.Info("planned run",
		"length", opts.Length,
		"algorithms", len(opts.resolved),
		"stages", p.Len())
	return r.Run(ctx, p)
}

// Run executes p on a fresh sequence. On failure the partial result is
// returned together with the error.
func (r *Runner) Run(ctx context.Context, p *Pipeline) (*Result, error) {
	runID := uuid.NewString()
	logger := r.Logger.With("run", runID[:8])

	var seq sequence.Sequence
	env := &Env{
		Sequence:  &seq,
		Scheduler: scheduler.New(r.Frames, r.Renderer, logger),
		Logger:    logger,
		RunID:     runID,
	}

	report, err := p.Run(ctx, env)
	observability.Pipeline().OnRunComplete(ctx, runID, len(report.Stages), report.Elapsed, err)

	result := &Result{RunID: runID, Sequence: seq, Report: report}
	if err != nil {
		return result, err
	}

	logger.Info("run complete",
		"stages", len(report.Stages),
		"frames", humanize.Comma(int64(report.Frames())),
		"units", humanize.Comma(int64(report.Units())),
		"duration", report.Elapsed.Round(time.Millisecond))
	return result, nil
}

// Summary renders a one-line human readable summary of r.
func (r Report) Summary() string {
	return fmt.Sprintf("%d stages, %s frames, %s units in %s",
		len(r.Stages),
		humanize.Comma(int64(r.Frames())),
		humanize.Comma(int64(r.Units())),
		r.Elapsed.Round(time.Millisecond))
}
