// Package scheduler drives resumable computations one quantum per display
// frame.
//
// A [Scheduler] owns exactly one [sorting.Computation] at a time. On every
// frame it resumes the computation once, hands the resulting snapshot to its
// [Renderer] and returns control until the next frame. The render call is
// synchronous: the snapshot aliases the data being sorted, so a renderer
// must copy whatever it needs before returning and must never mutate it.
//
// Cancellation is checked before every resumption. A cancelled context ends
// the drive cleanly with ctx.Err(); it is not treated as a fault.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// Renderer receives one snapshot per resumption.
type Renderer interface {
	Render(snapshot.Snapshot) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(snapshot.Snapshot) error

// Render calls f(s).
func (f RenderFunc) Render(s snapshot.Snapshot) error { return f(s) }

// Discard is a Renderer that ignores every snapshot.
var Discard Renderer = RenderFunc(func(snapshot.Snapshot) error { return nil })

// Stats describes one driven computation.
type Stats struct {
	Algorithm   sorting.ID
	Frames      int
	Suspensions int
	Units       int
	Elapsed     time.Duration
}

// Result is the completion signal of an asynchronous run.
type Result struct {
	Stats Stats
	Err   error
}

// Scheduler multiplexes algorithm work against rendering.
type Scheduler struct {
	Frames   Frames
	Renderer Renderer
	Logger   *log.Logger
}

// New creates a scheduler. A nil frames source runs without pacing, a nil
// renderer discards snapshots and a nil logger discards output.
func New(frames Frames, renderer Renderer, logger *log.Logger) *Scheduler {
	if frames == nil {
		frames = Immediate()
	}
	if renderer == nil {
		renderer = Discard
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Scheduler{Frames: frames, Renderer: renderer, Logger: logger}
}

// Drive runs c to completion, one resumption per frame, and blocks until it
// completes, fails or ctx is cancelled.
func (s *Scheduler) Drive(ctx context.Context, c sorting.Computation) (Stats, error) {
	start := time.Now()
	stats := Stats{Algorithm: c.Algorithm()}
	hooks := observability.Scheduler()
	algorithm := string(c.Algorithm())

	finish := func(err error) (Stats, error) {
		cs := c.Stats()
		stats.Units = cs.Units
		stats.Suspensions = cs.Suspensions
		stats.Elapsed = time.Since(start)
		hooks.OnComputationComplete(ctx, algorithm, stats.Units, stats.Frames, stats.Elapsed, err)
		if err != nil {
			s.Logger.Debug("computation stopped", "algorithm", algorithm, "frames", stats.Frames, "err", err)
		} else {
			s.Logger.Debug("computation complete",
				"algorithm", algorithm,
				"frames", stats.Frames,
				"units", stats.Units,
				"duration", stats.Elapsed.Round(time.Millisecond))
		}
		return stats, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		if err := s.Frames.Next(ctx); err != nil {
			return finish(err)
		}

		step := c.Resume()
		stats.Frames++
		hooks.OnFrame(ctx, algorithm)

		if err := s.Renderer.Render(step.Snapshot); err != nil {
			return finish(fmt.Errorf("render frame %d: %w", stats.Frames, err))
		}
		if step.Done {
			return finish(nil)
		}
	}
}

// Run drives c on its own goroutine and returns a channel that receives
// exactly one Result and is then closed. A panic inside the computation is
// reported as an INTERNAL_ERROR result; it is never retried.
func (s *Scheduler) Run(ctx context.Context, c sorting.Computation) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				done <- Result{
					Stats: Stats{Algorithm: c.Algorithm()},
					Err:   errors.New(errors.ErrCodeInternal, "%s: %v", c.Algorithm(), r),
				}
			}
		}()
		stats, err := s.Drive(ctx, c)
		done <- Result{Stats: stats, Err: err}
	}()
	return done
}
