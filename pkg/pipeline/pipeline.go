// Package pipeline composes resumable computations into sequential
// animation runs.
//
// A run is an ordered list of stages. The canonical plan builds the
// identity permutation, shuffles it and then walks through a list of sorting
// algorithms, pausing between them and optionally reshuffling:
//
//	build → shuffle → sort → pause → shuffle → pause → sort → …
//
// Stages run strictly one after another. A stage only starts once the
// previous stage's computation has signalled completion, and a failing stage
// ends the run.
//
// # Usage
//
// Plan a run from options and execute it against a renderer:
//
//	runner := pipeline.NewRunner(scheduler.NewTicker(60), renderer, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Length:     1500,
//	    Algorithms: []string{"bubble", "quick"},
//	})
//
// Or compose stages by hand:
//
//	p := pipeline.New(
//	    pipeline.Build(100, 10),
//	    pipeline.Shuffle(10, 7),
//	    pipeline.Sort(sorting.HeapSort, 50),
//	)
//	report, err := p.Run(ctx, env)
package pipeline

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/scheduler"
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, config and scripts
// =============================================================================

const (
	// DefaultLength is the number of elements animated by default.
	DefaultLength = 1500

	// DefaultBuildQuantum is the number of writes per frame while building.
	DefaultBuildQuantum = 10

	// DefaultShuffleQuantum is the number of swaps per frame while shuffling.
	DefaultShuffleQuantum = 10

	// DefaultSortQuantum is the number of units per frame while sorting.
	DefaultSortQuantum = 500

	// DefaultPause is the rest between two algorithms.
	DefaultPause = time.Second

	// DefaultSeed seeds the first shuffle of a run.
	DefaultSeed = sorting.DefaultSeed
)

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a planned run.
type Options struct {
	Length         int           `json:"length,omitempty"`
	BuildQuantum   int           `json:"build_quantum,omitempty"`
	ShuffleQuantum int           `json:"shuffle_quantum,omitempty"`
	SortQuantum    int           `json:"sort_quantum,omitempty"`
	Pause          time.Duration `json:"pause,omitempty"`
	Seed           uint64        `json:"seed,omitempty"`
	Algorithms     []string      `json:"algorithms,omitempty"` // ids or aliases; empty means every sort
	SkipReshuffle  bool          `json:"skip_reshuffle,omitempty"`
	BucketSize     int           `json:"bucket_size,omitempty"`
	BucketCount    int           `json:"bucket_count,omitempty"`

	// resolved holds the canonical ids after validation.
	resolved []sorting.ID

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks every field and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Length == 0 {
		o.Length = DefaultLength
	}
	if o.BuildQuantum == 0 {
		o.BuildQuantum = DefaultBuildQuantum
	}
	if o.ShuffleQuantum == 0 {
		o.ShuffleQuantum = DefaultShuffleQuantum
	}
	if o.SortQuantum == 0 {
		o.SortQuantum = DefaultSortQuantum
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if err := errors.ValidateLength(o.Length); err != nil {
		return err
	}
	for _, q := range []int{o.BuildQuantum, o.ShuffleQuantum, o.SortQuantum} {
		if err := errors.ValidateQuantum(q); err != nil {
			return err
		}
	}
	if err := errors.ValidatePause(o.Pause); err != nil {
		return err
	}
	if o.BucketSize < 0 || o.BucketCount < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bucket options cannot be negative")
	}

	o.resolved = o.resolved[:0]
	if len(o.Algorithms) == 0 {
		o.resolved = sorting.Sorts()
	}
	for _, name := range o.Algorithms {
		info, ok := sorting.Lookup(name)
		if !ok {
			return errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
		}
		if !info.Sort {
			return errors.New(errors.ErrCodeInvalidAlgorithm, "%q is not a sorting algorithm", name)
		}
		o.resolved = append(o.resolved, info.ID)
	}

	o.validated = true
	return nil
}

// ShouldReshuffle reports whether the sequence is reshuffled between two
// algorithms.
func (o *Options) ShouldReshuffle() bool {
	return !o.SkipReshuffle
}

// SortOptions returns the algorithm options derived from o.
func (o *Options) SortOptions() []sorting.Option {
	var opts []sorting.Option
	if o.BucketSize > 0 {
		opts = append(opts, sorting.WithBucketSize(o.BucketSize))
	}
	if o.BucketCount > 0 {
		opts = append(opts, sorting.WithBucketCount(o.BucketCount))
	}
	return opts
}

// Plan builds the canonical run for opts: build, shuffle, then every
// algorithm with a pause (and, unless disabled, a reshuffle and a second
// pause) between consecutive algorithms.
func Plan(opts Options) (*Pipeline, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	p := New(
		Build(opts.Length, opts.BuildQuantum),
		Shuffle(opts.ShuffleQuantum, opts.Seed),
	)
	sortOpts := opts.SortOptions()
	for i, id := range opts.resolved {
		p.Append(Sort(id, opts.SortQuantum, sortOpts...))
		if i == len(opts.resolved)-1 {
			break
		}
		p.Append(Pause(opts.Pause))
		if opts.ShouldReshuffle() {
			p.Append(Shuffle(opts.ShuffleQuantum, opts.Seed+uint64(i)+1), Pause(opts.Pause))
		}
	}
	return p, nil
}

// =============================================================================
// Pipeline
// =============================================================================

// Pipeline is an ordered list of stages.
type Pipeline struct {
	stages []Stage
}

// New returns a pipeline running stages in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Append adds stages to the end of the pipeline.
func (p *Pipeline) Append(stages ...Stage) *Pipeline {
	p.stages = append(p.stages, stages...)
	return p
}

// Stages returns a copy of the stage list.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Length returns the largest sequence length any build stage produces, or 0
// if the pipeline never builds. Renderers use it to fix their geometry.
func (p *Pipeline) Length() int {
	var n int
	for _, s := range p.stages {
		if b, ok := s.(*build); ok && b.n > n {
			n = b.n
		}
	}
	return n
}

// Report summarises a pipeline run.
type Report struct {
	Stages  []StageReport
	Elapsed time.Duration
}

// StageReport describes one completed (or failed) stage.
type StageReport struct {
	Name     string
	Stats    scheduler.Stats // zero for stages without a computation
	Duration time.Duration
	Err      error
}

// Frames returns the total number of frames rendered.
func (r Report) Frames() int {
	var n int
	for _, s := range r.Stages {
		n += s.Stats.Frames
	}
	return n
}

// Units returns the total units of work performed.
func (r Report) Units() int {
	var n int
	for _, s := range r.Stages {
		n += s.Stats.Units
	}
	return n
}

// Run executes every stage in order against env. It stops at the first
// failing stage and returns the report so far together with the error.
func (p *Pipeline) Run(ctx context.Context, env *Env) (Report, error) {
	env.setDefaults()
	hooks := observability.Pipeline()
	start := time.Now()

	var report Report
	for i, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}

		name := stage.Name()
		hooks.OnStageStart(ctx, env.RunID, name)
		env.Logger.Debug("stage started", "stage", name, "index", i)

		env.last = scheduler.Stats{}
		stageStart := time.Now()
		err := stage.Run(ctx, env)
		sr := StageReport{Name: name, Stats: env.last, Duration: time.Since(stageStart), Err: err}
		report.Stages = append(report.Stages, sr)
		hooks.OnStageComplete(ctx, env.RunID, name, sr.Duration, err)

		if err != nil {
			report.Elapsed = time.Since(start)
			if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
				return report, err
			}
			return report, fmt.Errorf("stage %d (%s): %w", i+1, name, err)
		}
		env.Logger.Debug("stage complete",
			"stage", name,
			"frames", sr.Stats.Frames,
			"units", sr.Stats.Units,
			"duration", sr.Duration.Round(time.Millisecond))
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// Env is the shared state threaded through the stages of one run.
type Env struct {
	// Sequence is the collection every stage works on. Build replaces it.
	Sequence *sequence.Sequence

	// Scheduler drives each stage's computation.
	Scheduler *scheduler.Scheduler

	Logger *log.Logger

	// RunID identifies the run in hooks and logs.
	RunID string

	last scheduler.Stats
}

func (e *Env) setDefaults() {
	if e.Logger == nil {
		e.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if e.Sequence == nil {
		seq := sequence.New(0)
		e.Sequence = &seq
	}
	if e.Scheduler == nil {
		e.Scheduler = scheduler.New(nil, nil, e.Logger)
	}
}
