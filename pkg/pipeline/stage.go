package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

// Stage is one step of a pipeline. Run blocks until the stage is complete.
type Stage interface {
	Name() string
	Run(ctx context.Context, env *Env) error
}

// compute runs one resumable computation over the environment's sequence.
type compute struct {
	name    string
	id      sorting.ID
	quantum int
	opts    []sorting.Option

	// verify checks the sequence once the computation completes.
	verify func(sequence.Sequence) error
}

func (s *compute) Name() string { return s.name }

func (s *compute) Run(ctx context.Context, env *Env) error {
	c, err := sorting.New(s.id, *env.Sequence, s.quantum, s.opts...)
	if err != nil {
		return err
	}
	res := <-env.Scheduler.Run(ctx, c)
	env.last = res.Stats
	if res.Err != nil {
		return res.Err
	}
	if s.verify != nil {
		return s.verify(*env.Sequence)
	}
	return nil
}

// Build returns a stage that replaces the sequence with n elements and
// writes the identity permutation into it, quantum writes per frame.
func Build(n, quantum int) Stage {
	return &build{compute: compute{name: string(sorting.Init), id: sorting.Init, quantum: quantum}, n: n}
}

type build struct {
	compute
	n int
}

func (s *build) Run(ctx context.Context, env *Env) error {
	if err := errors.ValidateLength(s.n); err != nil {
		return err
	}
	seq := sequence.New(s.n)
	*env.Sequence = seq
	return s.compute.Run(ctx, env)
}

// Shuffle returns a stage that applies a seeded Fisher-Yates shuffle,
// quantum swaps per frame.
func Shuffle(quantum int, seed uint64) Stage {
	return &compute{
		name:    string(sorting.Shuffle),
		id:      sorting.Shuffle,
		quantum: quantum,
		opts:    []sorting.Option{sorting.WithSeed(seed)},
		verify:  verifyPermutation,
	}
}

// Sort returns a stage that sorts the sequence with algorithm id. The
// stage fails with an INTERNAL_ERROR if the result is not sorted.
func Sort(id sorting.ID, quantum int, opts ...sorting.Option) Stage {
	return &compute{
		name:    string(id),
		id:      id,
		quantum: quantum,
		opts:    opts,
		verify: func(seq sequence.Sequence) error {
			if err := verifyPermutation(seq); err != nil {
				return err
			}
			if !seq.IsSorted() {
				return errors.New(errors.ErrCodeInternal, "%s left the sequence unsorted", id)
			}
			return nil
		},
	}
}

func verifyPermutation(seq sequence.Sequence) error {
	if !seq.IsPermutation() {
		return errors.New(errors.ErrCodeInternal, "sequence is no longer a permutation of 0..%d", len(seq)-1)
	}
	return nil
}

// Pause returns a stage that waits for d, or until ctx is cancelled.
func Pause(d time.Duration) Stage {
	return pause(d)
}

type pause time.Duration

func (p pause) Name() string { return fmt.Sprintf("pause %s", time.Duration(p)) }

func (p pause) Run(ctx context.Context, _ *Env) error {
	if err := errors.ValidatePause(time.Duration(p)); err != nil {
		return err
	}
	if p == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(p))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
