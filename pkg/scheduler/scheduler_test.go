package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	swerrors "github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/observability"
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
	"github.com/matzehuels/sortwheel/pkg/sorting"
)

func newComputation(t *testing.T, id sorting.ID, values []int, quantum int) (sorting.Computation, sequence.Sequence) {
	t.Helper()
	seq := sequence.Sequence(append([]int(nil), values...))
	c, err := sorting.New(id, seq, quantum)
	if err != nil {
		t.Fatalf("sorting.New(%s): %v", id, err)
	}
	return c, seq
}

func TestDriveExchangeSort(t *testing.T) {
	c, seq := newComputation(t, sorting.ExchangeSort, []int{5, 4, 3, 2, 1}, 1)

	var rendered int
	s := New(Immediate(), RenderFunc(func(snap snapshot.Snapshot) error {
		rendered++
		if !sequence.IsPermutation(snap.Values()) {
			t.Errorf("frame %d: snapshot %v is not a permutation", rendered, snap.Values())
		}
		return nil
	}), nil)

	stats, err := s.Drive(context.Background(), c)
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if !seq.IsSorted() {
		t.Errorf("sequence not sorted: %v", seq)
	}
	if stats.Suspensions != 10 {
		t.Errorf("Suspensions = %d, want 10", stats.Suspensions)
	}
	if stats.Units != 10 {
		t.Errorf("Units = %d, want 10", stats.Units)
	}
	if stats.Frames != 11 {
		t.Errorf("Frames = %d, want 11", stats.Frames)
	}
	if rendered != stats.Frames {
		t.Errorf("rendered %d frames, stats report %d", rendered, stats.Frames)
	}
	if stats.Algorithm != sorting.ExchangeSort {
		t.Errorf("Algorithm = %s, want %s", stats.Algorithm, sorting.ExchangeSort)
	}
}

func TestDriveTrivialInputs(t *testing.T) {
	for _, values := range [][]int{nil, {7}} {
		c, _ := newComputation(t, sorting.PartitionSort, values, 1)
		stats, err := New(nil, nil, nil).Drive(context.Background(), c)
		if err != nil {
			t.Fatalf("Drive(%v): %v", values, err)
		}
		if stats.Frames != 1 || stats.Suspensions != 0 {
			t.Errorf("Drive(%v) = %d frames, %d suspensions; want 1, 0", values, stats.Frames, stats.Suspensions)
		}
	}
}

func TestDriveCancelled(t *testing.T) {
	c, seq := newComputation(t, sorting.ExchangeSort, []int{5, 4, 3, 2, 1}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	var frames int
	s := New(Immediate(), RenderFunc(func(snapshot.Snapshot) error {
		frames++
		if frames == 3 {
			cancel()
		}
		return nil
	}), nil)

	stats, err := s.Drive(ctx, c)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Drive err = %v, want context.Canceled", err)
	}
	if stats.Frames != 3 {
		t.Errorf("Frames = %d, want 3", stats.Frames)
	}
	if c.Stats().Done {
		t.Error("computation should not be done after cancellation")
	}
	if !seq.IsPermutation() {
		t.Errorf("sequence lost elements: %v", seq)
	}
}

func TestDriveRenderError(t *testing.T) {
	c, _ := newComputation(t, sorting.InsertionSort, []int{3, 2, 1}, 1)
	boom := errors.New("boom")
	s := New(Immediate(), RenderFunc(func(snapshot.Snapshot) error { return boom }), nil)

	stats, err := s.Drive(context.Background(), c)
	if !errors.Is(err, boom) {
		t.Fatalf("Drive err = %v, want wrapped boom", err)
	}
	if stats.Frames != 1 {
		t.Errorf("Frames = %d, want 1", stats.Frames)
	}
}

func TestRunResolvesOnce(t *testing.T) {
	c, seq := newComputation(t, sorting.HeapSort, []int{9, 3, 7, 1, 8, 2}, 2)

	done := New(Immediate(), nil, nil).Run(context.Background(), c)
	res, ok := <-done
	if !ok {
		t.Fatal("channel closed without a result")
	}
	if res.Err != nil {
		t.Fatalf("Run: %v", res.Err)
	}
	if !seq.IsSorted() {
		t.Errorf("sequence not sorted: %v", seq)
	}
	if _, ok := <-done; ok {
		t.Error("channel delivered a second result")
	}
}

type panicking struct{}

func (panicking) Algorithm() sorting.ID { return sorting.MergeSort }
func (panicking) Resume() sorting.Step  { panic("index out of range") }
func (panicking) Stats() sorting.Stats  { return sorting.Stats{} }

func TestRunRecoversPanic(t *testing.T) {
	res := <-New(Immediate(), nil, nil).Run(context.Background(), panicking{})
	if !swerrors.Is(res.Err, swerrors.ErrCodeInternal) {
		t.Fatalf("Run err = %v, want INTERNAL_ERROR", res.Err)
	}
	if res.Stats.Algorithm != sorting.MergeSort {
		t.Errorf("Algorithm = %s, want %s", res.Stats.Algorithm, sorting.MergeSort)
	}
}

type countingHooks struct {
	observability.NoopSchedulerHooks
	frames    int
	completed int
	units     int
}

func (h *countingHooks) OnFrame(context.Context, string) { h.frames++ }

func (h *countingHooks) OnComputationComplete(_ context.Context, _ string, units, _ int, _ time.Duration, _ error) {
	h.completed++
	h.units = units
}

func TestDriveHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetSchedulerHooks(hooks)
	t.Cleanup(observability.Reset)

	c, _ := newComputation(t, sorting.SelectionSort, []int{3, 1, 2}, 1)
	stats, err := New(nil, nil, nil).Drive(context.Background(), c)
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if hooks.frames != stats.Frames {
		t.Errorf("OnFrame called %d times, want %d", hooks.frames, stats.Frames)
	}
	if hooks.completed != 1 {
		t.Errorf("OnComputationComplete called %d times, want 1", hooks.completed)
	}
	if hooks.units != stats.Units {
		t.Errorf("reported units = %d, want %d", hooks.units, stats.Units)
	}
}
