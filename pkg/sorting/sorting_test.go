package sorting

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sortwheel/pkg/sequence"
)

// drain resumes c until it completes and returns the number of resumptions.
func drain(t *testing.T, c Computation) int {
	t.Helper()
	calls := 0
	for {
		calls++
		if c.Resume().Done {
			return calls
		}
		require.Less(t, calls, 50_000_000, "computation did not complete")
	}
}

// shuffled returns a seeded random permutation of 0..n-1.
func shuffled(t *testing.T, n int, seed uint64) sequence.Sequence {
	t.Helper()
	seq := sequence.Identity(n)
	c, err := New(Shuffle, seq, math.MaxInt, WithSeed(seed))
	require.NoError(t, err)
	drain(t, c)
	return seq
}

func runSort(t *testing.T, id ID, in []int, quantum int, opts ...Option) (sequence.Sequence, Stats) {
	t.Helper()
	seq := sequence.Sequence(in).Clone()
	c, err := New(id, seq, quantum, opts...)
	require.NoError(t, err)
	drain(t, c)
	return seq, c.Stats()
}

func TestSortsProduceSortedPermutation(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 7, 64, 257}
	quanta := []int{1, 3, 17, math.MaxInt}

	for _, id := range Sorts() {
		for _, n := range lengths {
			for _, q := range quanta {
				t.Run(fmt.Sprintf("%s/n=%d/q=%d", id, n, q), func(t *testing.T) {
					out, stats := runSort(t, id, shuffled(t, n, uint64(n)+7), q)
					assert.True(t, out.IsSorted(), "not sorted: %v", out)
					assert.True(t, out.IsPermutation(), "not a permutation: %v", out)
					assert.True(t, stats.Done)
				})
			}
		}
	}
}

func TestPermutationHoldsAtEverySuspension(t *testing.T) {
	for _, id := range Sorts() {
		t.Run(string(id), func(t *testing.T) {
			seq := shuffled(t, 60, 3)
			c, err := New(id, seq, 1)
			require.NoError(t, err)

			for {
				step := c.Resume()
				require.True(t, sequence.IsPermutation(step.Snapshot.Values()),
					"snapshot lost or duplicated a value after %d units", c.Stats().Units)
				if step.Done {
					break
				}
			}
			assert.True(t, seq.IsSorted())
		})
	}
}

func TestResumptionEquivalence(t *testing.T) {
	ids := append([]ID{Init, Shuffle}, Sorts()...)
	for _, id := range ids {
		t.Run(string(id), func(t *testing.T) {
			input := shuffled(t, 200, 11)
			want, wantStats := runSort(t, id, input, math.MaxInt)

			for _, q := range []int{1, 2, 5, 64, 199} {
				got, stats := runSort(t, id, input, q)
				assert.Equal(t, want, got, "quantum %d", q)
				assert.Equal(t, wantStats.Units, stats.Units, "quantum %d changed the work done", q)
			}
		})
	}
}

func TestSuspensionsMatchQuantum(t *testing.T) {
	input := shuffled(t, 100, 5)
	_, unbounded := runSort(t, HeapSort, input, math.MaxInt)
	require.Zero(t, unbounded.Suspensions)

	for _, q := range []int{1, 4, 9} {
		_, stats := runSort(t, HeapSort, input, q)
		assert.Equal(t, unbounded.Units/q, stats.Suspensions, "quantum %d", q)
	}
}

func TestCompletionIsIdempotent(t *testing.T) {
	for _, id := range Sorts() {
		seq := sequence.Sequence{4, 2, 0, 3, 1}
		c, err := New(id, seq, 2)
		require.NoError(t, err)
		drain(t, c)

		before := c.Stats()
		snapshotBefore := seq.Clone()
		for i := 0; i < 3; i++ {
			step := c.Resume()
			assert.True(t, step.Done, "%s: Resume after completion", id)
		}
		assert.Equal(t, before, c.Stats(), "%s: stats changed after completion", id)
		assert.Equal(t, snapshotBefore, seq, "%s: data changed after completion", id)
	}
}

func TestTrivialInputsCompleteWithoutSuspending(t *testing.T) {
	ids := append([]ID{Init, Shuffle}, Sorts()...)
	for _, id := range ids {
		for _, in := range [][]int{{}, {0}} {
			seq := sequence.Sequence(in)
			c, err := New(id, seq, 1)
			require.NoError(t, err)

			step := c.Resume()
			assert.True(t, step.Done, "%s on %v", id, in)
			assert.Zero(t, c.Stats().Suspensions, "%s on %v", id, in)
			assert.Zero(t, c.Stats().Units, "%s on %v", id, in)
		}
	}
}

func TestExchangeSortReversed(t *testing.T) {
	seq := sequence.Sequence{5, 4, 3, 2, 1}
	c, err := New(ExchangeSort, seq, 1)
	require.NoError(t, err)

	calls := drain(t, c)

	assert.Equal(t, sequence.Sequence{1, 2, 3, 4, 5}, seq)
	// Four passes of 4, 3, 2 and 1 comparisons.
	assert.Equal(t, 10, c.Stats().Suspensions)
	assert.Equal(t, 10, c.Stats().Units)
	assert.Equal(t, 11, calls)
}

func TestExchangeSortStopsAfterCleanPass(t *testing.T) {
	_, stats := runSort(t, ExchangeSort, []int{1, 2, 3, 4, 5}, 1)
	assert.Equal(t, 4, stats.Units)

	_, stats = runSort(t, ExchangeSort, []int{2, 1, 3, 4, 5}, 1)
	assert.Equal(t, 4+3, stats.Units)
}

func TestSelectionSortSkipsInPlaceMinimum(t *testing.T) {
	out, stats := runSort(t, SelectionSort, []int{0, 1, 2, 3}, 1)
	assert.Equal(t, sequence.Sequence{0, 1, 2, 3}, out)
	assert.Equal(t, 3+2+1, stats.Units)
}

func TestInsertionSortUnits(t *testing.T) {
	// Key 1 moves left once then stops at the front; key 2 compares once.
	_, stats := runSort(t, InsertionSort, []int{2, 1, 3}, 1)
	assert.Equal(t, 2, stats.Units)
}

func TestMergeSortRotatesInPlace(t *testing.T) {
	out, stats := runSort(t, MergeSort, []int{2, 1}, 1)
	assert.Equal(t, sequence.Sequence{1, 2}, out)
	assert.Equal(t, 2, stats.Units, "one comparison plus one shift")

	out, stats = runSort(t, MergeSort, []int{3, 4, 1, 2}, 1)
	assert.Equal(t, sequence.Sequence{1, 2, 3, 4}, out)
	// Runs [3 4] and [1 2] take one comparison each; the final merge rotates
	// 1 and then 2 across two slots each.
	assert.Equal(t, 1+1+(1+2)+(1+2), stats.Units)
}

func TestPartitionSortScenario(t *testing.T) {
	for q := 1; q <= 12; q++ {
		out, _ := runSort(t, PartitionSort, []int{3, 6, 2, 7, 1}, q)
		assert.Equal(t, sequence.Sequence{1, 2, 3, 6, 7}, out, "quantum %d", q)
	}
}

func TestPartitionSortUnits(t *testing.T) {
	// [3 6 2 7 1]: pivot 1 takes 4 comparisons and a swap, then the right
	// range [6 2 7 3] takes 3+1, then [2] is trivial and [7 6] takes 1+1.
	_, stats := runSort(t, PartitionSort, []int{3, 6, 2, 7, 1}, 1)
	assert.Equal(t, 5+4+2, stats.Units)
}

func TestHeapSortWithDuplicates(t *testing.T) {
	out, _ := runSort(t, HeapSort, []int{3, 1, 3, 0, 1, 3}, 2)
	assert.Equal(t, sequence.Sequence{0, 1, 1, 3, 3, 3}, out)
}

func TestShellSortGapSequence(t *testing.T) {
	out, _ := runSort(t, ShellSort, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, 3)
	assert.Equal(t, sequence.Identity(10), out)
}

func TestBucketSortScenario(t *testing.T) {
	out, _ := runSort(t, BucketSort, []int{150, 10, 0, 299, 151}, 1, WithBucketSize(150))
	assert.Equal(t, sequence.Sequence{0, 10, 150, 151, 299}, out)
}

func TestBucketSortDistribution(t *testing.T) {
	seq := sequence.Sequence{150, 10, 0, 299, 151}
	c, err := New(BucketSort, seq, len(seq), WithBucketSize(100))
	require.NoError(t, err)

	// The first quantum is exactly the distribution pass.
	step := c.Resume()
	require.False(t, step.Done)

	var groups [][]int
	for _, l := range step.Snapshot.Layers[1:] {
		groups = append(groups, append([]int(nil), l.Values...))
	}
	assert.Equal(t, [][]int{{10, 0}, {150, 151}, {299}}, groups)
	assert.Empty(t, step.Snapshot.Layers[0].Values, "nothing left to distribute")

	// Bucket k renders from position k*size.
	assert.Equal(t, 100, step.Snapshot.Layers[2].Place(0))
	assert.Equal(t, 201, step.Snapshot.Layers[3].Place(1))

	drain(t, c)
	assert.Equal(t, sequence.Sequence{0, 10, 150, 151, 299}, seq)
}

func TestBucketSortEqualValues(t *testing.T) {
	seq := sequence.Sequence{3, 3, 3, 3}
	c, err := New(BucketSort, seq, 4)
	require.NoError(t, err)

	step := c.Resume()
	require.False(t, step.Done)
	assert.Len(t, step.Snapshot.Layers, 2, "remainder layer plus a single bucket")

	drain(t, c)
	assert.Equal(t, sequence.Sequence{3, 3, 3, 3}, seq)
}

func TestBucketSortExtremeRange(t *testing.T) {
	for _, count := range []int{1, DefaultBucketCount} {
		seq := sequence.Sequence{math.MaxInt, math.MinInt, 0, -1, 1}
		c, err := New(BucketSort, seq, 2, WithBucketCount(count))
		require.NoError(t, err)

		drain(t, c)
		assert.Equal(t, sequence.Sequence{math.MinInt, -1, 0, 1, math.MaxInt}, seq, "count %d", count)
	}
}

func TestBucketSortDefaultSizing(t *testing.T) {
	seq := shuffled(t, 1500, 1)
	c, err := New(BucketSort, seq, len(seq))
	require.NoError(t, err)

	step := c.Resume()
	assert.Len(t, step.Snapshot.Layers, 1+DefaultBucketCount)

	drain(t, c)
	assert.True(t, seq.IsSorted())
}

func TestInitBuildsIdentity(t *testing.T) {
	seq := sequence.New(25)
	c, err := New(Init, seq, 10)
	require.NoError(t, err)

	step := c.Resume()
	assert.Equal(t, 10, step.Snapshot.Len(), "only built positions are rendered")

	drain(t, c)
	assert.Equal(t, sequence.Identity(25), seq)
	assert.Equal(t, 25, c.Stats().Units)
}

func TestInitSingleElement(t *testing.T) {
	seq := sequence.Sequence{7}
	c, err := New(Init, seq, 1)
	require.NoError(t, err)

	step := c.Resume()
	assert.True(t, step.Done)
	assert.Zero(t, c.Stats().Suspensions)
	assert.Equal(t, sequence.Sequence{0}, seq)
	assert.Equal(t, 1, step.Snapshot.Len())
}

func TestShuffleIsSeeded(t *testing.T) {
	a := shuffled(t, 100, 9)
	b := shuffled(t, 100, 9)
	c := shuffled(t, 100, 10)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, a.IsPermutation())
	assert.False(t, a.IsSorted())
}
