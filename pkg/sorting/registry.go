package sorting

import (
	"strings"

	"github.com/matzehuels/sortwheel/pkg/errors"
	"github.com/matzehuels/sortwheel/pkg/sequence"
)

// ID names an algorithm.
type ID string

// Supported algorithm ids.
const (
	Init          ID = "init"
	Shuffle       ID = "shuffle"
	ExchangeSort  ID = "exchange-sort"
	InsertionSort ID = "insertion-sort"
	SelectionSort ID = "selection-sort"
	MergeSort     ID = "merge-sort"
	PartitionSort ID = "partition-sort"
	HeapSort      ID = "heap-sort"
	ShellSort     ID = "shell-sort"
	BucketSort    ID = "bucket-sort"
)

// Info describes a registered algorithm.
type Info struct {
	ID      ID
	Alias   string
	Name    string
	Summary string
	Sort    bool // false for the build and shuffle stages

	build func(seq sequence.Sequence, o options) machine
}

var registry = []Info{
	{ID: Init, Alias: "build", Name: "Build", Summary: "writes the identity permutation",
		build: func(s sequence.Sequence, _ options) machine { return newBuilder(s) }},
	{ID: Shuffle, Alias: "fisher-yates", Name: "Shuffle", Summary: "Fisher-Yates shuffle from the end",
		build: func(s sequence.Sequence, o options) machine { return newShuffler(s, o.seed) }},
	{ID: ExchangeSort, Alias: "bubble", Name: "Bubble sort", Summary: "adjacent exchanges, stops after a clean pass", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newExchange(s) }},
	{ID: InsertionSort, Alias: "insertion", Name: "Insertion sort", Summary: "walks each key left past larger elements", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newInsertion(s) }},
	{ID: SelectionSort, Alias: "selection", Name: "Selection sort", Summary: "swaps the minimum of the remainder into place", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newSelection(s) }},
	{ID: MergeSort, Alias: "merge", Name: "Merge sort", Summary: "halve then merge in place by rotation", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newMerge(s) }},
	{ID: PartitionSort, Alias: "quick", Name: "Quicksort", Summary: "Lomuto partition around the last element", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newPartition(s) }},
	{ID: HeapSort, Alias: "heap", Name: "Heap sort", Summary: "max-heap, root swapped to the end", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newHeap(s) }},
	{ID: ShellSort, Alias: "shell", Name: "Shell sort", Summary: "gapped insertion, gap halves to 1", Sort: true,
		build: func(s sequence.Sequence, _ options) machine { return newShell(s) }},
	{ID: BucketSort, Alias: "bucket", Name: "Bucket sort", Summary: "fixed-width buckets, insertion sorted, concatenated", Sort: true,
		build: func(s sequence.Sequence, o options) machine { return newBucket(s, o.bucketSize, o.bucketCount) }},
}

// New creates a computation running algorithm id over seq, suspending after
// every quantum units of work. The computation mutates seq in place.
func New(id ID, seq sequence.Sequence, quantum int, opts ...Option) (Computation, error) {
	if err := errors.ValidateQuantum(quantum); err != nil {
		return nil, err
	}
	info, ok := Lookup(string(id))
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", id)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return newComputation(info.ID, quantum, info.build(seq, o)), nil
}

// Lookup finds an algorithm by id or alias, ignoring case.
func Lookup(name string) (Info, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, info := range registry {
		if string(info.ID) == name || info.Alias == name {
			return info, true
		}
	}
	return Info{}, false
}

// ParseID resolves an id or alias to its canonical id.
func ParseID(name string) (ID, error) {
	info, ok := Lookup(name)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
	}
	return info.ID, nil
}

// All returns every registered algorithm in registration order.
func All() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// Sorts returns the ids of the sorting algorithms in registration order.
func Sorts() []ID {
	var ids []ID
	for _, info := range registry {
		if info.Sort {
			ids = append(ids, info.ID)
		}
	}
	return ids
}
