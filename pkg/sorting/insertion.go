package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// insertion walks each key left with adjacent swaps instead of holding it
// aside, so the data is a permutation of its input between any two units.
type insertion struct {
	seq sequence.Sequence
	i   int // index of the key being inserted
	j   int // current position of that key
}

func newInsertion(seq sequence.Sequence) *insertion {
	return &insertion{seq: seq, i: 1, j: 1}
}

func (s *insertion) step() bool {
	return insertStep(s.seq, &s.i, &s.j)
}

func (s *insertion) snapshot() snapshot.Snapshot {
	return snapshot.Of(s.seq)
}

// insertStep performs one comparison of an insertion sort over values,
// swapping when the key must move further left. It returns false once every
// key has been inserted.
func insertStep(values []int, i, j *int) bool {
	for {
		if *i >= len(values) {
			return false
		}
		if *j > 0 {
			k := *j
			if values[k-1] > values[k] {
				sequence.Sequence(values).Swap(k-1, k)
				*j = k - 1
				return true
			}
			*i++
			*j = *i
			return true
		}
		*i++
		*j = *i
	}
}

// shell runs gapped insertion passes with gap n/2, n/4, ... 1.
type shell struct {
	seq sequence.Sequence
	gap int
	i   int
	j   int
}

func newShell(seq sequence.Sequence) *shell {
	gap := len(seq) / 2
	return &shell{seq: seq, gap: gap, i: gap, j: gap}
}

func (s *shell) step() bool {
	for {
		if s.gap < 1 {
			return false
		}
		if s.i >= len(s.seq) {
			s.gap /= 2
			s.i, s.j = s.gap, s.gap
			continue
		}
		if s.j >= s.gap {
			if s.seq[s.j-s.gap] > s.seq[s.j] {
				s.seq.Swap(s.j-s.gap, s.j)
				s.j -= s.gap
				return true
			}
			s.i++
			s.j = s.i
			return true
		}
		s.i++
		s.j = s.i
	}
}

func (s *shell) snapshot() snapshot.Snapshot {
	return snapshot.Of(s.seq)
}
