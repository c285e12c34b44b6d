package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// selection scans the unsorted remainder for its minimum, one comparison per
// unit. The swap into place happens with the last comparison of a scan and
// is skipped when the minimum is already there.
type selection struct {
	seq sequence.Sequence
	i   int // first unsorted position
	j   int // next candidate
	min int // position of the smallest value seen in this scan
}

func newSelection(seq sequence.Sequence) *selection {
	return &selection{seq: seq, j: 1}
}

func (s *selection) step() bool {
	n := len(s.seq)
	if s.i >= n-1 {
		return false
	}
	if s.seq[s.j] < s.seq[s.min] {
		s.min = s.j
	}
	s.j++
	if s.j == n {
		if s.min != s.i {
			s.seq.Swap(s.i, s.min)
		}
		s.i++
		s.min = s.i
		s.j = s.i + 1
	}
	return true
}

func (s *selection) snapshot() snapshot.Snapshot {
	return snapshot.Of(s.seq)
}
