package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// exchange is bubble sort. Each pass compares adjacent pairs up to end; the
// largest remaining value settles at end, so every pass is one shorter.
// A pass without swaps ends the sort early.
type exchange struct {
	seq     sequence.Sequence
	end     int // pairs (j, j+1) are compared for j < end
	j       int
	swapped bool
}

func newExchange(seq sequence.Sequence) *exchange {
	return &exchange{seq: seq, end: len(seq) - 1}
}

func (e *exchange) step() bool {
	for {
		if e.end <= 0 {
			return false
		}
		if e.j < e.end {
			if e.seq[e.j] > e.seq[e.j+1] {
				e.seq.Swap(e.j, e.j+1)
				e.swapped = true
			}
			e.j++
			return true
		}
		if !e.swapped {
			e.end = 0
			return false
		}
		e.end--
		e.j = 0
		e.swapped = false
	}
}

func (e *exchange) snapshot() snapshot.Snapshot {
	return snapshot.Of(e.seq)
}
