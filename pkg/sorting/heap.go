package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// heap builds a max-heap in place, then repeatedly swaps the root with the
// last element of the shrinking heap and sifts the new root down.
type heap struct {
	seq  sequence.Sequence
	next int // next root to sift while building; -1 once built
	end  int // last element of the unsorted heap during extraction

	sifting bool
	root    int
	limit   int // heap occupies seq[:limit]
}

func newHeap(seq sequence.Sequence) *heap {
	return &heap{seq: seq, next: len(seq)/2 - 1, end: len(seq) - 1}
}

func (h *heap) step() bool {
	for {
		if h.sifting {
			if h.siftStep() {
				return true
			}
			h.sifting = false
			continue
		}
		if h.next >= 0 {
			h.root, h.limit = h.next, len(h.seq)
			h.next--
			h.sifting = true
			continue
		}
		if h.end > 0 {
			h.seq.Swap(0, h.end)
			h.root, h.limit = 0, h.end
			h.end--
			h.sifting = true
			return true
		}
		return false
	}
}

// siftStep compares the root with its larger child and swaps them when the
// heap property is violated. It returns false once the root has settled.
func (h *heap) siftStep() bool {
	child := 2*h.root + 1
	if child >= h.limit {
		return false
	}
	if child+1 < h.limit && h.seq[child] < h.seq[child+1] {
		child++
	}
	if h.seq[h.root] < h.seq[child] {
		h.seq.Swap(h.root, child)
		h.root = child
		return true
	}
	// Settled; park the root past the heap so the next call ends the sift.
	h.root = h.limit
	return true
}

func (h *heap) snapshot() snapshot.Snapshot {
	return snapshot.Of(h.seq)
}
