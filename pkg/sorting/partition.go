package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

type span struct{ lo, hi int }

// partition is quicksort with a Lomuto partition: the last element of the
// range is the pivot and seq[lo..i] collects the values below it. Pending
// ranges are kept on a stack with the left range on top, so the left side is
// sorted completely before the right side starts.
type partition struct {
	seq     sequence.Sequence
	pending []span

	active bool
	lo, hi int
	i      int // last index of the below-pivot region
	j      int // next element to compare with the pivot
}

func newPartition(seq sequence.Sequence) *partition {
	p := &partition{seq: seq}
	if len(seq) > 1 {
		p.pending = append(p.pending, span{lo: 0, hi: len(seq) - 1})
	}
	return p
}

func (p *partition) step() bool {
	for {
		if p.active {
			if p.j < p.hi {
				if p.seq[p.j] < p.seq[p.hi] {
					p.i++
					if p.i != p.j {
						p.seq.Swap(p.i, p.j)
					}
				}
				p.j++
				return true
			}

			pivot := p.i + 1
			p.seq.Swap(pivot, p.hi)
			p.active = false
			if pivot+1 < p.hi {
				p.pending = append(p.pending, span{lo: pivot + 1, hi: p.hi})
			}
			if p.lo < pivot-1 {
				p.pending = append(p.pending, span{lo: p.lo, hi: pivot - 1})
			}
			return true
		}

		if len(p.pending) == 0 {
			return false
		}
		r := p.pending[len(p.pending)-1]
		p.pending = p.pending[:len(p.pending)-1]
		if r.hi <= r.lo {
			continue
		}
		p.active = true
		p.lo, p.hi = r.lo, r.hi
		p.i = r.lo - 1
		p.j = r.lo
	}
}

func (p *partition) snapshot() snapshot.Snapshot {
	return snapshot.Of(p.seq)
}
