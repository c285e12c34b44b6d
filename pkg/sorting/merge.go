package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// mergeFrame is one pending mergeSort(lo, hi) call.
type mergeFrame struct {
	lo, hi int
	phase  uint8 // 0: sort left, 1: sort right, 2: merge
}

// merge is top-down merge sort with an in-place merge. When the head of the
// right run must precede the head of the left run it is rotated into place
// by shifting every element in between one slot right. That costs O(n) per
// misordered element and needs no buffer.
type merge struct {
	seq   sequence.Sequence
	stack []mergeFrame

	merging  bool
	rotating bool
	i, mid   int // left run is seq[i..mid]
	j, hi    int // right run is seq[j..hi]
	k        int // position of the element being rotated left
}

func newMerge(seq sequence.Sequence) *merge {
	m := &merge{seq: seq}
	if len(seq) > 1 {
		m.stack = append(m.stack, mergeFrame{lo: 0, hi: len(seq) - 1})
	}
	return m
}

func (m *merge) step() bool {
	for {
		if m.merging {
			if m.mergeStep() {
				return true
			}
			m.merging = false
			continue
		}
		if len(m.stack) == 0 {
			return false
		}

		top := len(m.stack) - 1
		f := m.stack[top]
		if f.hi <= f.lo {
			m.stack = m.stack[:top]
			continue
		}
		mid := f.lo + (f.hi-f.lo)/2
		switch f.phase {
		case 0:
			m.stack[top].phase = 1
			m.stack = append(m.stack, mergeFrame{lo: f.lo, hi: mid})
		case 1:
			m.stack[top].phase = 2
			m.stack = append(m.stack, mergeFrame{lo: mid + 1, hi: f.hi})
		default:
			m.stack = m.stack[:top]
			m.merging = true
			m.i, m.mid = f.lo, mid
			m.j, m.hi = mid+1, f.hi
		}
	}
}

// mergeStep performs one comparison or one shift of the active merge.
func (m *merge) mergeStep() bool {
	if m.rotating {
		m.seq.Swap(m.k-1, m.k)
		m.k--
		if m.k == m.i {
			m.rotating = false
			m.i++
			m.mid++
			m.j++
		}
		return true
	}
	if m.i > m.mid || m.j > m.hi {
		return false
	}
	if m.seq[m.i] <= m.seq[m.j] {
		m.i++
		return true
	}
	m.rotating = true
	m.k = m.j
	return true
}

func (m *merge) snapshot() snapshot.Snapshot {
	return snapshot.Of(m.seq)
}
