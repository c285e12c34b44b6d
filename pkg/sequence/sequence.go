// Package sequence defines the mutable integer collection that every
// sortwheel algorithm works on.
//
// A Sequence of length n holds the values 0..n-1 exactly once each. Sorting
// stages reorder it in place; they never add, drop or duplicate a value.
package sequence

// Sequence is an ordered, index-addressable collection of distinct integers.
type Sequence []int

// New returns a zeroed sequence of length n, ready to be filled by the
// build stage.
func New(n int) Sequence {
	if n < 0 {
		n = 0
	}
	return make(Sequence, n)
}

// Identity returns the permutation 0..n-1.
func Identity(n int) Sequence {
	s := New(n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s) }

// Swap exchanges the elements at i and j.
func (s Sequence) Swap(i, j int) {
	tmp := s[i]
	s[i] = s[j]
	s[j] = tmp
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IsSorted reports whether s[i] <= s[i+1] for every valid i.
func (s Sequence) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether s holds each of 0..len(s)-1 exactly once.
func (s Sequence) IsPermutation() bool {
	return IsPermutation(s)
}

// IsPermutation reports whether values holds each of 0..len(values)-1
// exactly once.
func IsPermutation(values []int) bool {
	seen := make([]bool, len(values))
	for _, v := range values {
		if v < 0 || v >= len(values) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Bounds returns the smallest and largest value. Both are zero when s is empty.
func (s Sequence) Bounds() (lo, hi int) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
