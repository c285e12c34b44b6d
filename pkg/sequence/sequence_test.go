package sequence

import "testing"

func TestIdentity(t *testing.T) {
	s := Identity(5)
	for i, v := range s {
		if v != i {
			t.Fatalf("Identity(5)[%d] = %d", i, v)
		}
	}
	if !s.IsSorted() || !s.IsPermutation() {
		t.Error("identity should be sorted and a permutation")
	}
}

func TestNewNegative(t *testing.T) {
	if got := New(-4).Len(); got != 0 {
		t.Errorf("New(-4).Len() = %d, want 0", got)
	}
}

func TestSwap(t *testing.T) {
	s := Sequence{1, 2, 3}
	s.Swap(0, 2)
	if s[0] != 3 || s[2] != 1 || s[1] != 2 {
		t.Errorf("Swap(0, 2) = %v", s)
	}
	s.Swap(1, 1)
	if s[1] != 2 {
		t.Errorf("self swap changed value: %v", s)
	}
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		in   Sequence
		want bool
	}{
		{nil, true},
		{Sequence{7}, true},
		{Sequence{1, 2, 2, 3}, true},
		{Sequence{2, 1}, false},
	}

	for _, tt := range tests {
		if got := tt.in.IsSorted(); got != tt.want {
			t.Errorf("%v.IsSorted() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		in   []int
		want bool
	}{
		{nil, true},
		{[]int{2, 0, 1}, true},
		{[]int{0, 0, 1}, false},
		{[]int{0, 1, 3}, false},
		{[]int{-1, 0}, false},
	}

	for _, tt := range tests {
		if got := IsPermutation(tt.in); got != tt.want {
			t.Errorf("IsPermutation(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	s := Identity(3)
	c := s.Clone()
	c[0] = 9
	if s[0] != 0 {
		t.Error("Clone should not share storage")
	}
	if Sequence(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Sequence{150, 10, 0, 299, 151}.Bounds()
	if lo != 0 || hi != 299 {
		t.Errorf("Bounds() = %d, %d", lo, hi)
	}
	lo, hi = Sequence(nil).Bounds()
	if lo != 0 || hi != 0 {
		t.Errorf("empty Bounds() = %d, %d", lo, hi)
	}
}
