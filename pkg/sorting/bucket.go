package sorting

import (
	"math"

	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

const (
	bucketSetup = iota
	bucketDistribute
	bucketSort
	bucketGather
	bucketDone
)

// bucket distributes every value into the bucket covering
// [min + k*size, min + (k+1)*size), insertion sorts each bucket on its own
// and writes the buckets back in ascending order. Range arithmetic is done
// in uint so any int values can be bucketed; an explicit size still yields
// (max-min)/size+1 buckets.
type bucket struct {
	seq    sequence.Sequence
	size   int // value range per bucket; 0 derives it from count
	count  int
	phase  int
	min    int
	groups [][]int

	cursor int // distribute: next index read; gather: next index written
	b      int // bucket being sorted or gathered
	i, j   int // insertion cursors in bucket b; i is the read index when gathering
}

func newBucket(seq sequence.Sequence, size, count int) *bucket {
	return &bucket{seq: seq, size: size, count: count}
}

// setup sizes the bucket group from the current value range. Equal values
// collapse the range to zero and leave a single bucket.
func (s *bucket) setup() {
	if len(s.seq) <= 1 {
		s.phase = bucketDone
		return
	}
	lo, hi := s.seq.Bounds()
	s.min = lo
	if s.size == 0 {
		s.size = bucketWidth(uint(hi)-uint(lo), s.count)
	}
	if s.size < 1 {
		s.size = 1
	}
	s.groups = make([][]int, s.index(hi)+1)
	s.phase = bucketDistribute
}

// bucketWidth splits span into count buckets, clamped to the int range.
func bucketWidth(span uint, count int) int {
	w := span / uint(count)
	if w >= math.MaxInt {
		return math.MaxInt
	}
	return int(w) + 1
}

// index returns the bucket holding v.
func (s *bucket) index(v int) int {
	return int((uint(v) - uint(s.min)) / uint(s.size))
}

func (s *bucket) step() bool {
	for {
		switch s.phase {
		case bucketSetup:
			s.setup()

		case bucketDistribute:
			if s.cursor < len(s.seq) {
				v := s.seq[s.cursor]
				k := s.index(v)
				s.groups[k] = append(s.groups[k], v)
				s.cursor++
				return true
			}
			s.phase = bucketSort
			s.b, s.i, s.j = 0, 1, 1

		case bucketSort:
			if s.b >= len(s.groups) {
				s.phase = bucketGather
				s.b, s.i, s.cursor = 0, 0, 0
				continue
			}
			if insertStep(s.groups[s.b], &s.i, &s.j) {
				return true
			}
			s.b++
			s.i, s.j = 1, 1

		case bucketGather:
			for s.b < len(s.groups) && s.i >= len(s.groups[s.b]) {
				s.b++
				s.i = 0
			}
			if s.b >= len(s.groups) {
				s.groups = nil
				s.phase = bucketDone
				return false
			}
			s.seq[s.cursor] = s.groups[s.b][s.i]
			s.cursor++
			s.i++
			return true

		default:
			return false
		}
	}
}

func (s *bucket) snapshot() snapshot.Snapshot {
	switch s.phase {
	case bucketDistribute:
		return snapshot.WithBuckets(s.groups, s.size, snapshot.Tail(s.seq, s.cursor))
	case bucketSort:
		return snapshot.WithBuckets(s.groups, s.size)
	case bucketGather:
		layers := []snapshot.Layer{{Values: s.seq[:s.cursor], Place: snapshot.Identity}}
		if s.b < len(s.groups) {
			layers = append(layers, snapshot.Layer{
				Values: s.groups[s.b][s.i:],
				Place:  snapshot.Offset(s.b*s.size + s.i),
			})
		}
		for k := s.b + 1; k < len(s.groups); k++ {
			if len(s.groups[k]) > 0 {
				layers = append(layers, snapshot.Layer{Values: s.groups[k], Place: snapshot.Bucket(k, s.size)})
			}
		}
		return snapshot.Snapshot{Layers: layers}
	default:
		return snapshot.Of(s.seq)
	}
}
