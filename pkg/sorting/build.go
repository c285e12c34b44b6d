package sorting

import (
	"math/rand/v2"

	"github.com/matzehuels/sortwheel/pkg/sequence"
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// builder writes seq[i] = i, one position per unit.
type builder struct {
	seq sequence.Sequence
	i   int
}

// newBuilder settles sequences of length 0 and 1 up front, so they complete
// on the first Resume without doing a unit of work.
func newBuilder(seq sequence.Sequence) *builder {
	b := &builder{seq: seq}
	if len(seq) == 1 {
		seq[0] = 0
		b.i = 1
	}
	return b
}

func (b *builder) step() bool {
	if b.i >= len(b.seq) {
		return false
	}
	b.seq[b.i] = b.i
	b.i++
	return true
}

func (b *builder) snapshot() snapshot.Snapshot {
	return snapshot.Of(b.seq[:b.i])
}

// shuffler is a Fisher-Yates shuffle walking from the last position down,
// one swap per unit.
type shuffler struct {
	seq sequence.Sequence
	i   int
	rng *rand.Rand
}

func newShuffler(seq sequence.Sequence, seed uint64) *shuffler {
	return &shuffler{
		seq: seq,
		i:   len(seq) - 1,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *shuffler) step() bool {
	if s.i <= 0 {
		return false
	}
	j := s.rng.IntN(s.i + 1)
	s.seq.Swap(s.i, j)
	s.i--
	return true
}

func (s *shuffler) snapshot() snapshot.Snapshot {
	return snapshot.Of(s.seq)
}
