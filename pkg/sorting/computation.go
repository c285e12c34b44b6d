package sorting

import (
	"github.com/matzehuels/sortwheel/pkg/snapshot"
)

// Computation is one in-progress run of one algorithm over a sequence.
type Computation interface {
	// Algorithm returns the canonical id of the running algorithm.
	Algorithm() ID

	// Resume performs at most one quantum of work. Once Done has been
	// reported, further calls do nothing and report Done again.
	Resume() Step

	// Stats returns the work performed so far.
	Stats() Stats
}

// Step is the outcome of a single Resume call.
type Step struct {
	Snapshot snapshot.Snapshot
	Done     bool
}

// Stats counts the work a computation has performed.
type Stats struct {
	Units       int  // comparisons, shifts, swaps and writes
	Suspensions int  // Resume calls that ended on a full quantum
	Done        bool // whether the algorithm has completed
}

// machine is an algorithm rewritten as a state machine.
type machine interface {
	// step performs exactly one unit of work and returns true, or returns
	// false without touching the data when no work is left.
	step() bool

	// snapshot describes the current state.
	snapshot() snapshot.Snapshot
}

// computation meters a machine into quanta.
type computation struct {
	id      ID
	quantum int
	count   int
	stats   Stats
	m       machine
}

func newComputation(id ID, quantum int, m machine) *computation {
	return &computation{id: id, quantum: quantum, m: m}
}

func (c *computation) Algorithm() ID { return c.id }

func (c *computation) Stats() Stats { return c.stats }

func (c *computation) Resume() Step {
	if c.stats.Done {
		return Step{Snapshot: c.m.snapshot(), Done: true}
	}
	for {
		if !c.m.step() {
			c.stats.Done = true
			c.count = 0
			return Step{Snapshot: c.m.snapshot(), Done: true}
		}
		c.stats.Units++
		c.count++
		if c.count >= c.quantum {
			c.count = 0
			c.stats.Suspensions++
			return Step{Snapshot: c.m.snapshot()}
		}
	}
}
