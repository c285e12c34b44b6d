// Package sorting implements the sequence mutator algorithms as resumable
// computations.
//
// Every algorithm is rewritten as an explicit state machine: loop indices,
// gap sizes, partition boundaries and pending sub-ranges live in struct
// fields instead of on the call stack. A machine advances one unit of work
// (one comparison, shift or swap) at a time, so it can stop between any two
// units and continue later without repeating or skipping work.
//
// A [Computation] groups units into quanta. [Computation.Resume] performs
// units until the quantum is used up, in which case it suspends, or until the
// algorithm runs out of work, in which case it reports completion. Both
// outcomes carry a [snapshot.Snapshot] of the current state:
//
//	c, err := sorting.New(sorting.PartitionSort, seq, 500)
//	if err != nil {
//	    return err
//	}
//	for {
//	    step := c.Resume()
//	    render(step.Snapshot)
//	    if step.Done {
//	        break
//	    }
//	}
//
// Recursive algorithms (merge sort, partition sort) keep an explicit stack of
// pending ranges and visit them depth first, left before right, exactly as
// the recursive definitions would.
//
// Computations are not safe for concurrent use. A computation is owned by
// whoever drives it, and so is the sequence it mutates.
package sorting
