// Package snapshot packages the current state of a running algorithm into a
// render-ready description.
//
// A [Snapshot] is a list of layers. Each layer pairs a collection of values
// with a [Placement] that maps an index inside that collection to the
// position the value occupies in the fully reassembled sequence. Single
// collection algorithms produce one identity layer; bucket sort produces one
// layer per bucket so every element can be drawn at its globally meaningful
// position while the buckets are still being sorted independently.
//
// Snapshots are views, not copies. They are only valid until the algorithm
// that produced them is resumed again, and renderers must treat them as
// read-only.
package snapshot

// Placement maps a local index within a layer to a global position.
type Placement func(local int) int

// Identity is the placement of a collection that is the sequence itself.
func Identity(local int) int { return local }

// Offset returns a placement that shifts local indices by k.
func Offset(k int) Placement {
	if k == 0 {
		return Identity
	}
	return func(local int) int { return k + local }
}

// Bucket returns the placement of the bucket at index, where each bucket
// covers size positions of the final sequence.
func Bucket(index, size int) Placement {
	return Offset(index * size)
}

// Layer is one collection to render together with its placement.
type Layer struct {
	Values []int
	Place  Placement
}

// Snapshot is the set of layers that should currently be rendered.
type Snapshot struct {
	Layers []Layer
}

// Of returns a snapshot of a single collection rendered in place.
func Of(values []int) Snapshot {
	return Snapshot{Layers: []Layer{{Values: values, Place: Identity}}}
}

// Tail returns a snapshot of values[from:] rendered at their original
// positions.
func Tail(values []int, from int) Layer {
	if from > len(values) {
		from = len(values)
	}
	return Layer{Values: values[from:], Place: Offset(from)}
}

// WithBuckets returns a snapshot made of the base layers followed by one
// layer per bucket, each placed by [Bucket] with the given size.
func WithBuckets(buckets [][]int, size int, base ...Layer) Snapshot {
	layers := make([]Layer, 0, len(base)+len(buckets))
	layers = append(layers, base...)
	for k, b := range buckets {
		if len(b) == 0 {
			continue
		}
		layers = append(layers, Layer{Values: b, Place: Bucket(k, size)})
	}
	return Snapshot{Layers: layers}
}

// Len returns the total number of rendered points.
func (s Snapshot) Len() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Values)
	}
	return n
}

// Each calls fn for every rendered point with its global position.
func (s Snapshot) Each(fn func(pos, value int)) {
	for _, l := range s.Layers {
		place := l.Place
		if place == nil {
			place = Identity
		}
		for i, v := range l.Values {
			fn(place(i), v)
		}
	}
}

// Values returns a flattened copy of every rendered value in layer order.
func (s Snapshot) Values() []int {
	out := make([]int, 0, s.Len())
	for _, l := range s.Layers {
		out = append(out, l.Values...)
	}
	return out
}
