package dyck

import "slices"

// Leaves is an immutable sequence of leaf payloads, one for each set bit of a
// path, ordered from the most significant bit. Encodings derived from one
// another share the same backing array.
type Leaves[L any] struct {
	items []L
}

// NewLeaves copies items once; the result is never modified afterwards.
func NewLeaves[L any](items ...L) Leaves[L] {
	return Leaves[L]{items: slices.Clone(items)}
}

func (l Leaves[L]) Len() int { return len(l.items) }

// At returns the i'th leaf.
func (l Leaves[L]) At(i int) (L, bool) {
	if i < 0 || i >= len(l.items) {
		var zero L
		return zero, false
	}
	return l.items[i], true
}

// All returns a copy of the leaves.
func (l Leaves[L]) All() []L {
	return slices.Clone(l.items)
}

// share returns leaves [i, j) backed by the same array. The capacity is
// clipped so the shared array can never be appended to.
func (l Leaves[L]) share(i, j int) Leaves[L] {
	return Leaves[L]{items: l.items[i:j:j]}
}
