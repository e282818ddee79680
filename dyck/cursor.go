package dyck

import "fmt"

// Cursor focuses on one subtree of an Encoding, the bits [lo, hi) of its
// path. Cursors are values: stepping returns a new Cursor and never changes
// the receiver. Each cursor keeps its parent so that Up can retrace the
// steps taken from the root.
//
// Given the path of ((a b) c), 11010:
//
//	bit     4 3 2 1 0
//	path    1 1 0 1 0
//	left    a b .        [2, 5)
//	right         c      [1, 2)
//	root    . . . . .    [0, 5)
//
// The bit at lo is the branch joining the children, the right child starts
// immediately above it and the left child starts at the split position.
type Cursor[L any] struct {
	enc    *Encoding[L]
	view   pathView
	lo, hi int
	depth  int
	parent *Cursor[L]
}

// Root returns a cursor on the whole tree. The path is checked once, here,
// for being exactly one complete tree. Every step taken from the returned
// cursor relies on that check.
func (e *Encoding[L]) Root() (Cursor[L], error) {
	view := e.view()
	n := view.bitLen()
	if n == 0 {
		return Cursor[L]{}, ErrEmptyPath
	}
	if !view.wellFormed() {
		return Cursor[L]{}, fmt.Errorf("%w: %d bits with %d set", ErrMalformedPath, n, view.onesAbove(0))
	}
	return Cursor[L]{enc: e, view: view, lo: 0, hi: n}, nil
}

func (c Cursor[L]) IsLeaf() bool { return c.hi-c.lo == 1 }

// IsRoot is true if the cursor has no parent.
func (c Cursor[L]) IsRoot() bool { return c.parent == nil }

// Depth is the number of steps from the root.
func (c Cursor[L]) Depth() int { return c.depth }

// Span returns the bit range [lo, hi) of the focused subtree.
func (c Cursor[L]) Span() (lo, hi int) { return c.lo, c.hi }

// LeafIndex is the index, into the encoding leaves, of the first leaf of the
// focused subtree.
func (c Cursor[L]) LeafIndex() int { return c.view.onesAbove(c.hi) }

// LeafCount is the number of leaves in the focused subtree.
func (c Cursor[L]) LeafCount() int { return (c.hi - c.lo + 1) / 2 }

// Leaf returns the payload of the focused leaf.
func (c Cursor[L]) Leaf() (L, error) {
	var zero L
	if !c.IsLeaf() {
		return zero, ErrNotLeaf
	}
	i := c.LeafIndex()
	leaf, ok := c.enc.Leaves().At(i)
	if !ok {
		return zero, fmt.Errorf("%w: index %d of %d", ErrLeafMissing, i, c.enc.Leaves().Len())
	}
	return leaf, nil
}

func (c Cursor[L]) Left() (Cursor[L], error) {
	t, err := c.split()
	if err != nil {
		return Cursor[L]{}, err
	}
	return c.child(c.lo+t, c.hi), nil
}

func (c Cursor[L]) Right() (Cursor[L], error) {
	t, err := c.split()
	if err != nil {
		return Cursor[L]{}, err
	}
	return c.child(c.lo+1, c.lo+t), nil
}

// Children returns both children for the cost of one split.
func (c Cursor[L]) Children() (left, right Cursor[L], err error) {
	t, err := c.split()
	if err != nil {
		return Cursor[L]{}, Cursor[L]{}, err
	}
	return c.child(c.lo+t, c.hi), c.child(c.lo+1, c.lo+t), nil
}

func (c Cursor[L]) Up() (Cursor[L], error) {
	if c.parent == nil {
		return Cursor[L]{}, ErrAtRoot
	}
	return *c.parent, nil
}

// Subtree returns the focused subtree as an Encoding of its own. The leaves
// are shared with the receiver's encoding, not copied. The result is
// Bounded if the subtree path fits in PathBits.
func (c Cursor[L]) Subtree() *Encoding[L] {
	first := c.LeafIndex()
	last := first + c.LeafCount()
	if n := c.enc.Leaves().Len(); last > n {
		last = n
	}
	leaves := c.enc.Leaves().share(first, last)

	if c.hi-c.lo <= PathBits {
		return FromBounded(newBoundedUnchecked(c.view.extract64(c.lo, c.hi), leaves))
	}
	return FromUnbounded(newUnboundedUnchecked(c.view.extract(c.lo, c.hi), leaves))
}

func (c Cursor[L]) String() string {
	return fmt.Sprintf("[%d, %d) depth %d", c.lo, c.hi, c.depth)
}

func (c Cursor[L]) split() (int, error) {
	if c.IsLeaf() {
		return 0, ErrLeafHasNoChildren
	}
	t, ok := c.view.split(c.lo, c.hi)
	if !ok {
		// not reachable from a well formed root
		return 0, fmt.Errorf("%w: no split in [%d, %d)", ErrMalformedPath, c.lo, c.hi)
	}
	return t, nil
}

func (c Cursor[L]) child(lo, hi int) Cursor[L] {
	parent := c
	return Cursor[L]{enc: c.enc, view: c.view, lo: lo, hi: hi, depth: c.depth + 1, parent: &parent}
}
