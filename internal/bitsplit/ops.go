package bitsplit

// Ops is the capability set the split scan needs from an integer
// representation. Implementations treat values as immutable: every method
// returns a fresh value and never modifies its arguments.
type Ops[T any] interface {
	Zero() T
	IsZero(x T) bool
	// Bit returns bit i of x, i=0 being the least significant.
	Bit(x T, i int) uint
	Len(x T) int
	OnesCount(x T) int
	TrailingZeros(x T) int
	Lsh(x T, n int) T
	Rsh(x T, n int) T
	And(x, y T) T
	Or(x, y T) T
	Xor(x, y T) T
	ClearBit(x T, i int) T
	// LowMask returns (1<<n)-1, truncated to the representation width.
	LowMask(n int) T
	// Candidates returns the inner split candidates of s, see doc.go
	Candidates(s T) T
}

// Split returns the position of the lowest bit of the left child of s. ok is
// false when s has no children (s <= 1).
func Split[T any, O Ops[T]](o O, s T) (pos int, ok bool) {
	n := o.Len(s)
	if n <= 1 {
		return 0, false
	}

	// ...10, the right child is a single leaf
	if o.Bit(s, 1) == 1 && o.Bit(s, 0) == 0 {
		return 2, true
	}

	candidates := o.Candidates(s)
	structure := s
	shift := 0

	// moving from right to left
	for !o.IsZero(candidates) {
		t := o.TrailingZeros(candidates)
		structure = o.Rsh(structure, t-shift)
		shift = t
		if Balanced(o, structure) {
			return t, true
		}
		candidates = o.ClearBit(candidates, t)
	}

	// the left child is the top leaf
	return n - 1, true
}

// Balanced reports whether x has exactly one more leaf than branches, which
// is necessary (but not sufficient) for x to be a complete tree.
func Balanced[T any, O Ops[T]](o O, x T) bool {
	return o.Len(x)+1 == 2*o.OnesCount(x)
}

// WellFormed reports whether s is the encoding of exactly one non empty tree.
// Reading from the top bit, every branch must join two open subtrees and
// exactly one subtree must remain open at the end.
func WellFormed[T any, O Ops[T]](o O, s T) bool {
	if o.IsZero(s) || !Balanced(o, s) {
		return false
	}
	open := 0
	for i := o.Len(s) - 1; i >= 0; i-- {
		if o.Bit(s, i) == 1 {
			open++
			continue
		}
		if open < 2 {
			return false
		}
		open--
	}
	return open == 1
}

// Decompose returns the left and right children of s given the split position
// obtained from Split.
func Decompose[T any, O Ops[T]](o O, s T, pos int) (left, right T) {
	left = o.Rsh(s, pos)
	right = o.Rsh(o.And(s, o.LowMask(pos)), 1)
	return left, right
}

// Combine is the inverse of Decompose: it returns the branch over left and
// right. right must be non empty. Bits shifted beyond a fixed width are lost.
func Combine[T any, O Ops[T]](o O, left, right T) T {
	return o.Lsh(o.Or(o.Lsh(left, o.Len(right)), right), 1)
}

// prefixCandidates builds the candidate mask from the prefix mask identity,
// shifting a copy of s rather than the mask.
func prefixCandidates[T any, O Ops[T]](o O, s T) T {
	// [0]11
	candidates := o.LowMask(o.Len(s))
	candidates = o.Xor(candidates, s)

	// [0]11 & 0[1]1 => [01]1
	s = o.Lsh(s, 1)
	candidates = o.And(candidates, s)

	// [01]1 & 01[1] => [011]
	s = o.Lsh(s, 1)
	return o.And(candidates, s)
}
