package dycktesting

import "math/big"

// ReferenceSplit locates the split of s the slow and obvious way: it parses
// the post order walk with an explicit stack of subtree tops and reports the
// bit above the top of the right child of the root. ok is false when s has no
// children. s must be well formed.
func ReferenceSplit(s *big.Int) (pos int, ok bool) {
	n := s.BitLen()
	if n <= 1 {
		return 0, false
	}

	var tops []int
	// bit 0 is the root branch, stop before it
	for i := n - 1; i >= 1; i-- {
		if s.Bit(i) == 1 {
			tops = append(tops, i)
			continue
		}
		if len(tops) < 2 {
			return 0, false
		}
		// a branch spans from the top of its left child down to i
		tops = tops[:len(tops)-1]
	}
	if len(tops) != 2 {
		return 0, false
	}
	return tops[1] + 1, true
}

// ReferenceWellFormed reports whether s is exactly one complete tree.
func ReferenceWellFormed(s *big.Int) bool {
	if s.Sign() <= 0 {
		return false
	}
	depth := 0
	for i := s.BitLen() - 1; i >= 0; i-- {
		if s.Bit(i) == 1 {
			depth++
		} else {
			depth--
		}
		if depth < 1 {
			return false
		}
	}
	return depth == 1
}
