package dycktesting

import (
	"math/big"
	"math/bits"
	"math/rand"
	"slices"
)

// MaxEnumerableLeaves bounds AllTrees, a tree with n leaves needs 2n-1 bits.
const MaxEnumerableLeaves = 32

// AllTrees returns the encoding of every tree shape with up to maxLeaves
// leaves, including the empty tree (0) and the single leaf (1). Shapes are
// ordered by leaf count, then by value.
//
// The shapes for n leaves are built from every (left, right) pair of shapes
// whose leaf counts sum to n, so the size of the result grows with the
// Catalan numbers. Beyond 14 or so leaves this is very slow.
func AllTrees(maxLeaves int) []uint64 {
	if maxLeaves > MaxEnumerableLeaves {
		maxLeaves = MaxEnumerableLeaves
	}
	if maxLeaves < 0 {
		return nil
	}

	byLeaves := [][]uint64{{0}}
	if maxLeaves >= 1 {
		byLeaves = append(byLeaves, []uint64{1})
	}

	for n := 2; n <= maxLeaves; n++ {
		seen := map[uint64]struct{}{}
		var shapes []uint64
		for left := 1; left < n; left++ {
			right := n - left
			for _, l := range byLeaves[left] {
				for _, r := range byLeaves[right] {
					s := (l<<(2*right-1) | r) << 1
					if _, ok := seen[s]; ok {
						continue
					}
					seen[s] = struct{}{}
					shapes = append(shapes, s)
				}
			}
		}
		slices.Sort(shapes)
		byLeaves = append(byLeaves, shapes)
	}

	var all []uint64
	for _, shapes := range byLeaves {
		all = append(all, shapes...)
	}
	return all
}

// TreesWithLeaves returns every shape with exactly n leaves, ordered by value.
func TreesWithLeaves(n int) []uint64 {
	var shapes []uint64
	for _, s := range AllTrees(n) {
		if bits.OnesCount64(s) == n {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// RandomTree returns a uniformly split random shape with the requested number
// of leaves. It is used to exercise sizes far beyond what AllTrees can reach.
func RandomTree(r *rand.Rand, leaves int) *big.Int {
	switch {
	case leaves <= 0:
		return new(big.Int)
	case leaves == 1:
		return big.NewInt(1)
	}
	left := 1 + r.Intn(leaves-1)
	l := RandomTree(r, left)
	rt := RandomTree(r, leaves-left)

	s := new(big.Int).Lsh(l, uint(rt.BitLen()))
	s.Or(s, rt)
	return s.Lsh(s, 1)
}
