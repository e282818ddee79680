package bitsplit

/*

# Finding the left/right boundary of a Dyck encoded tree

A binary tree shape is encoded as the *post order* traversal of its nodes,
read from the most significant bit: a leaf is a 1, a branch is a 0 which joins
the two subtrees immediately preceding it. So the shapes with up to three
leaves are

	leaves  shape          encoding
	0       (empty)        0
	1       a              1
	2       (a b)          110
	3       ((a b) c)      11010
	3       (a (b c))      11100

and in general, for a branch over l and r,

	combine(l, r) = ((l << bitlen(r)) | r) << 1

A complete tree with n leaves is 2n-1 bits long, has n bits set and its top
bit is always set (it is the left most leaf).

Given the encoding s of a branch, we want the position of the lowest bit of its
left child. Everything at or above that bit is the left child, everything
between it and bit 0 is the right child, and bit 0 is the branch itself.

	s = 1 11010 1101100 0 0       (15 bits, 8 leaves)
	    ^ ^                ^ ^
	    | |                | branch
	    | '--- right ------'
	    left (a single leaf)

Navigating naively requires a depth counter walked over every bit. Instead we
observe where a split *can* be. The right child, unless it is a single leaf,
begins with two leaves (the deepest left most pair), so its first two bits are
11. The left child, unless it is a single leaf, ends with a branch, a 0. A
split inside s is therefore always at a 0 which is immediately followed
(reading downwards) by 11. We call these the candidates:

	candidates = ^s & s<<1 & s<<2     (restricted to bits below the top of s)

	s          = 1 11010 1101100 00
	candidates = 0 00001 0010000 00

The right child trivially being a single leaf is recognised by s ending in 10,
and the split is then bit 2.

Candidates are then visited from the least significant upwards. A candidate t
is the split exactly when s >> t is itself a complete tree, which we test with
the counts alone

	bitlen(s >> t) + 1 == 2 * popcount(s >> t)

because s >> t is a prefix of the post order walk, and every proper prefix
ending inside the right child leaves at least two open subtrees. Candidates
inside the right child are therefore rejected, and the first candidate which
passes is the split. When no candidates remain the left child must be the
single leaf at the top of s.

In the example above, s >> 6 = 111010110 has 6 bits set over 9 bits and is
rejected, s >> 9 = 111010 has 4 bits set over 6 bits and is rejected, so the
left child is the top leaf and the split is bit 14.

# Representations

The same scan is instantiated for

  - native words (8, 16, 32, 64 bits and the platform uint / uintptr), which
    compute the candidates directly with shifts of s,
  - 128 bit words (lukechampine.com/uint128), computed the same way,
  - 512 bit fixed width integers (uint512.Uint512), and
  - arbitrary precision integers (*big.Int).

For the last two the candidate mask is built once from the prefix mask
identity ((1 << bitlen(s)) - 1) ^ s, and the structure copy is shifted lazily,
by the distance from the previous candidate, rather than re-shifting s for
every candidate.

All of the functions in this package place a burden of knowledge on the
caller: s must be a complete, well formed encoding. The checked entry points
live in the split package.
*/
