// Package dyck holds binary tree shapes as Dyck paths together with the
// sequence of leaf payloads, and provides a Cursor for walking them.
//
// A path is read from its most significant bit in postorder. A 1 is a leaf
// and a 0 is a branch joining the two subtrees before it:
//
//	(a (b c))        1 1 1 0 0
//	((a b) c)        1 1 0 1 0
//	((a b) (c d))    1 1 0 1 1 0 0
//
// A tree of n leaves takes 2n-1 bits, n of them set. The leaves are given
// in the same left to right order as the set bits.
//
// Paths of up to PathBits bits are held in a uint64 (Bounded), longer ones
// in a big.Int (Unbounded). New picks the representation from the number of
// 32 bit words supplied. The cursor works the same way over either, dropping
// to machine word arithmetic whenever the subtree it is focused on fits in
// one.
//
// Construction only checks that there are enough leaves for the set bits.
// Encoding.Root checks the path is exactly one complete tree, after which
// each step of the cursor costs a single split.
package dyck
