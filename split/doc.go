// Package split locates the boundary between the left and right children of a
// Dyck encoded tree, for native words, 128 and 512 bit words and arbitrary
// precision integers.
//
// Every entry point validates its argument and returns ErrInvalidStructure
// for anything that is not the encoding of exactly one tree. See
// internal/bitsplit for the encoding and the algorithm.
//
// In particular 10 is rejected. It is a branch with no children, and while
// the bare scan reports its split at bit 2 (a mask of 100), it does not
// encode a tree. The structures 0 (empty) and 1 (a single leaf) are valid
// and have no split, so they return a zero mask and no error.
package split
