package dyck

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/forestrie/go-dyck/internal/bitsplit"
)

// PathBits is the width of a Bounded path.
const PathBits = 64

// WordBits is the width of the words accepted by New.
const WordBits = 32

type Kind uint8

const (
	KindBounded   Kind = 1
	KindUnbounded Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindBounded:
		return "bounded"
	case KindUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Bounded is a path which fits a machine word, and its leaves.
type Bounded[L any] struct {
	path   uint64
	leaves Leaves[L]
}

// NewBounded returns ErrInvalidStructure if the path has more leaves (set
// bits) than provided.
func NewBounded[L any](path uint64, leaves Leaves[L]) (*Bounded[L], error) {
	if bits.OnesCount64(path) > leaves.Len() {
		return nil, fmt.Errorf("%w: %d set bits, %d leaves", ErrInvalidStructure, bits.OnesCount64(path), leaves.Len())
	}
	return newBoundedUnchecked(path, leaves), nil
}

// newBoundedUnchecked requires popcount(path) <= leaves.Len()
func newBoundedUnchecked[L any](path uint64, leaves Leaves[L]) *Bounded[L] {
	return &Bounded[L]{path: path, leaves: leaves}
}

func (b *Bounded[L]) Path() uint64 { return b.path }
func (b *Bounded[L]) Leaves() Leaves[L] { return b.leaves }

// Unbounded is a path of any length, and its leaves.
type Unbounded[L any] struct {
	path   *big.Int
	leaves Leaves[L]
}

// NewUnbounded copies path. It returns ErrInvalidStructure if the path has
// more leaves (set bits) than provided.
func NewUnbounded[L any](path *big.Int, leaves Leaves[L]) (*Unbounded[L], error) {
	if path.Sign() < 0 {
		return nil, ErrNegativePath
	}
	ones := bitsplit.BigOps{}.OnesCount(path)
	if ones > leaves.Len() {
		return nil, fmt.Errorf("%w: %d set bits, %d leaves", ErrInvalidStructure, ones, leaves.Len())
	}
	return newUnboundedUnchecked(new(big.Int).Set(path), leaves), nil
}

// newUnboundedUnchecked takes ownership of path and requires
// popcount(path) <= leaves.Len()
func newUnboundedUnchecked[L any](path *big.Int, leaves Leaves[L]) *Unbounded[L] {
	return &Unbounded[L]{path: path, leaves: leaves}
}

// Path returns a copy of the path.
func (u *Unbounded[L]) Path() *big.Int { return new(big.Int).Set(u.path) }
func (u *Unbounded[L]) Leaves() Leaves[L] { return u.leaves }

// Encoding is exactly one of a Bounded or an Unbounded path, with its leaves.
// The zero Encoding has neither. It behaves as an empty path with no leaves
// and its Kind is 0.
type Encoding[L any] struct {
	bounded   *Bounded[L]
	unbounded *Unbounded[L]
}

// New packs the path words, most significant first, into a Bounded path if
// they fit in PathBits, otherwise into an Unbounded path.
//
// For example, New([]uint32{0b11100}, NewLeaves("a", "b", "c")) is the tree
// (a (b c)).
func New[L any](words []uint32, leaves Leaves[L]) (*Encoding[L], error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	ones := 0
	for _, w := range words {
		ones += bits.OnesCount32(w)
	}
	if ones > leaves.Len() {
		return nil, fmt.Errorf("%w: %d set bits, %d leaves", ErrInvalidStructure, ones, leaves.Len())
	}
	return newUnchecked(words, leaves), nil
}

// newUnchecked is New without the leaf count check, which the caller has
// already made.
func newUnchecked[L any](words []uint32, leaves Leaves[L]) *Encoding[L] {
	if len(words)*WordBits <= PathBits {
		return FromBounded(newBoundedUnchecked(packWords(words), leaves))
	}
	return FromUnbounded(newUnboundedUnchecked(packWordsBig(words), leaves))
}

func packWords(words []uint32) uint64 {
	var path uint64
	for _, w := range words {
		path = path<<WordBits | uint64(w)
	}
	return path
}

func packWordsBig(words []uint32) *big.Int {
	path := new(big.Int)
	for _, w := range words {
		path.Lsh(path, WordBits)
		path.Or(path, big.NewInt(int64(w)))
	}
	return path
}

func FromBounded[L any](b *Bounded[L]) *Encoding[L] {
	return &Encoding[L]{bounded: b}
}

func FromUnbounded[L any](u *Unbounded[L]) *Encoding[L] {
	return &Encoding[L]{unbounded: u}
}

func (e *Encoding[L]) Kind() Kind {
	switch {
	case e.bounded != nil:
		return KindBounded
	case e.unbounded != nil:
		return KindUnbounded
	}
	return 0
}

func (e *Encoding[L]) Bounded() (*Bounded[L], bool) {
	return e.bounded, e.bounded != nil
}

func (e *Encoding[L]) Unbounded() (*Unbounded[L], bool) {
	return e.unbounded, e.unbounded != nil
}

func (e *Encoding[L]) Leaves() Leaves[L] {
	switch {
	case e.bounded != nil:
		return e.bounded.leaves
	case e.unbounded != nil:
		return e.unbounded.leaves
	}
	return Leaves[L]{}
}

// Path returns the path as a big.Int whatever the representation.
func (e *Encoding[L]) Path() *big.Int {
	switch {
	case e.bounded != nil:
		return new(big.Int).SetUint64(e.bounded.path)
	case e.unbounded != nil:
		return e.unbounded.Path()
	}
	return new(big.Int)
}

// BitLen is the length of the path, 2n-1 for a tree with n leaves.
func (e *Encoding[L]) BitLen() int {
	return e.view().bitLen()
}

// LeafCount is the number of leaves the path uses, which may be fewer than
// Leaves().Len()
func (e *Encoding[L]) LeafCount() int {
	return e.view().onesAbove(0)
}

// Words returns the path as big endian words, as accepted by New. The
// representation is preserved: an unbounded path is always given more than
// PathBits worth of words.
func (e *Encoding[L]) Words() []uint32 {
	path := e.Path()
	n := (path.BitLen() + WordBits - 1) / WordBits
	if n == 0 {
		n = 1
	}
	if e.unbounded != nil && n*WordBits <= PathBits {
		n = PathBits/WordBits + 1
	}
	words := make([]uint32, n)
	mask := big.NewInt(1<<WordBits - 1)
	for i := n - 1; i >= 0; i-- {
		words[i] = uint32(new(big.Int).And(path, mask).Uint64())
		path.Rsh(path, WordBits)
	}
	return words
}

func (e *Encoding[L]) String() string {
	return fmt.Sprintf("%s(%s, %d leaves)", e.Kind(), e.Path().Text(2), e.Leaves().Len())
}

func (e *Encoding[L]) view() pathView {
	switch {
	case e.bounded != nil:
		return boundedPath(e.bounded.path)
	case e.unbounded != nil:
		return unboundedPath{e.unbounded.path}
	}
	return boundedPath(0)
}
