package dyck

import (
	"math/big"
	"math/bits"

	"github.com/forestrie/go-dyck/internal/bitsplit"
)

// pathView gives the cursor uniform access to either path representation.
// Ranges are [lo, hi) bit positions, 0 being the least significant bit.
type pathView interface {
	bitLen() int
	// onesAbove counts the set bits at positions >= i. As leaves are ordered
	// from the most significant bit, this is the index of the first leaf at
	// or below i.
	onesAbove(i int) int
	// split returns the split position of the subtree at [lo, hi), relative
	// to lo. The range must hold a well formed subtree.
	split(lo, hi int) (int, bool)
	wellFormed() bool
	// extract64 requires hi-lo <= PathBits
	extract64(lo, hi int) uint64
	extract(lo, hi int) *big.Int
}

type boundedPath uint64

func (p boundedPath) bitLen() int { return bits.Len64(uint64(p)) }

func (p boundedPath) onesAbove(i int) int {
	if i >= PathBits {
		return 0
	}
	return bits.OnesCount64(uint64(p) >> uint(i))
}

func (p boundedPath) split(lo, hi int) (int, bool) {
	return bitsplit.SplitNative(p.extract64(lo, hi))
}

func (p boundedPath) wellFormed() bool {
	return bitsplit.WellFormed(bitsplit.NativeOps[uint64]{}, uint64(p))
}

func (p boundedPath) extract64(lo, hi int) uint64 {
	return uint64(p) >> uint(lo) & bitsplit.NativeOps[uint64]{}.LowMask(hi-lo)
}

func (p boundedPath) extract(lo, hi int) *big.Int {
	return new(big.Int).SetUint64(p.extract64(lo, hi))
}

// unboundedPath never modifies p.
type unboundedPath struct {
	p *big.Int
}

func (p unboundedPath) bitLen() int { return p.p.BitLen() }

func (p unboundedPath) onesAbove(i int) int {
	o := bitsplit.BigOps{}
	return o.OnesCount(o.Rsh(p.p, i))
}

// split drops to machine words once the subtree fits in one.
func (p unboundedPath) split(lo, hi int) (int, bool) {
	if hi-lo <= PathBits {
		return bitsplit.SplitNative(p.extract64(lo, hi))
	}
	return bitsplit.SplitBig(p.extract(lo, hi))
}

func (p unboundedPath) wellFormed() bool {
	return bitsplit.WellFormed(bitsplit.BigOps{}, p.p)
}

func (p unboundedPath) extract64(lo, hi int) uint64 {
	return p.extract(lo, hi).Uint64()
}

func (p unboundedPath) extract(lo, hi int) *big.Int {
	o := bitsplit.BigOps{}
	return o.And(o.Rsh(p.p, lo), o.LowMask(hi-lo))
}
