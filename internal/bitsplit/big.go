package bitsplit

import (
	"math/big"
	"math/bits"
)

var bigOne = big.NewInt(1)

// BigOps is the unbounded representation. Every operation allocates its
// result; arguments are never modified. Only non negative values are
// meaningful.
type BigOps struct{}

func (BigOps) Zero() *big.Int { return new(big.Int) }
func (BigOps) IsZero(x *big.Int) bool { return x.Sign() == 0 }
func (BigOps) Bit(x *big.Int, i int) uint { return x.Bit(i) }
func (BigOps) Len(x *big.Int) int { return x.BitLen() }

func (BigOps) OnesCount(x *big.Int) (n int) {
	for _, w := range x.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}

func (BigOps) TrailingZeros(x *big.Int) int { return int(x.TrailingZeroBits()) }
func (BigOps) Lsh(x *big.Int, n int) *big.Int { return new(big.Int).Lsh(x, uint(n)) }
func (BigOps) Rsh(x *big.Int, n int) *big.Int { return new(big.Int).Rsh(x, uint(n)) }
func (BigOps) And(x, y *big.Int) *big.Int { return new(big.Int).And(x, y) }
func (BigOps) Or(x, y *big.Int) *big.Int { return new(big.Int).Or(x, y) }
func (BigOps) Xor(x, y *big.Int) *big.Int { return new(big.Int).Xor(x, y) }
func (BigOps) ClearBit(x *big.Int, i int) *big.Int { return new(big.Int).SetBit(x, i, 0) }

func (BigOps) LowMask(n int) *big.Int {
	m := new(big.Int).Lsh(bigOne, uint(n))
	return m.Sub(m, bigOne)
}

func (o BigOps) Candidates(s *big.Int) *big.Int {
	return prefixCandidates(o, s)
}

// SplitBig is Split specialised for arbitrary precision integers.
func SplitBig(s *big.Int) (int, bool) {
	return Split(BigOps{}, s)
}
