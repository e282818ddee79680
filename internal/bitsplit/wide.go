package bitsplit

import (
	"lukechampine.com/uint128"

	"github.com/forestrie/go-dyck/uint512"
)

// Uint128Ops treats a 128 bit word like a native word.
type Uint128Ops struct{}

func (Uint128Ops) Zero() uint128.Uint128 { return uint128.Zero }
func (Uint128Ops) IsZero(x uint128.Uint128) bool { return x.IsZero() }
func (Uint128Ops) Bit(x uint128.Uint128, i int) uint {
	return uint(x.Rsh(uint(i)).Lo & 1)
}
func (Uint128Ops) Len(x uint128.Uint128) int { return x.Len() }
func (Uint128Ops) OnesCount(x uint128.Uint128) int { return x.OnesCount() }
func (Uint128Ops) TrailingZeros(x uint128.Uint128) int { return x.TrailingZeros() }
func (Uint128Ops) Lsh(x uint128.Uint128, n int) uint128.Uint128 { return x.Lsh(uint(n)) }
func (Uint128Ops) Rsh(x uint128.Uint128, n int) uint128.Uint128 { return x.Rsh(uint(n)) }
func (Uint128Ops) And(x, y uint128.Uint128) uint128.Uint128 { return x.And(y) }
func (Uint128Ops) Or(x, y uint128.Uint128) uint128.Uint128 { return x.Or(y) }
func (Uint128Ops) Xor(x, y uint128.Uint128) uint128.Uint128 { return x.Xor(y) }
func (Uint128Ops) ClearBit(x uint128.Uint128, i int) uint128.Uint128 {
	return x.Xor(uint128.From64(1).Lsh(uint(i)))
}

func (Uint128Ops) LowMask(n int) uint128.Uint128 {
	if n >= 128 {
		return uint128.Max
	}
	return uint128.From64(1).Lsh(uint(n)).SubWrap64(1)
}

func (o Uint128Ops) Candidates(s uint128.Uint128) uint128.Uint128 {
	notS := s.Xor(uint128.Max)
	return notS.And(s.Lsh(1)).And(s.Lsh(2)).And(o.LowMask(o.Len(s)))
}

// Uint512Ops uses the prefix mask construction, as the shifts of a 512 bit
// value are comparatively expensive.
type Uint512Ops struct{}

func (Uint512Ops) Zero() uint512.Uint512 { return uint512.Zero }
func (Uint512Ops) IsZero(x uint512.Uint512) bool { return x.IsZero() }
func (Uint512Ops) Bit(x uint512.Uint512, i int) uint { return x.Bit(i) }
func (Uint512Ops) Len(x uint512.Uint512) int { return x.Len() }
func (Uint512Ops) OnesCount(x uint512.Uint512) int { return x.OnesCount() }
func (Uint512Ops) TrailingZeros(x uint512.Uint512) int { return x.TrailingZeros() }
func (Uint512Ops) Lsh(x uint512.Uint512, n int) uint512.Uint512 { return x.Lsh(uint(n)) }
func (Uint512Ops) Rsh(x uint512.Uint512, n int) uint512.Uint512 { return x.Rsh(uint(n)) }
func (Uint512Ops) And(x, y uint512.Uint512) uint512.Uint512 { return x.And(y) }
func (Uint512Ops) Or(x, y uint512.Uint512) uint512.Uint512 { return x.Or(y) }
func (Uint512Ops) Xor(x, y uint512.Uint512) uint512.Uint512 { return x.Xor(y) }
func (Uint512Ops) ClearBit(x uint512.Uint512, i int) uint512.Uint512 { return x.SetBit(i, 0) }

func (Uint512Ops) LowMask(n int) uint512.Uint512 {
	return uint512.From64(1).Lsh(uint(n)).SubWrap64(1)
}

func (o Uint512Ops) Candidates(s uint512.Uint512) uint512.Uint512 {
	return prefixCandidates(o, s)
}

// SplitUint128 is Split specialised for 128 bit words.
func SplitUint128(s uint128.Uint128) (int, bool) {
	return Split(Uint128Ops{}, s)
}

// SplitUint512 is Split specialised for 512 bit words.
func SplitUint512(s uint512.Uint512) (int, bool) {
	return Split(Uint512Ops{}, s)
}
