package uint512

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Limbs is the number of 64 bit words in a Uint512.
const Limbs = 8

// Bits is the width of a Uint512.
const Bits = 64 * Limbs

// Zero is a zero-valued Uint512.
var Zero Uint512

// Max is the largest possible Uint512 value.
var Max = Zero.Not()

// A Uint512 is an unsigned 512-bit number. Limb 0 is the least significant.
type Uint512 [Limbs]uint64

// From64 converts v to a Uint512 value.
func From64(v uint64) Uint512 {
	return Uint512{v}
}

// FromBig converts i to a Uint512 value. It panics if i is negative or
// overflows 512 bits. i is not modified.
func FromBig(i *big.Int) (u Uint512) {
	if i.Sign() < 0 {
		panic("value cannot be negative")
	} else if i.BitLen() > Bits {
		panic("value overflows Uint512")
	}
	var b [Bits / 8]byte
	i.FillBytes(b[:])
	for l := 0; l < Limbs; l++ {
		u[l] = binary.BigEndian.Uint64(b[(Limbs-1-l)*8:])
	}
	return u
}

// Big returns u as a *big.Int.
func (u Uint512) Big() *big.Int {
	var b [Bits / 8]byte
	for l := 0; l < Limbs; l++ {
		binary.BigEndian.PutUint64(b[(Limbs-1-l)*8:], u[l])
	}
	return new(big.Int).SetBytes(b[:])
}

// IsZero returns true if u == 0.
func (u Uint512) IsZero() bool {
	return u == Uint512{}
}

// Equals returns true if u == v.
func (u Uint512) Equals(v Uint512) bool {
	return u == v
}

// Equals64 returns true if u == v.
func (u Uint512) Equals64(v uint64) bool {
	return u == From64(v)
}

// Bit returns the value of the i'th bit of u. i=0 is the least significant
// bit. Bits beyond the width read as zero.
func (u Uint512) Bit(i int) uint {
	if i < 0 || i >= Bits {
		return 0
	}
	return uint(u[i/64]>>(uint(i)%64)) & 1
}

// SetBit returns u with the i'th bit set to b (0 or 1).
func (u Uint512) SetBit(i int, b uint) Uint512 {
	if i < 0 || i >= Bits {
		return u
	}
	mask := uint64(1) << (uint(i) % 64)
	if b == 0 {
		u[i/64] &^= mask
	} else {
		u[i/64] |= mask
	}
	return u
}

// And returns u&v.
func (u Uint512) And(v Uint512) (s Uint512) {
	for l := range u {
		s[l] = u[l] & v[l]
	}
	return s
}

// Or returns u|v.
func (u Uint512) Or(v Uint512) (s Uint512) {
	for l := range u {
		s[l] = u[l] | v[l]
	}
	return s
}

// Xor returns u^v.
func (u Uint512) Xor(v Uint512) (s Uint512) {
	for l := range u {
		s[l] = u[l] ^ v[l]
	}
	return s
}

// Not returns ^u.
func (u Uint512) Not() (s Uint512) {
	for l := range u {
		s[l] = ^u[l]
	}
	return s
}

// SubWrap64 returns u-v with wraparound semantics.
func (u Uint512) SubWrap64(v uint64) (s Uint512) {
	var borrow uint64
	s[0], borrow = bits.Sub64(u[0], v, 0)
	for l := 1; l < Limbs; l++ {
		s[l], borrow = bits.Sub64(u[l], 0, borrow)
	}
	return s
}

// Lsh returns u<<n. Shifts of Bits or more yield zero.
func (u Uint512) Lsh(n uint) (s Uint512) {
	if n >= Bits {
		return s
	}
	w, b := int(n/64), n%64
	for l := Limbs - 1; l >= w; l-- {
		s[l] = u[l-w] << b
		// for b == 0 the shift by 64 yields zero
		if l-w-1 >= 0 {
			s[l] |= u[l-w-1] >> (64 - b)
		}
	}
	return s
}

// Rsh returns u>>n. Shifts of Bits or more yield zero.
func (u Uint512) Rsh(n uint) (s Uint512) {
	if n >= Bits {
		return s
	}
	w, b := int(n/64), n%64
	for l := 0; l+w < Limbs; l++ {
		s[l] = u[l+w] >> b
		if l+w+1 < Limbs {
			s[l] |= u[l+w+1] << (64 - b)
		}
	}
	return s
}

// LeadingZeros returns the number of leading zero bits in u; the result is
// Bits for u == 0.
func (u Uint512) LeadingZeros() int {
	for l := Limbs - 1; l >= 0; l-- {
		if u[l] != 0 {
			return (Limbs-1-l)*64 + bits.LeadingZeros64(u[l])
		}
	}
	return Bits
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// Bits for u == 0.
func (u Uint512) TrailingZeros() int {
	for l := 0; l < Limbs; l++ {
		if u[l] != 0 {
			return l*64 + bits.TrailingZeros64(u[l])
		}
	}
	return Bits
}

// OnesCount returns the number of one bits ("population count") in u.
func (u Uint512) OnesCount() (n int) {
	for l := range u {
		n += bits.OnesCount64(u[l])
	}
	return n
}

// Len returns the minimum number of bits required to represent u; the result
// is 0 for u == 0.
func (u Uint512) Len() int {
	return Bits - u.LeadingZeros()
}

// Text returns the string representation of u in the given base.
func (u Uint512) Text(base int) string {
	return u.Big().Text(base)
}

// String returns the base-10 representation of u.
func (u Uint512) String() string {
	return u.Text(10)
}
