package bitsplit

import "math/bits"

// Word is any native unsigned integer type.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// NativeOps implements Ops directly on the machine word operations.
type NativeOps[W Word] struct{}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

func (NativeOps[W]) Zero() W { return 0 }
func (NativeOps[W]) IsZero(x W) bool { return x == 0 }
func (NativeOps[W]) Bit(x W, i int) uint {
	return uint(x>>uint(i)) & 1
}
func (NativeOps[W]) Len(x W) int { return bits.Len64(uint64(x)) }
func (NativeOps[W]) OnesCount(x W) int { return bits.OnesCount64(uint64(x)) }
func (NativeOps[W]) TrailingZeros(x W) int { return bits.TrailingZeros64(uint64(x)) }
func (NativeOps[W]) Lsh(x W, n int) W { return x << uint(n) }
func (NativeOps[W]) Rsh(x W, n int) W { return x >> uint(n) }
func (NativeOps[W]) And(x, y W) W { return x & y }
func (NativeOps[W]) Or(x, y W) W { return x | y }
func (NativeOps[W]) Xor(x, y W) W { return x ^ y }
func (NativeOps[W]) ClearBit(x W, i int) W { return x &^ (1 << uint(i)) }

// LowMask relies on shifts of the full width yielding zero.
func (NativeOps[W]) LowMask(n int) W { return 1<<uint(n) - 1 }

func (o NativeOps[W]) Candidates(s W) W {
	return ^s & (s << 1) & (s << 2) & o.LowMask(o.Len(s))
}

// SplitNative is Split specialised for native words.
func SplitNative[W Word](s W) (int, bool) {
	return Split(NativeOps[W]{}, s)
}
