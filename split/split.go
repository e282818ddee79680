package split

import (
	"fmt"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/forestrie/go-dyck/internal/bitsplit"
	"github.com/forestrie/go-dyck/uint512"
)

// Word is any native unsigned integer type.
type Word = bitsplit.Word

// find validates s and locates its split. s <= 1 has no children and is not
// an error.
func find[T any, O bitsplit.Ops[T]](o O, s T) (int, bool, error) {
	if o.Len(s) <= 1 {
		return 0, false, nil
	}
	if !bitsplit.WellFormed(o, s) {
		return 0, false, fmt.Errorf(
			"%w: %d bits with %d set", ErrInvalidStructure, o.Len(s), o.OnesCount(s))
	}
	pos, ok := bitsplit.Split(o, s)
	return pos, ok, nil
}

func mask[T any, O bitsplit.Ops[T]](o O, s T) (T, error) {
	pos, ok, err := find(o, s)
	if err != nil || !ok {
		return o.Zero(), err
	}
	return o.Lsh(o.LowMask(1), pos), nil
}

func halves[T any, O bitsplit.Ops[T]](o O, s T) (T, T, error) {
	pos, ok, err := find(o, s)
	if err != nil {
		return o.Zero(), o.Zero(), err
	}
	if !ok {
		return o.Zero(), o.Zero(), ErrNoChildren
	}
	left, right := bitsplit.Decompose(o, s, pos)
	return left, right, nil
}

// Native returns a mask with the single bit set which is the lowest bit of the
// left child of s. Zero is returned when s is a single leaf or empty.
//
// For example
//
//	Native(uint16(0b11100)) == 0b10000    // (a (b c))
//	Native(uint16(0b11010)) == 0b00100    // ((a b) c)
func Native[W Word](s W) (W, error) {
	return mask(bitsplit.NativeOps[W]{}, s)
}

// Uint128 is Native for 128 bit structures.
func Uint128(s uint128.Uint128) (uint128.Uint128, error) {
	return mask(bitsplit.Uint128Ops{}, s)
}

// Wide is Native for 512 bit structures.
func Wide(s uint512.Uint512) (uint512.Uint512, error) {
	return mask(bitsplit.Uint512Ops{}, s)
}

// Big is Native for structures of any size. s is not modified.
func Big(s *big.Int) (*big.Int, error) {
	if s.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative", ErrInvalidStructure)
	}
	return mask(bitsplit.BigOps{}, s)
}

// HalvesNative returns the left and right children of s.
func HalvesNative[W Word](s W) (left, right W, err error) {
	return halves(bitsplit.NativeOps[W]{}, s)
}

// HalvesUint128 returns the left and right children of s.
func HalvesUint128(s uint128.Uint128) (left, right uint128.Uint128, err error) {
	return halves(bitsplit.Uint128Ops{}, s)
}

// HalvesWide returns the left and right children of s.
func HalvesWide(s uint512.Uint512) (left, right uint512.Uint512, err error) {
	return halves(bitsplit.Uint512Ops{}, s)
}

// HalvesBig returns the left and right children of s.
func HalvesBig(s *big.Int) (left, right *big.Int, err error) {
	if s.Sign() < 0 {
		return nil, nil, fmt.Errorf("%w: negative", ErrInvalidStructure)
	}
	return halves(bitsplit.BigOps{}, s)
}

// Join returns the branch over left and right. It is the inverse of
// HalvesNative. Both must be well formed and the result must fit in W.
func Join[W Word](left, right W) (W, error) {
	o := bitsplit.NativeOps[W]{}
	if !bitsplit.WellFormed(o, left) || !bitsplit.WellFormed(o, right) {
		return 0, ErrInvalidStructure
	}
	if o.Len(left)+o.Len(right)+1 > bitsplit.Width[W]() {
		return 0, ErrOverflow
	}
	return bitsplit.Combine(o, left, right), nil
}

// JoinBig is Join for arbitrary precision structures.
func JoinBig(left, right *big.Int) (*big.Int, error) {
	o := bitsplit.BigOps{}
	if left.Sign() < 0 || right.Sign() < 0 ||
		!bitsplit.WellFormed(o, left) || !bitsplit.WellFormed(o, right) {
		return nil, ErrInvalidStructure
	}
	return bitsplit.Combine(o, left, right), nil
}
