package uint512

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigFromBinary(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 2)
	require.True(t, ok)
	return b
}

func TestBigRoundTrip(t *testing.T) {
	maxBig := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Bits), big.NewInt(1))
	tests := []struct {
		name string
		v    *big.Int
	}{
		{"zero", big.NewInt(0)},
		{"one", big.NewInt(1)},
		{"one limb", new(big.Int).SetUint64(0xdeadbeefcafef00d)},
		{"crosses a limb", new(big.Int).Lsh(big.NewInt(3), 63)},
		{"top bit", new(big.Int).Lsh(big.NewInt(1), Bits-1)},
		{"max", maxBig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := FromBig(tt.v)
			assert.Equal(t, 0, tt.v.Cmp(u.Big()))
			assert.Equal(t, tt.v.BitLen(), u.Len())
		})
	}
	assert.Equal(t, Max, FromBig(maxBig))
}

func TestFromBigPanics(t *testing.T) {
	assert.Panics(t, func() { FromBig(big.NewInt(-1)) })
	assert.Panics(t, func() { FromBig(new(big.Int).Lsh(big.NewInt(1), Bits)) })
}

func TestShifts(t *testing.T) {
	v := bigFromBinary(t, "1110101101100101010111010110111")
	u := FromBig(v)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Bits), big.NewInt(1))

	for _, n := range []uint{0, 1, 2, 31, 63, 64, 65, 127, 128, 200, 480, 511, 512, 600} {
		want := new(big.Int).Lsh(v, n)
		want.And(want, mask)
		assert.Equalf(t, 0, want.Cmp(u.Lsh(n).Big()), "Lsh(%d)", n)
	}

	top := FromBig(new(big.Int).Lsh(v, 400))
	for _, n := range []uint{0, 1, 2, 63, 64, 65, 128, 400, 430, 511, 512} {
		want := new(big.Int).Rsh(top.Big(), n)
		assert.Equalf(t, 0, want.Cmp(top.Rsh(n).Big()), "Rsh(%d)", n)
	}
}

func TestCounts(t *testing.T) {
	type args struct {
		u Uint512
	}
	tests := []struct {
		name      string
		args      args
		ones      int
		trailing  int
		leading   int
		bitLength int
	}{
		{"zero", args{Zero}, 0, Bits, Bits, 0},
		{"one", args{From64(1)}, 1, 0, Bits - 1, 1},
		{"0b110 in limb 2", args{From64(6).Lsh(128)}, 2, 129, Bits - 131, 131},
		{"max", args{Max}, Bits, 0, 0, Bits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ones, tt.args.u.OnesCount())
			assert.Equal(t, tt.trailing, tt.args.u.TrailingZeros())
			assert.Equal(t, tt.leading, tt.args.u.LeadingZeros())
			assert.Equal(t, tt.bitLength, tt.args.u.Len())
		})
	}
}

func TestBitOps(t *testing.T) {
	u := Zero.SetBit(0, 1).SetBit(64, 1).SetBit(511, 1)
	assert.Equal(t, uint(1), u.Bit(0))
	assert.Equal(t, uint(1), u.Bit(64))
	assert.Equal(t, uint(1), u.Bit(511))
	assert.Equal(t, uint(0), u.Bit(63))
	assert.Equal(t, uint(0), u.Bit(512))
	assert.Equal(t, uint(0), u.Bit(-1))

	assert.Equal(t, 3, u.OnesCount())
	assert.Equal(t, u, u.And(Max))
	assert.Equal(t, Max, u.Or(u.Not()))
	assert.True(t, u.Xor(u).IsZero())
	assert.Equal(t, u.SetBit(64, 0), u.Xor(From64(1).Lsh(64)))
}

func TestSubWrap64(t *testing.T) {
	assert.Equal(t, Max, Zero.SubWrap64(1))
	assert.Equal(t, From64(1).Lsh(100).SubWrap64(1).OnesCount(), 100)
	assert.True(t, From64(42).SubWrap64(42).IsZero())
	assert.Equal(t, "ff", From64(256).SubWrap64(1).Text(16))
}

func TestEquals(t *testing.T) {
	type args struct {
		u Uint512
		v uint64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"zero", args{Zero, 0}, true},
		{"small", args{From64(0b11010), 0b11010}, true},
		{"differs", args{From64(0b11010), 0b11100}, false},
		{"high limb set", args{From64(7).SetBit(300, 1), 7}, false},
		{"max", args{Max, ^uint64(0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.u.Equals64(tt.args.v))
			assert.Equal(t, tt.want, tt.args.u.Equals(From64(tt.args.v)))
		})
	}
}
