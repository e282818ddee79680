package split

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/forestrie/go-dyck/dycktesting"
	"github.com/forestrie/go-dyck/uint512"
)

func TestNative(t *testing.T) {
	type args struct {
		s uint16
	}
	tests := []struct {
		name    string
		args    args
		want    uint16
		wantErr error
	}{
		{"empty", args{0}, 0, nil},
		{"single leaf", args{1}, 0, nil},
		{"pair", args{0b110}, 0b100, nil},
		{"((a b) c)", args{0b11010}, 0b00100, nil},
		{"(a (b c))", args{0b11100}, 0b10000, nil},
		{"fixture", args{0b_1_11010_1101100_00}, 0b_1_00000_0000000_00, nil},
		{"lone 10 is not a tree", args{0b10}, 0, ErrInvalidStructure},
		{"two trees", args{0b110110}, 0, ErrInvalidStructure},
		{"branch without children", args{0b101}, 0, ErrInvalidStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Native(tt.args.s)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepresentationsAgree(t *testing.T) {
	for _, s := range dycktesting.AllTrees(10) {
		want, err := Native(s)
		require.NoError(t, err)

		got128, err := Uint128(uint128.From64(s))
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(want), got128)

		got512, err := Wide(uint512.From64(s))
		require.NoError(t, err)
		assert.Equal(t, uint512.From64(want), got512)

		gotBig, err := Big(new(big.Int).SetUint64(s))
		require.NoError(t, err)
		assert.Equalf(t, want, gotBig.Uint64(), "%b", s)
	}
}

func TestInvalidEveryRepresentation(t *testing.T) {
	_, err := Uint128(uint128.From64(0b10))
	assert.ErrorIs(t, err, ErrInvalidStructure)
	_, err = Wide(uint512.From64(0b1010))
	assert.ErrorIs(t, err, ErrInvalidStructure)
	_, err = Big(big.NewInt(0b110110))
	assert.ErrorIs(t, err, ErrInvalidStructure)
	_, err = Big(big.NewInt(-6))
	assert.ErrorIs(t, err, ErrInvalidStructure)
}

func TestHalvesAndJoin(t *testing.T) {
	for _, s := range dycktesting.AllTrees(9) {
		left, right, err := HalvesNative(s)
		if s <= 1 {
			assert.ErrorIs(t, err, ErrNoChildren)
			continue
		}
		require.NoError(t, err)

		joined, err := Join(left, right)
		require.NoError(t, err)
		assert.Equal(t, s, joined)

		bl, br, err := HalvesBig(new(big.Int).SetUint64(s))
		require.NoError(t, err)
		assert.Equal(t, left, bl.Uint64())
		assert.Equal(t, right, br.Uint64())

		wl, wr, err := HalvesWide(uint512.From64(s))
		require.NoError(t, err)
		assert.Equal(t, uint512.From64(left), wl)
		assert.Equal(t, uint512.From64(right), wr)

		ul, ur, err := HalvesUint128(uint128.From64(s))
		require.NoError(t, err)
		assert.Equal(t, uint128.From64(left), ul)
		assert.Equal(t, uint128.From64(right), ur)
	}
}

func TestJoinErrors(t *testing.T) {
	_, err := Join(uint8(0b11010), uint8(0b11100))
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Join(uint8(1), uint8(0))
	assert.ErrorIs(t, err, ErrInvalidStructure)

	joined, err := Join(uint8(0b110), uint8(1))
	require.NoError(t, err)
	assert.Equal(t, uint8(0b11010), joined)

	got, err := JoinBig(big.NewInt(1), big.NewInt(0b110))
	require.NoError(t, err)
	assert.Equal(t, int64(0b11100), got.Int64())

	_, err = JoinBig(big.NewInt(0b10), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidStructure)
}
