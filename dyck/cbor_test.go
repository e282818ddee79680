package dyck

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-dyck/dycktesting"
)

func TestCBORRoundTrip(t *testing.T) {
	tc := dycktesting.NewTestContext(t, dycktesting.TestConfig{Seed: 3, TestLabelPrefix: "cbor"})
	wide := dycktesting.RandomTree(tc.Rand, 50)

	tests := []struct {
		name     string
		words    []uint32
		leaves   int
		wantKind Kind
	}{
		{"bounded", []uint32{0b111011000}, 5, KindBounded},
		{"bounded, spare leaves", []uint32{0b110}, 4, KindBounded},
		{"unbounded, short path", []uint32{0, 0, 0b11010}, 3, KindUnbounded},
		{"unbounded", dycktesting.Words(wide, 3), 50, KindUnbounded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := New(tt.words, ints(tt.leaves))
			require.NoError(t, err)

			data, err := cbor.Marshal(enc)
			require.NoError(t, err)

			var decoded Encoding[int]
			require.NoError(t, cbor.Unmarshal(data, &decoded))
			assert.Equal(t, tt.wantKind, decoded.Kind())
			assert.Equal(t, 0, enc.Path().Cmp(decoded.Path()))
			assert.Equal(t, enc.Leaves().All(), decoded.Leaves().All())

			again, err := cbor.Marshal(&decoded)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestCBORCodec(t *testing.T) {
	codec, err := NewCBORCodec()
	require.NoError(t, err)

	enc, err := New([]uint32{0b11100}, NewLeaves("a", "b", "c"))
	require.NoError(t, err)
	data, err := codec.MarshalCBOR(enc)
	require.NoError(t, err)

	var decoded Encoding[string]
	require.NoError(t, codec.UnmarshalInto(data, &decoded))
	root, err := decoded.Root()
	require.NoError(t, err)
	left, err := root.Left()
	require.NoError(t, err)
	leaf, err := left.Leaf()
	require.NoError(t, err)
	assert.Equal(t, "a", leaf)
}

func TestCBORDecodeValidates(t *testing.T) {
	codec, err := NewCBORCodec()
	require.NoError(t, err)

	data, err := codec.MarshalCBOR(encodingCBOR[string]{Words: []uint32{0b11100}, Leaves: []string{"a"}})
	require.NoError(t, err)
	var decoded Encoding[string]
	assert.ErrorIs(t, codec.UnmarshalInto(data, &decoded), ErrInvalidStructure)

	data, err = codec.MarshalCBOR(encodingCBOR[string]{Leaves: []string{"a"}})
	require.NoError(t, err)
	assert.ErrorIs(t, codec.UnmarshalInto(data, &decoded), ErrNoWords)
}
