package dyck

import (
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// encodingCBOR is the wire form of an Encoding. The path is carried as the
// words accepted by New so that the representation survives a round trip.
type encodingCBOR[L any] struct {
	Words  []uint32 `cbor:"1,keyasint"`
	Leaves []L      `cbor:"2,keyasint"`
}

// CBORCodec encodes deterministically, using the core deterministic encoding
// options, so that equal encodings always produce equal bytes.
type CBORCodec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCBORCodec() (CBORCodec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBORCodec{}, err
	}
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBORCodec{}, err
	}
	return CBORCodec{encMode: encMode, decMode: decMode}, nil
}

func (c CBORCodec) MarshalCBOR(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

func (c CBORCodec) UnmarshalInto(data []byte, v any) error {
	return c.decMode.Unmarshal(data, v)
}

var defaultCodec = sync.OnceValues(NewCBORCodec)

// MarshalCBOR implements cbor.Marshaler
func (e *Encoding[L]) MarshalCBOR() ([]byte, error) {
	codec, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return codec.MarshalCBOR(encodingCBOR[L]{Words: e.Words(), Leaves: e.Leaves().items})
}

// UnmarshalCBOR implements cbor.Unmarshaler. The decoded path is validated
// exactly as New does.
func (e *Encoding[L]) UnmarshalCBOR(data []byte) error {
	codec, err := defaultCodec()
	if err != nil {
		return err
	}
	var wire encodingCBOR[L]
	if err = codec.UnmarshalInto(data, &wire); err != nil {
		return err
	}
	decoded, err := New(wire.Words, Leaves[L]{items: wire.Leaves})
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}
