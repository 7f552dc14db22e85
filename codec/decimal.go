package codec

import "github.com/unkn0wn-root/beconv"

// Decimal stores a beconv.Decimal in the scaled-decimal encoding. Where
// beconv.DecodeDecimal reports a short payload with ok=false, Decode turns it
// into beconv.ErrMalformed.
type Decimal struct{}

var _ Codec[beconv.Decimal] = Decimal{}

func (Decimal) Kind() beconv.Kind { return beconv.KindDecimal }

func (Decimal) Encode(d beconv.Decimal) ([]byte, error) { return d.Bytes(), nil }

func (Decimal) Decode(b []byte) (beconv.Decimal, error) {
	d, ok := beconv.DecodeDecimal(b)
	if !ok {
		return beconv.Decimal{}, beconv.ErrMalformed
	}
	return d, nil
}

// Value stores any beconv.Value as its kind byte followed by the encoding,
// so one store can hold values of mixed kinds.
type Value struct{}

var _ Codec[beconv.Value] = Value{}

func (Value) Encode(v beconv.Value) ([]byte, error) { return v.MarshalBinary() }

func (Value) Decode(b []byte) (beconv.Value, error) {
	var v beconv.Value
	err := v.UnmarshalBinary(b)
	return v, err
}
