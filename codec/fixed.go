package codec

import "github.com/unkn0wn-root/beconv"

// Fixed-width codecs. Decode insists on the exact width of the kind, so a
// payload of the wrong size fails with beconv.ErrWrongWidth.
type (
	Bool    struct{}
	Byte    struct{}
	Int16   struct{}
	Int32   struct{}
	Int64   struct{}
	Float32 struct{}
	Float64 struct{}
)

var (
	_ Codec[bool]    = Bool{}
	_ Codec[int8]    = Byte{}
	_ Codec[int16]   = Int16{}
	_ Codec[int32]   = Int32{}
	_ Codec[int64]   = Int64{}
	_ Codec[float32] = Float32{}
	_ Codec[float64] = Float64{}
)

func (Bool) Kind() beconv.Kind             { return beconv.KindBool }
func (Bool) Encode(v bool) ([]byte, error) { return beconv.EncodeBool(v), nil }
func (Bool) Decode(b []byte) (bool, error) { return beconv.DecodeBoolAt(b, 0, len(b)) }

func (Byte) Kind() beconv.Kind             { return beconv.KindByte }
func (Byte) Encode(v int8) ([]byte, error) { return beconv.EncodeByte(v), nil }
func (Byte) Decode(b []byte) (int8, error) { return beconv.DecodeByteAt(b, 0, len(b)) }

func (Int16) Kind() beconv.Kind              { return beconv.KindInt16 }
func (Int16) Encode(v int16) ([]byte, error) { return beconv.EncodeInt16(v), nil }
func (Int16) Decode(b []byte) (int16, error) { return beconv.DecodeInt16At(b, 0, len(b)) }

func (Int32) Kind() beconv.Kind              { return beconv.KindInt32 }
func (Int32) Encode(v int32) ([]byte, error) { return beconv.EncodeInt32(v), nil }
func (Int32) Decode(b []byte) (int32, error) { return beconv.DecodeInt32At(b, 0, len(b)) }

func (Int64) Kind() beconv.Kind              { return beconv.KindInt64 }
func (Int64) Encode(v int64) ([]byte, error) { return beconv.EncodeInt64(v), nil }
func (Int64) Decode(b []byte) (int64, error) { return beconv.DecodeInt64At(b, 0, len(b)) }

func (Float32) Kind() beconv.Kind                { return beconv.KindFloat32 }
func (Float32) Encode(v float32) ([]byte, error) { return beconv.EncodeFloat32(v), nil }
func (Float32) Decode(b []byte) (float32, error) { return beconv.DecodeFloat32At(b, 0, len(b)) }

func (Float64) Kind() beconv.Kind                { return beconv.KindFloat64 }
func (Float64) Encode(v float64) ([]byte, error) { return beconv.EncodeFloat64(v), nil }
func (Float64) Decode(b []byte) (float64, error) { return beconv.DecodeFloat64At(b, 0, len(b)) }
