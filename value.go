package beconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a tagged union over the supported kinds. The zero Value has
// KindInvalid. Accessors panic when called on a Value of another kind; Text
// is the accessor for strings since String formats any kind.
type Value struct {
	kind Kind
	bits uint64 // bool, byte, ints and float bit patterns
	dec  Decimal
	str  string
}

func BoolValue(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{kind: KindBool, bits: bits}
}

func ByteValue(v int8) Value       { return Value{kind: KindByte, bits: uint64(v)} }
func Int16Value(v int16) Value     { return Value{kind: KindInt16, bits: uint64(v)} }
func Int32Value(v int32) Value     { return Value{kind: KindInt32, bits: uint64(v)} }
func Int64Value(v int64) Value     { return Value{kind: KindInt64, bits: uint64(v)} }
func Float32Value(v float32) Value { return Value{kind: KindFloat32, bits: uint64(math.Float32bits(v))} }
func Float64Value(v float64) Value { return Value{kind: KindFloat64, bits: math.Float64bits(v)} }
func DecimalValue(v Decimal) Value { return Value{kind: KindDecimal, dec: v} }
func StringValue(v string) Value   { return Value{kind: KindString, str: v} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) must(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("beconv: %s accessor on %s value", k, v.kind))
	}
}

func (v Value) Bool() bool {
	v.must(KindBool)
	return v.bits != 0
}

func (v Value) Byte() int8 {
	v.must(KindByte)
	return int8(v.bits)
}

func (v Value) Int16() int16 {
	v.must(KindInt16)
	return int16(v.bits)
}

func (v Value) Int32() int32 {
	v.must(KindInt32)
	return int32(v.bits)
}

func (v Value) Int64() int64 {
	v.must(KindInt64)
	return int64(v.bits)
}

func (v Value) Float32() float32 {
	v.must(KindFloat32)
	return math.Float32frombits(uint32(v.bits))
}

func (v Value) Float64() float64 {
	v.must(KindFloat64)
	return math.Float64frombits(v.bits)
}

func (v Value) Decimal() Decimal {
	v.must(KindDecimal)
	return v.dec
}

func (v Value) Text() string {
	v.must(KindString)
	return v.str
}

// Width is the encoded length of v.
func (v Value) Width() int {
	switch v.kind {
	case KindDecimal:
		return v.dec.Width()
	case KindString:
		return len(v.str)
	}
	w, _ := WidthOf(v.kind)
	return w
}

// Encode returns the encoding of v. The invalid Value encodes to nil.
func (v Value) Encode() []byte {
	switch v.kind {
	case KindBool:
		return EncodeBool(v.bits != 0)
	case KindByte:
		return EncodeByte(int8(v.bits))
	case KindInt16:
		return EncodeInt16(int16(v.bits))
	case KindInt32:
		return EncodeInt32(int32(v.bits))
	case KindInt64:
		return EncodeInt64(int64(v.bits))
	case KindFloat32:
		return EncodeInt32(int32(uint32(v.bits)))
	case KindFloat64:
		return EncodeInt64(int64(v.bits))
	case KindDecimal:
		return v.dec.Bytes()
	case KindString:
		return EncodeString(v.str)
	}
	return nil
}

// Put writes v into b at offset and returns the offset after it.
func (v Value) Put(b []byte, offset int) (int, error) {
	switch v.kind {
	case KindBool:
		return PutBool(b, offset, v.bits != 0)
	case KindByte:
		return PutByte(b, offset, int8(v.bits))
	case KindInt16:
		return PutInt16(b, offset, int16(v.bits))
	case KindInt32:
		return PutInt32(b, offset, int32(v.bits))
	case KindInt64:
		return PutInt64(b, offset, int64(v.bits))
	case KindFloat32:
		return PutInt32(b, offset, int32(uint32(v.bits)))
	case KindFloat64:
		return PutInt64(b, offset, int64(v.bits))
	case KindDecimal:
		return PutDecimal(b, offset, v.dec)
	case KindString:
		return PutString(b, offset, v.str)
	}
	return offset, fmt.Errorf("beconv: put of %s value", v.kind)
}

// DecodeValue decodes a value of kind k from b[offset:offset+length].
// Fixed-width kinds follow the DecodeXAt rules. A decimal region that
// DecodeDecimalAt rejects is reported as ErrMalformed.
func DecodeValue(k Kind, b []byte, offset, length int) (Value, error) {
	switch k {
	case KindBool:
		x, err := DecodeBoolAt(b, offset, length)
		return BoolValue(x), err
	case KindByte:
		x, err := DecodeByteAt(b, offset, length)
		return ByteValue(x), err
	case KindInt16:
		x, err := DecodeInt16At(b, offset, length)
		return Int16Value(x), err
	case KindInt32:
		x, err := DecodeInt32At(b, offset, length)
		return Int32Value(x), err
	case KindInt64:
		x, err := DecodeInt64At(b, offset, length)
		return Int64Value(x), err
	case KindFloat32:
		x, err := DecodeFloat32At(b, offset, length)
		return Float32Value(x), err
	case KindFloat64:
		x, err := DecodeFloat64At(b, offset, length)
		return Float64Value(x), err
	case KindDecimal:
		d, ok := DecodeDecimalAt(b, offset, length)
		if !ok {
			return Value{}, ErrMalformed
		}
		return DecimalValue(d), nil
	case KindString:
		s, err := DecodeStringAt(b, offset, length)
		return StringValue(s), err
	}
	return Value{}, fmt.Errorf("beconv: decode of %s value", k)
}

// Equal reports whether v and o have the same kind and encoding. Floats are
// compared by bit pattern, so NaN equals itself and 0 differs from -0.
// Decimals must match in both unscaled value and scale.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindDecimal:
		return v.dec.Identical(o.dec)
	case KindString:
		return v.str == o.str
	}
	return v.bits == o.bits
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.bits != 0)
	case KindByte, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(v.signed(), 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.bits))), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case KindDecimal:
		return v.dec.String()
	case KindString:
		return v.str
	}
	return "<invalid>"
}

func (v Value) signed() int64 {
	switch v.kind {
	case KindByte:
		return int64(int8(v.bits))
	case KindInt16:
		return int64(int16(v.bits))
	case KindInt32:
		return int64(int32(v.bits))
	}
	return int64(v.bits)
}

// ParseValue parses text into a Value of kind k. Bytes are signed (-128 to
// 127); they and the other integers accept the base prefixes understood by
// strconv (0x, 0o, 0b).
func ParseValue(k Kind, s string) (Value, error) {
	var (
		v   Value
		err error
	)
	switch k {
	case KindBool:
		var x bool
		x, err = strconv.ParseBool(s)
		v = BoolValue(x)
	case KindByte:
		var x int64
		x, err = strconv.ParseInt(s, 0, 8)
		v = ByteValue(int8(x))
	case KindInt16:
		var x int64
		x, err = strconv.ParseInt(s, 0, 16)
		v = Int16Value(int16(x))
	case KindInt32:
		var x int64
		x, err = strconv.ParseInt(s, 0, 32)
		v = Int32Value(int32(x))
	case KindInt64:
		var x int64
		x, err = strconv.ParseInt(s, 0, 64)
		v = Int64Value(x)
	case KindFloat32:
		var x float64
		x, err = strconv.ParseFloat(s, 32)
		v = Float32Value(float32(x))
	case KindFloat64:
		var x float64
		x, err = strconv.ParseFloat(s, 64)
		v = Float64Value(x)
	case KindDecimal:
		var d Decimal
		d, err = ParseDecimal(s)
		v = DecimalValue(d)
	case KindString:
		v = StringValue(s)
	default:
		err = fmt.Errorf("beconv: parse of %s value", k)
	}
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// MarshalBinary returns the kind byte followed by the encoding.
func (v Value) MarshalBinary() ([]byte, error) {
	if !v.kind.Valid() {
		return nil, fmt.Errorf("beconv: marshal of %s value", v.kind)
	}
	b := make([]byte, 1+v.Width())
	b[0] = byte(v.kind)
	if _, err := v.Put(b, 1); err != nil {
		return nil, err
	}
	return b, nil
}

func (v *Value) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return explain(opDecode, KindInvalid, 0, 0, 1, 1)
	}
	x, err := DecodeValue(Kind(b[0]), b, 1, len(b)-1)
	if err != nil {
		return err
	}
	*v = x
	return nil
}

// MarshalText renders v as "<kind>:<value>", e.g. "int32:-1" or "decimal:1.50".
func (v Value) MarshalText() ([]byte, error) {
	if !v.kind.Valid() {
		return nil, fmt.Errorf("beconv: marshal of %s value", v.kind)
	}
	return []byte(v.kind.String() + ":" + v.String()), nil
}

func (v *Value) UnmarshalText(b []byte) error {
	s := string(b)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return fmt.Errorf("beconv: value %q: missing kind prefix", s)
	}
	k, err := ParseKind(s[:i])
	if err != nil {
		return err
	}
	x, err := ParseValue(k, s[i+1:])
	if err != nil {
		return err
	}
	*v = x
	return nil
}
