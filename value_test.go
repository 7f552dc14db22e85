package beconv

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleValues() []Value {
	return []Value{
		BoolValue(true),
		BoolValue(false),
		ByteValue(-2),
		Int16Value(-300),
		Int32Value(math.MinInt32),
		Int64Value(1 << 50),
		Float32Value(-0.25),
		Float64Value(math.E),
		DecimalValue(DecimalFromInt64(-129, 4)),
		StringValue("naïve"),
	}
}

func TestValueEncodeDecode(t *testing.T) {
	for _, v := range sampleValues() {
		b := v.Encode()
		assert.Equal(t, v.Width(), len(b), v.Kind().String())

		got, err := DecodeValue(v.Kind(), b, 0, len(b))
		require.NoError(t, err, v.Kind().String())
		assert.True(t, v.Equal(got), "%s: got %s want %s", v.Kind(), got, v)

		buf := make([]byte, 3+v.Width())
		off, err := v.Put(buf, 3)
		require.NoError(t, err)
		assert.Equal(t, len(buf), off)
		assert.Equal(t, b, buf[3:])
	}
}

func TestValueMatchesDirectEncoders(t *testing.T) {
	assert.Equal(t, EncodeInt32(-1), Int32Value(-1).Encode())
	assert.Equal(t, EncodeInt16(256), Int16Value(256).Encode())
	assert.Equal(t, EncodeFloat32(1.5), Float32Value(1.5).Encode())
	assert.Equal(t, EncodeBool(true), BoolValue(true).Encode())
	assert.Nil(t, Value{}.Encode())
}

func TestValueAccessors(t *testing.T) {
	assert.True(t, BoolValue(true).Bool())
	assert.Equal(t, int8(-7), ByteValue(-7).Byte())
	assert.Equal(t, int16(-2), Int16Value(-2).Int16())
	assert.Equal(t, int32(-3), Int32Value(-3).Int32())
	assert.Equal(t, int64(-4), Int64Value(-4).Int64())
	assert.Equal(t, float32(0.5), Float32Value(0.5).Float32())
	assert.Equal(t, 0.25, Float64Value(0.25).Float64())
	assert.Equal(t, "x", StringValue("x").Text())
	assert.Equal(t, "1.5", DecimalValue(DecimalFromInt64(15, 1)).Decimal().String())

	assert.Panics(t, func() { Int32Value(1).Int64() })
	assert.Panics(t, func() { Value{}.Bool() })
}

func TestValueEqual(t *testing.T) {
	nan := math.NaN()
	assert.True(t, Float64Value(nan).Equal(Float64Value(nan)))
	assert.False(t, Float64Value(0).Equal(Float64Value(math.Copysign(0, -1))))
	assert.False(t, Int32Value(1).Equal(Int64Value(1)))
	assert.False(t, DecimalValue(DecimalFromInt64(10, 1)).Equal(DecimalValue(DecimalFromInt64(1, 0))))
}

func TestDecodeValueErrors(t *testing.T) {
	_, err := DecodeValue(KindInt32, []byte{1, 2}, 0, 2)
	assert.ErrorIs(t, err, ErrWrongWidth)

	_, err = DecodeValue(KindInt32, []byte{1, 2}, 0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = DecodeValue(KindDecimal, []byte{0, 0, 0, 1}, 0, 4)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = DecodeValue(KindInvalid, []byte{1}, 0, 1)
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		kind Kind
		in   string
		want Value
	}{
		{KindBool, "true", BoolValue(true)},
		{KindByte, "-128", ByteValue(math.MinInt8)},
		{KindByte, "0x7f", ByteValue(math.MaxInt8)},
		{KindInt16, "-32768", Int16Value(math.MinInt16)},
		{KindInt32, "0b101", Int32Value(5)},
		{KindInt64, "9223372036854775807", Int64Value(math.MaxInt64)},
		{KindFloat32, "1.5", Float32Value(1.5)},
		{KindFloat64, "-2e3", Float64Value(-2000)},
		{KindDecimal, "12.50", DecimalValue(DecimalFromInt64(1250, 2))},
		{KindString, "a:b", StringValue("a:b")},
	}
	for _, tc := range cases {
		got, err := ParseValue(tc.kind, tc.in)
		require.NoError(t, err, tc.in)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.in, got)
	}

	for _, tc := range []struct {
		kind Kind
		in   string
	}{
		{KindByte, "128"},
		{KindByte, "0xff"},
		{KindInt16, "32768"},
		{KindBool, "yes"},
		{KindDecimal, "1.x"},
		{KindInvalid, "1"},
	} {
		_, err := ParseValue(tc.kind, tc.in)
		assert.Error(t, err, tc.in)
	}
}

func TestValueBinaryMarshal(t *testing.T) {
	for _, v := range sampleValues() {
		b, err := v.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, byte(v.Kind()), b[0])
		assert.Equal(t, v.Encode(), b[1:])

		var got Value
		require.NoError(t, got.UnmarshalBinary(b))
		assert.True(t, v.Equal(got), "%s: got %s", v.Kind(), got)
	}

	_, err := Value{}.MarshalBinary()
	assert.Error(t, err)

	var v Value
	assert.ErrorIs(t, v.UnmarshalBinary(nil), ErrOutOfBounds)
	assert.ErrorIs(t, v.UnmarshalBinary([]byte{byte(KindInt16), 1}), ErrWrongWidth)
}

func TestValueTextMarshal(t *testing.T) {
	txt, err := Int32Value(-1).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "int32:-1", string(txt))

	txt, err = DecimalValue(DecimalFromInt64(150, 2)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "decimal:1.50", string(txt))

	for _, v := range sampleValues() {
		txt, err := v.MarshalText()
		require.NoError(t, err)
		var got Value
		require.NoError(t, got.UnmarshalText(txt), string(txt))
		assert.True(t, v.Equal(got), "%s: got %s", txt, got)
	}

	var v Value
	assert.Error(t, v.UnmarshalText([]byte("no-prefix")))
	assert.Error(t, v.UnmarshalText([]byte("int99:1")))
}

func TestSchema(t *testing.T) {
	s := Schema{KindInt32, KindInt64, KindBool, KindInt16}
	w, err := s.Width()
	require.NoError(t, err)
	assert.Equal(t, 15, w)

	b, err := s.Encode(Int32Value(42), Int64Value(-1), BoolValue(true), Int16Value(256))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0, 0, 0, 42,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF,
		0x01, 0x00,
	}, b)

	vals, err := s.Decode(b)
	require.NoError(t, err)
	require.Len(t, vals, 4)
	assert.Equal(t, int32(42), vals[0].Int32())
	assert.Equal(t, int64(-1), vals[1].Int64())
	assert.True(t, vals[2].Bool())
	assert.Equal(t, int16(256), vals[3].Int16())
}

func TestSchemaErrors(t *testing.T) {
	_, err := Schema{KindInt32, KindDecimal}.Width()
	assert.ErrorIs(t, err, ErrVariableWidth)
	_, err = Schema{KindString}.Encode(StringValue("x"))
	assert.ErrorIs(t, err, ErrVariableWidth)

	s := Schema{KindInt32, KindInt16}
	_, err = s.Encode(Int32Value(1))
	assert.Error(t, err)
	_, err = s.Encode(Int32Value(1), Int32Value(2))
	assert.Error(t, err)

	_, err = s.Decode(make([]byte, 5))
	assert.True(t, errors.Is(err, ErrWrongWidth), "got %v", err)
}
