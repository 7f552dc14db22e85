package beconv

import (
	"encoding/binary"
	"math"
)

// EncodeBool returns 0xFF for true and 0x00 for false.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

// EncodeByte returns the single two's-complement byte of v.
func EncodeByte(v int8) []byte { return []byte{byte(v)} }

// EncodeInt16 returns the 2-byte big-endian encoding of v.
func EncodeInt16(v int16) []byte {
	b := make([]byte, SizeofInt16)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}

// EncodeInt32 returns the 4-byte big-endian encoding of v.
func EncodeInt32(v int32) []byte {
	b := make([]byte, SizeofInt32)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

// EncodeInt64 returns the 8-byte big-endian encoding of v.
func EncodeInt64(v int64) []byte {
	b := make([]byte, SizeofInt64)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

// EncodeFloat32 encodes the raw IEEE-754 bits of v. NaN payloads are kept.
func EncodeFloat32(v float32) []byte {
	return EncodeInt32(int32(math.Float32bits(v)))
}

// EncodeFloat64 encodes the raw IEEE-754 bits of v. NaN payloads are kept.
func EncodeFloat64(v float64) []byte {
	return EncodeInt64(int64(math.Float64bits(v)))
}

// EncodeString returns the UTF-8 bytes of s.
func EncodeString(s string) []byte { return []byte(s) }
