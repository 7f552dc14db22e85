package beconv

import (
	"encoding/binary"
	"math"
)

// PutBool writes v at offset and returns the offset after it.
func PutBool(b []byte, offset int, v bool) (int, error) {
	if err := checkWrite(KindBool, b, offset, SizeofBool); err != nil {
		return offset, err
	}
	if v {
		b[offset] = 0xFF
	} else {
		b[offset] = 0x00
	}
	return offset + SizeofBool, nil
}

// PutByte writes v as one two's-complement byte.
func PutByte(b []byte, offset int, v int8) (int, error) {
	if err := checkWrite(KindByte, b, offset, SizeofByte); err != nil {
		return offset, err
	}
	b[offset] = byte(v)
	return offset + SizeofByte, nil
}

// PutInt16 writes the 2-byte encoding of v at offset.
func PutInt16(b []byte, offset int, v int16) (int, error) {
	if err := checkWrite(KindInt16, b, offset, SizeofInt16); err != nil {
		return offset, err
	}
	binary.BigEndian.PutUint16(b[offset:], uint16(v))
	return offset + SizeofInt16, nil
}

// PutInt32 writes the 4-byte encoding of v at offset.
func PutInt32(b []byte, offset int, v int32) (int, error) {
	if err := checkWrite(KindInt32, b, offset, SizeofInt32); err != nil {
		return offset, err
	}
	binary.BigEndian.PutUint32(b[offset:], uint32(v))
	return offset + SizeofInt32, nil
}

// PutInt64 writes the 8-byte encoding of v at offset.
func PutInt64(b []byte, offset int, v int64) (int, error) {
	if err := checkWrite(KindInt64, b, offset, SizeofInt64); err != nil {
		return offset, err
	}
	binary.BigEndian.PutUint64(b[offset:], uint64(v))
	return offset + SizeofInt64, nil
}

// PutFloat32 writes the 4-byte encoding of v at offset.
func PutFloat32(b []byte, offset int, v float32) (int, error) {
	if err := checkWrite(KindFloat32, b, offset, SizeofFloat32); err != nil {
		return offset, err
	}
	binary.BigEndian.PutUint32(b[offset:], math.Float32bits(v))
	return offset + SizeofFloat32, nil
}

// PutFloat64 writes the 8-byte encoding of v at offset.
func PutFloat64(b []byte, offset int, v float64) (int, error) {
	if err := checkWrite(KindFloat64, b, offset, SizeofFloat64); err != nil {
		return offset, err
	}
	binary.BigEndian.PutUint64(b[offset:], math.Float64bits(v))
	return offset + SizeofFloat64, nil
}

// PutString copies the UTF-8 bytes of s to offset.
func PutString(b []byte, offset int, s string) (int, error) {
	if err := checkWrite(KindString, b, offset, len(s)); err != nil {
		return offset, err
	}
	return offset + copy(b[offset:], s), nil
}

// PutBytes copies src[srcOffset:srcOffset+length] into dst at dstOffset and
// returns dstOffset+length. The source region must lie within src; dst must
// have room for it.
func PutBytes(dst []byte, dstOffset int, src []byte, srcOffset, length int) (int, error) {
	if !inBounds(len(src), srcOffset, length) {
		return dstOffset, explain(opCopy, KindInvalid, len(src), srcOffset, length, length)
	}
	if !inBounds(len(dst), dstOffset, length) {
		return dstOffset, explain(opPut, KindInvalid, len(dst), dstOffset, length, length)
	}
	copy(dst[dstOffset:], src[srcOffset:srcOffset+length])
	return dstOffset + length, nil
}
