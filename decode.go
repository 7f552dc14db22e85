package beconv

import "math"

// readBE accumulates n bytes starting at off, most significant first.
// The region must already be validated.
func readBE(b []byte, off, n int) uint64 {
	var acc uint64
	for _, c := range b[off : off+n] {
		acc = acc<<8 | uint64(c)
	}
	return acc
}

// DecodeBool reads a single byte at offset 0. Any non-zero byte is true.
func DecodeBool(b []byte) (bool, error) { return DecodeBoolAt(b, 0, SizeofBool) }

// DecodeBoolAt treats the byte as zero / non-zero; it does not insist on the
// 0xFF that EncodeBool writes.
func DecodeBoolAt(b []byte, offset, length int) (bool, error) {
	if err := checkRead(KindBool, b, offset, length, SizeofBool); err != nil {
		return false, err
	}
	return b[offset] != 0, nil
}

// DecodeByte reads the signed byte at offset 0.
func DecodeByte(b []byte) (int8, error) { return DecodeByteAt(b, 0, SizeofByte) }

// DecodeByteAt reads b[offset] as a signed byte; length must be 1.
func DecodeByteAt(b []byte, offset, length int) (int8, error) {
	if err := checkRead(KindByte, b, offset, length, SizeofByte); err != nil {
		return 0, err
	}
	return int8(b[offset]), nil
}

// DecodeInt16 reads 2 bytes at offset 0.
func DecodeInt16(b []byte) (int16, error) { return DecodeInt16At(b, 0, SizeofInt16) }

// DecodeInt16At reads the int16 in b[offset:offset+length]; length must be 2.
func DecodeInt16At(b []byte, offset, length int) (int16, error) {
	if err := checkRead(KindInt16, b, offset, length, SizeofInt16); err != nil {
		return 0, err
	}
	return int16(readBE(b, offset, SizeofInt16)), nil
}

// DecodeInt32 reads 4 bytes at offset 0.
func DecodeInt32(b []byte) (int32, error) { return DecodeInt32At(b, 0, SizeofInt32) }

// DecodeInt32At reads the int32 in b[offset:offset+length]; length must be 4.
func DecodeInt32At(b []byte, offset, length int) (int32, error) {
	if err := checkRead(KindInt32, b, offset, length, SizeofInt32); err != nil {
		return 0, err
	}
	return int32(readBE(b, offset, SizeofInt32)), nil
}

// DecodeInt64 reads 8 bytes at offset 0.
func DecodeInt64(b []byte) (int64, error) { return DecodeInt64At(b, 0, SizeofInt64) }

// DecodeInt64At reads the int64 in b[offset:offset+length]; length must be 8.
func DecodeInt64At(b []byte, offset, length int) (int64, error) {
	if err := checkRead(KindInt64, b, offset, length, SizeofInt64); err != nil {
		return 0, err
	}
	return int64(readBE(b, offset, SizeofInt64)), nil
}

// DecodeFloat32 reads 4 bytes at offset 0.
func DecodeFloat32(b []byte) (float32, error) { return DecodeFloat32At(b, 0, SizeofFloat32) }

// DecodeFloat32At reads the float32 in b[offset:offset+length]; length must be 4.
func DecodeFloat32At(b []byte, offset, length int) (float32, error) {
	if err := checkRead(KindFloat32, b, offset, length, SizeofFloat32); err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(readBE(b, offset, SizeofFloat32))), nil
}

// DecodeFloat64 reads 8 bytes at offset 0.
func DecodeFloat64(b []byte) (float64, error) { return DecodeFloat64At(b, 0, SizeofFloat64) }

// DecodeFloat64At reads the float64 in b[offset:offset+length]; length must be 8.
func DecodeFloat64At(b []byte, offset, length int) (float64, error) {
	if err := checkRead(KindFloat64, b, offset, length, SizeofFloat64); err != nil {
		return 0, err
	}
	return math.Float64frombits(readBE(b, offset, SizeofFloat64)), nil
}

// DecodeString returns b as text. No UTF-8 validation is done.
func DecodeString(b []byte) string { return string(b) }

// DecodeStringAt returns the text held in b[offset:offset+length]. Strings
// have no fixed width, so only the bounds are checked.
func DecodeStringAt(b []byte, offset, length int) (string, error) {
	if !inBounds(len(b), offset, length) {
		return "", explain(opDecode, KindString, len(b), offset, length, length)
	}
	return string(b[offset : offset+length]), nil
}
