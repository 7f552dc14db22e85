// Package beconv converts primitive values to and from fixed-width
// big-endian byte sequences.
//
// Every supported kind has one encoding:
//
//	bool     1 byte   true => 0xFF, false => 0x00
//	byte     1 byte   signed (int8), two's complement
//	int16    2 bytes
//	int32    4 bytes
//	int64    8 bytes
//	float32  4 bytes  raw IEEE-754 bits, then the int32 encoding
//	float64  8 bytes  raw IEEE-754 bits, then the int64 encoding
//	decimal  4 + n    scale(int32) | minimal two's-complement unscaled bytes
//	string   n        UTF-8
//
// Three groups of functions cover the kinds:
//
//	EncodeX(v)                 -> new slice of the kind's width
//	DecodeX(b), DecodeXAt(b, offset, length)
//	PutX(b, offset, v)         -> offset following the written region
//
// Decoders check the length against the kind's width first (ErrWrongWidth) and
// the region against the buffer second (ErrOutOfBounds). Put functions check
// that the buffer has room (ErrInsufficientCapacity). All of these come back
// as *RangeError, which unwraps to the sentinel:
//
//	n, err := beconv.DecodeInt32At(buf, off, 4)
//	if errors.Is(err, beconv.ErrOutOfBounds) { ... }
//
// Put functions chain:
//
//	off, _ := beconv.PutInt32(buf, 0, id)
//	off, _ = beconv.PutInt64(buf, off, ts)
//	_, _ = beconv.PutBool(buf, off, deleted)
//
// Decimal decoding is the exception to hard failure: a region too short to hold
// a scale and at least one magnitude byte yields ok=false rather than an error.
//
// Booleans decode as "non-zero is true", so 0x01 decodes to true even though
// EncodeBool only ever produces 0x00 and 0xFF.
//
// Nothing in this package holds state. All functions are safe for concurrent
// use; callers sharing a buffer between writers must order those writes.
package beconv
