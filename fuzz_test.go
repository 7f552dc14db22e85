package beconv

import (
	"bytes"
	"math"
	"math/big"
	"testing"
)

func FuzzInt64RoundTrip(f *testing.F) {
	f.Add(int64(0), 0)
	f.Add(int64(-1), 3)
	f.Add(int64(math.MinInt64), 1)
	f.Add(int64(math.MaxInt64), 0)

	f.Fuzz(func(t *testing.T, v int64, offset int) {
		if offset < 0 || offset > 64 {
			t.Skip("offset outside test buffer")
		}
		enc := EncodeInt64(v)
		if len(enc) != SizeofInt64 {
			t.Fatalf("width: got %d", len(enc))
		}
		got, err := DecodeInt64(enc)
		if err != nil || got != v {
			t.Fatalf("decode %x: got %d, %v; want %d", enc, got, err, v)
		}

		b := make([]byte, offset+SizeofInt64)
		next, err := PutInt64(b, offset, v)
		if err != nil || next != offset+SizeofInt64 {
			t.Fatalf("put at %d: next=%d err=%v", offset, next, err)
		}
		if !bytes.Equal(b[offset:], enc) {
			t.Fatalf("put wrote %x, encode gave %x", b[offset:], enc)
		}
		got, err = DecodeInt64At(b, offset, SizeofInt64)
		if err != nil || got != v {
			t.Fatalf("decode at %d: got %d, %v; want %d", offset, got, err, v)
		}
	})
}

func FuzzDecimalRoundTrip(f *testing.F) {
	f.Add(false, []byte{}, int32(0))
	f.Add(true, []byte{0x01}, int32(2))
	f.Add(false, []byte{0x80}, int32(-3))
	f.Add(true, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, int32(math.MaxInt32))
	f.Add(false, []byte{0x30, 0x39}, int32(math.MinInt32))

	f.Fuzz(func(t *testing.T, neg bool, mag []byte, scale int32) {
		if len(mag) > 512 {
			t.Skip("magnitude too large")
		}
		u := new(big.Int).SetBytes(mag)
		if neg {
			u.Neg(u)
		}
		d := Decimal{Unscaled: u, Scale: scale}

		enc := d.Bytes()
		if len(enc) != d.Width() {
			t.Fatalf("width: encoded %d bytes, Width says %d", len(enc), d.Width())
		}
		got, ok := DecodeDecimal(enc)
		if !ok || !got.Identical(d) {
			t.Fatalf("binary round trip of %s: got %s ok=%v", d, got, ok)
		}

		parsed, err := ParseDecimal(d.String())
		if err != nil {
			t.Fatalf("parse %q: %v", d.String(), err)
		}
		if !parsed.Identical(d) {
			t.Fatalf("text round trip of %q: got %s", d.String(), parsed)
		}
		if d.Cmp(parsed) != 0 {
			t.Fatalf("%s does not compare equal to itself", d)
		}
	})
}

func FuzzDecodeDecimal(f *testing.F) {
	f.Add([]byte{0, 0, 0, 2, 0x30, 0x39})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x80})
	f.Add([]byte{0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, b []byte) {
		d, ok := DecodeDecimal(b)
		if !ok {
			if len(b) >= SizeofInt32+1 {
				t.Fatalf("rejected a %d byte region", len(b))
			}
			return
		}
		parsed, err := ParseDecimal(d.String())
		if err != nil || !parsed.Identical(d) {
			t.Fatalf("text round trip of %q: got %s, %v", d.String(), parsed, err)
		}
		// Re-encoding is minimal, so it never grows the input.
		if re := d.Bytes(); len(re) > len(b) {
			t.Fatalf("re-encoded %x is longer than %x", re, b)
		}
	})
}
