package beconv

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const (
	// cborTagDecimalFraction is the RFC 8949 tag for [exponent, mantissa].
	cborTagDecimalFraction = 4
	// maxExponent bounds a parsed exponent before it is combined with the
	// fraction length; the resulting scale is range-checked separately.
	maxExponent = 1 << 40
)

// Decimal is an arbitrary-precision signed value Unscaled × 10^-Scale.
// A nil Unscaled is zero.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// NewDecimal returns a Decimal holding a copy of unscaled.
func NewDecimal(unscaled *big.Int, scale int32) Decimal {
	u := new(big.Int)
	if unscaled != nil {
		u.Set(unscaled)
	}
	return Decimal{Unscaled: u, Scale: scale}
}

// DecimalFromInt64 is a shortcut for NewDecimal(big.NewInt(unscaled), scale).
func DecimalFromInt64(unscaled int64, scale int32) Decimal {
	return Decimal{Unscaled: big.NewInt(unscaled), Scale: scale}
}

func (d Decimal) unscaled() *big.Int {
	if d.Unscaled == nil {
		return new(big.Int)
	}
	return d.Unscaled
}

// Width is the encoded length of d.
func (d Decimal) Width() int { return SizeofInt32 + len(twosComplement(d.unscaled())) }

// Bytes is EncodeDecimal(d.Unscaled, d.Scale).
func (d Decimal) Bytes() []byte { return EncodeDecimal(d.unscaled(), d.Scale) }

// Cmp compares the numeric values of d and o, ignoring representation:
// 1.50 (150, 2) and 1.5 (15, 1) compare equal. Values of different magnitude
// are ordered without rescaling, so scales far apart cost nothing extra.
func (d Decimal) Cmp(o Decimal) int {
	a, b := d.unscaled(), o.unscaled()
	if d.Scale == o.Scale {
		return a.Cmp(b)
	}
	sa, sb := a.Sign(), b.Sign()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case sa == 0:
		return 0
	}
	// |x| lies in [10^(e-1), 10^e) where e = digits - scale.
	ea := int64(numDigits(a)) - int64(d.Scale)
	eb := int64(numDigits(b)) - int64(o.Scale)
	switch {
	case ea < eb:
		return -sa
	case ea > eb:
		return sa
	}
	// Equal magnitudes: the scale gap is below the digit count of either side.
	if d.Scale < o.Scale {
		a = new(big.Int).Mul(a, pow10(int64(o.Scale)-int64(d.Scale)))
	} else {
		b = new(big.Int).Mul(b, pow10(int64(d.Scale)-int64(o.Scale)))
	}
	return a.Cmp(b)
}

func numDigits(x *big.Int) int { return len(new(big.Int).Abs(x).Text(10)) }

// Identical reports whether d and o have the same unscaled value and scale.
func (d Decimal) Identical(o Decimal) bool {
	return d.Scale == o.Scale && d.unscaled().Cmp(o.unscaled()) == 0
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// String renders d so that ParseDecimal gives back the same unscaled value
// and scale:
//
//	Scale < 0                   "<unscaled>e<exponent>"  123e2
//	adjusted exponent < -6      "d.ddde<exponent>"       1.2345e-96
//	otherwise                   plain                    -12.345
//
// The adjusted exponent is digits-1-Scale, as in Java's BigDecimal.toString,
// so the output never holds more than six leading zeros.
func (d Decimal) String() string {
	u := d.unscaled()
	if d.Scale < 0 {
		return u.String() + "e" + strconv.FormatInt(-int64(d.Scale), 10)
	}
	digits := new(big.Int).Abs(u).String()
	sign := ""
	if u.Sign() < 0 {
		sign = "-"
	}
	if d.Scale == 0 {
		return sign + digits
	}
	if adjusted := int64(len(digits)) - 1 - int64(d.Scale); adjusted < -6 {
		out := sign + digits[:1]
		if len(digits) > 1 {
			out += "." + digits[1:]
		}
		return out + "e" + strconv.FormatInt(adjusted, 10)
	}
	scale := int(d.Scale)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	point := len(digits) - scale
	return sign + digits[:point] + "." + digits[point:]
}

// ParseDecimal parses [+-]digits[.digits][(e|E)[+-]digits]. The scale is the
// number of fraction digits minus the exponent.
func ParseDecimal(s string) (Decimal, error) {
	in := s
	exp := int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return Decimal{}, fmt.Errorf("beconv: invalid decimal %q: bad exponent", in)
		}
		if e < -maxExponent || e > maxExponent {
			return Decimal{}, fmt.Errorf("beconv: invalid decimal %q: scale out of range", in)
		}
		exp = e
		s = s[:i]
	}
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	digits := intPart + frac
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return Decimal{}, fmt.Errorf("beconv: invalid decimal %q", in)
	}
	scale := int64(len(frac)) - exp
	if scale < math.MinInt32 || scale > math.MaxInt32 {
		return Decimal{}, fmt.Errorf("beconv: invalid decimal %q: scale out of range", in)
	}
	u, ok := new(big.Int).SetString(sign+digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("beconv: invalid decimal %q", in)
	}
	return Decimal{Unscaled: u, Scale: int32(scale)}, nil
}

// EncodeDecimal returns the 4-byte big-endian scale followed by the minimal
// two's-complement big-endian bytes of unscaled. A nil unscaled encodes zero.
func EncodeDecimal(unscaled *big.Int, scale int32) []byte {
	if unscaled == nil {
		unscaled = new(big.Int)
	}
	mag := twosComplement(unscaled)
	b := make([]byte, SizeofInt32+len(mag))
	off, _ := PutInt32(b, 0, scale)
	copy(b[off:], mag)
	return b
}

// PutDecimal writes the encoding of d at offset.
func PutDecimal(b []byte, offset int, d Decimal) (int, error) {
	mag := twosComplement(d.unscaled())
	if err := checkWrite(KindDecimal, b, offset, SizeofInt32+len(mag)); err != nil {
		return offset, err
	}
	off, _ := PutInt32(b, offset, d.Scale)
	return off + copy(b[off:], mag), nil
}

// DecodeDecimal decodes the whole of b.
func DecodeDecimal(b []byte) (Decimal, bool) { return DecodeDecimalAt(b, 0, len(b)) }

// DecodeDecimalAt decodes b[offset:offset+length]. Unlike the fixed-width
// decoders it reports a bad region with ok=false instead of an error: length
// must be at least 5 (scale plus one magnitude byte) and the region must lie
// within b.
func DecodeDecimalAt(b []byte, offset, length int) (Decimal, bool) {
	if b == nil || length < SizeofInt32+1 || !inBounds(len(b), offset, length) {
		return Decimal{}, false
	}
	scale := int32(readBE(b, offset, SizeofInt32))
	return Decimal{
		Unscaled: fromTwosComplement(b[offset+SizeofInt32 : offset+length]),
		Scale:    scale,
	}, true
}

// twosComplement returns the shortest big-endian two's-complement form of x:
// at least one byte, and a leading 0x00 / 0xFF only when the sign bit needs it.
func twosComplement(x *big.Int) []byte {
	if x.Sign() >= 0 {
		mag := x.Bytes()
		if len(mag) == 0 || mag[0]&0x80 != 0 {
			mag = append([]byte{0}, mag...)
		}
		return mag
	}
	// For x < 0 the bytes are the complement of |x|-1.
	m := new(big.Int).Neg(x)
	m.Sub(m, big.NewInt(1))
	mag := m.Bytes()
	if len(mag) == 0 || mag[0]&0x80 != 0 {
		mag = append([]byte{0}, mag...)
	}
	for i := range mag {
		mag[i] = ^mag[i]
	}
	return mag
}

func fromTwosComplement(b []byte) *big.Int {
	if len(b) == 0 || b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}
	inv := make([]byte, len(b))
	for i, c := range b {
		inv[i] = ^c
	}
	x := new(big.Int).SetBytes(inv)
	x.Add(x, big.NewInt(1))
	return x.Neg(x)
}

// MarshalBinary returns the scaled-decimal encoding.
func (d Decimal) MarshalBinary() ([]byte, error) { return d.Bytes(), nil }

// UnmarshalBinary reverses MarshalBinary; short input is ErrMalformed.
func (d *Decimal) UnmarshalBinary(b []byte) error {
	v, ok := DecodeDecimal(b)
	if !ok {
		return ErrMalformed
	}
	*d = v
	return nil
}

func (d Decimal) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Decimal) UnmarshalText(b []byte) error {
	v, err := ParseDecimal(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalCBOR encodes d as a decimal fraction (tag 4) with exponent -Scale.
// Mantissas outside the int64 range become bignums.
func (d Decimal) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  cborTagDecimalFraction,
		Content: []any{-int64(d.Scale), d.unscaled()},
	})
}

func (d *Decimal) UnmarshalCBOR(data []byte) error {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return err
	}
	if tag.Number != cborTagDecimalFraction {
		return fmt.Errorf("beconv: cbor decimal: unexpected tag %d", tag.Number)
	}
	var parts []cbor.RawMessage
	if err := cbor.Unmarshal(tag.Content, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("beconv: cbor decimal: want 2 elements, got %d", len(parts))
	}
	var exp int64
	if err := cbor.Unmarshal(parts[0], &exp); err != nil {
		return err
	}
	if exp < -math.MaxInt32 || exp > -math.MinInt32 {
		return fmt.Errorf("beconv: cbor decimal: exponent %d out of range", exp)
	}
	var mant big.Int
	if err := cbor.Unmarshal(parts[1], &mant); err != nil {
		return err
	}
	*d = Decimal{Unscaled: &mant, Scale: int32(-exp)}
	return nil
}
