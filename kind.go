package beconv

import (
	"fmt"
	"strings"
)

// Fixed widths in bytes.
const (
	SizeofBool    = 1
	SizeofByte    = 1
	SizeofInt16   = 2
	SizeofInt32   = 4
	SizeofInt64   = 8
	SizeofFloat32 = 4
	SizeofFloat64 = 8
)

// Kind identifies one of the supported value types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindByte
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindByte:    "byte",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindDecimal: "decimal",
	KindString:  "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a supported kind.
func (k Kind) Valid() bool { return k > KindInvalid && k <= KindString }

// ParseKind maps a kind name (as returned by Kind.String) back to the Kind.
// A few common aliases are accepted: int8, short, int, long, float, double.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean":
		return KindBool, nil
	case "byte", "int8":
		return KindByte, nil
	case "int16", "short":
		return KindInt16, nil
	case "int32", "int":
		return KindInt32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float32", "float":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	case "decimal":
		return KindDecimal, nil
	case "string":
		return KindString, nil
	}
	return KindInvalid, fmt.Errorf("beconv: unknown kind %q", s)
}

// WidthOf returns the fixed width of k. ok is false for kinds whose encoded
// length depends on the value (decimal, string) and for invalid kinds.
func WidthOf(k Kind) (width int, ok bool) {
	switch k {
	case KindBool:
		return SizeofBool, true
	case KindByte:
		return SizeofByte, true
	case KindInt16:
		return SizeofInt16, true
	case KindInt32:
		return SizeofInt32, true
	case KindInt64:
		return SizeofInt64, true
	case KindFloat32:
		return SizeofFloat32, true
	case KindFloat64:
		return SizeofFloat64, true
	}
	return 0, false
}
