package beconv

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongWidth: the length passed to a decoder is not the kind's width.
	ErrWrongWidth = errors.New("beconv: wrong width")
	// ErrOutOfBounds: offset+length runs past the end of the buffer.
	ErrOutOfBounds = errors.New("beconv: out of bounds")
	// ErrInsufficientCapacity: a put does not fit in the target buffer.
	ErrInsufficientCapacity = errors.New("beconv: insufficient capacity")
	// ErrMalformed: a decimal region is too short to hold scale and magnitude.
	ErrMalformed = errors.New("beconv: malformed decimal")
	// ErrVariableWidth: a kind without a fixed width was used where one is required.
	ErrVariableWidth = errors.New("beconv: kind has no fixed width")
)

// RangeError describes a rejected read or write region.
type RangeError struct {
	Op     string // "decode", "put" or "copy"
	Kind   Kind
	Offset int
	Length int // length asked for (decode) or written (put)
	Width  int // length the kind requires
	Size   int // len of the buffer
	Err    error
}

func (e *RangeError) Error() string {
	what := "bytes"
	if e.Kind != KindInvalid {
		what = e.Kind.String()
	}
	switch e.Err {
	case ErrWrongWidth:
		return fmt.Sprintf("beconv: %s %s: wrong length %d, expected %d",
			e.Op, what, e.Length, e.Width)
	case ErrOutOfBounds:
		return fmt.Sprintf("beconv: %s %s: offset %d + length %d exceeds buffer of %d bytes",
			e.Op, what, e.Offset, e.Length, e.Size)
	case ErrInsufficientCapacity:
		return fmt.Sprintf("beconv: %s %s: not enough room at offset %d in a %d byte buffer (need %d)",
			e.Op, what, e.Offset, e.Size, e.Width)
	default:
		return fmt.Sprintf("beconv: %s %s: offset=%d length=%d width=%d size=%d: %v",
			e.Op, what, e.Offset, e.Length, e.Width, e.Size, e.Err)
	}
}

func (e *RangeError) Unwrap() error { return e.Err }

// explain builds the error for a region that failed validation. Width is
// checked before bounds, so a wrong length wins even when it would also
// overflow the buffer. Puts only ever fail for capacity.
func explain(op string, k Kind, size, offset, length, width int) error {
	e := &RangeError{Op: op, Kind: k, Offset: offset, Length: length, Width: width, Size: size}
	switch {
	case op == opPut:
		e.Err = ErrInsufficientCapacity
	case length != width:
		e.Err = ErrWrongWidth
	default:
		e.Err = ErrOutOfBounds
	}
	return e
}

const (
	opDecode = "decode"
	opPut    = "put"
	opCopy   = "copy"
)

// inBounds reports whether [offset, offset+length) lies within a buffer of
// the given size. Written to avoid overflowing offset+length.
func inBounds(size, offset, length int) bool {
	return offset >= 0 && length >= 0 && offset <= size && length <= size-offset
}

// checkRead validates a fixed-width decode region.
func checkRead(k Kind, b []byte, offset, length, width int) error {
	if length != width || !inBounds(len(b), offset, length) {
		return explain(opDecode, k, len(b), offset, length, width)
	}
	return nil
}

// checkWrite validates room for width bytes at offset.
func checkWrite(k Kind, b []byte, offset, width int) error {
	if !inBounds(len(b), offset, width) {
		return explain(opPut, k, len(b), offset, width, width)
	}
	return nil
}
