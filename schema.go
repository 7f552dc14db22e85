package beconv

import "fmt"

// Schema lays out fixed-width values back to back, e.g. to build composite
// keys: Schema{KindInt32, KindInt64} encodes (id, timestamp) into 12 bytes.
type Schema []Kind

// Width is the total encoded length of a row. It fails with ErrVariableWidth
// when a kind has no fixed width.
func (s Schema) Width() (int, error) {
	total := 0
	for i, k := range s {
		w, ok := WidthOf(k)
		if !ok {
			return 0, fmt.Errorf("beconv: schema column %d (%s): %w", i, k, ErrVariableWidth)
		}
		total += w
	}
	return total, nil
}

// Encode writes vals in schema order into a new buffer.
func (s Schema) Encode(vals ...Value) ([]byte, error) {
	width, err := s.Width()
	if err != nil {
		return nil, err
	}
	if len(vals) != len(s) {
		return nil, fmt.Errorf("beconv: schema has %d columns, got %d values", len(s), len(vals))
	}
	b := make([]byte, width)
	off := 0
	for i, v := range vals {
		if v.Kind() != s[i] {
			return nil, fmt.Errorf("beconv: schema column %d: want %s, got %s", i, s[i], v.Kind())
		}
		if off, err = v.Put(b, off); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Decode splits b into one value per column. b must be exactly Width bytes.
func (s Schema) Decode(b []byte) ([]Value, error) {
	width, err := s.Width()
	if err != nil {
		return nil, err
	}
	if len(b) != width {
		return nil, explain(opDecode, KindInvalid, len(b), 0, len(b), width)
	}
	vals := make([]Value, len(s))
	off := 0
	for i, k := range s {
		w, _ := WidthOf(k)
		if vals[i], err = DecodeValue(k, b, off, w); err != nil {
			return nil, err
		}
		off += w
	}
	return vals, nil
}
