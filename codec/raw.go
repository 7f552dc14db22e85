package codec

import "github.com/unkn0wn-root/beconv"

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String stores Go strings as their UTF-8 bytes. Decode performs no
// validation.
type String struct{}

func (String) Kind() beconv.Kind               { return beconv.KindString }
func (String) Encode(s string) ([]byte, error) { return beconv.EncodeString(s), nil }
func (String) Decode(b []byte) (string, error) { return beconv.DecodeString(b), nil }
