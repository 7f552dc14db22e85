package codec

import "github.com/unkn0wn-root/beconv"

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Kinded is implemented by codecs whose payload is a single beconv kind.
// The store records the kind next to the payload and treats a mismatch on
// read as corruption.
type Kinded interface {
	Kind() beconv.Kind
}

// KindOf returns the kind c declares, or KindInvalid when it declares none.
func KindOf(c any) beconv.Kind {
	if k, ok := c.(Kinded); ok {
		return k.Kind()
	}
	return beconv.KindInvalid
}
