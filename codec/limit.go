package codec

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/beconv"
)

// ErrTooLarge is returned by LimitCodec for payloads above MaxDecode.
var ErrTooLarge = errors.New("codec: payload too large")

// LimitCodec wraps another codec to enforce a maximum payload size at Decode
// time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0, size
// limiting is disabled.
//
// Fixed-width codecs already reject payloads of the wrong size; the wrapper
// is meant for strings, decimals and documents read from a shared store.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxDecode int // bytes
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}

// Kind forwards the inner codec's kind so a wrapped fixed codec keeps its
// kind check in the store.
func (c LimitCodec[V]) Kind() beconv.Kind { return KindOf(c.Inner) }
