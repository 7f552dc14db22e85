package wire

import (
	"bytes"
	"errors"

	"github.com/unkn0wn-root/beconv"
)

const (
	version byte = 1

	magicLen   = 4
	versionLen = 1
	kindLen    = 1
	vlenLen    = beconv.SizeofInt32
	headerLen  = magicLen + versionLen + kindLen + vlenLen
)

var (
	ErrCorrupt = errors.New("beconv: corrupt entry")
	magic4     = [...]byte{'B', 'E', 'C', 'V'}
)

func hasMagic(b []byte) bool {
	return len(b) >= magicLen && bytes.Equal(b[:magicLen], magic4[:])
}

// Entry: magic(4) | ver(1) | kind(1) | vlen(i32 be) | payload(vlen)
//
// kind is the beconv.Kind of the payload, or KindInvalid when the codec that
// produced it is not a fixed kind (documents, tagged values).
func Encode(kind beconv.Kind, payload []byte) []byte {
	b := make([]byte, headerLen+len(payload))
	off := copy(b, magic4[:])
	b[off] = version
	off += versionLen
	b[off] = byte(kind)
	off += kindLen
	// b is sized for the whole entry; these puts cannot run out of room.
	off, _ = beconv.PutInt32(b, off, int32(len(payload)))
	_, _ = beconv.PutBytes(b, off, payload, 0, len(payload))
	return b
}

// Decode returns the kind and a payload slice aliasing b. Anything other than
// exactly one well-formed entry is ErrCorrupt.
func Decode(b []byte) (beconv.Kind, []byte, error) {
	if len(b) < headerLen || !hasMagic(b) {
		return beconv.KindInvalid, nil, ErrCorrupt
	}
	off := magicLen
	if b[off] != version {
		return beconv.KindInvalid, nil, ErrCorrupt
	}
	off += versionLen
	kind := beconv.Kind(b[off])
	if kind != beconv.KindInvalid && !kind.Valid() {
		return beconv.KindInvalid, nil, ErrCorrupt
	}
	off += kindLen
	vlen, err := beconv.DecodeInt32At(b, off, vlenLen)
	if err != nil {
		return beconv.KindInvalid, nil, ErrCorrupt
	}
	off += vlenLen
	if vlen < 0 || int(vlen) != len(b)-off {
		return beconv.KindInvalid, nil, ErrCorrupt
	}
	return kind, b[off:], nil
}
