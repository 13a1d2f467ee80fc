// Package wire frames cached canonical documents. Every doccache entry is
// validated against this format on read; anything that does not match is
// treated as foreign or corrupt and deleted by the caller.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// version is part of every frame, so changing the canonical form only
// requires bumping it: old entries stop validating and self-heal away.
const version byte = 1

var (
	ErrCorrupt = errors.New("doccache: corrupt entry")
	magic4     = [...]byte{'J', 'T', 'R', 'E'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame: magic(4) | ver(1) | dlen(u32 be) | doc(dlen)
func Encode(doc string) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(doc))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(doc)))
	buf.Write(u4[:])

	buf.WriteString(doc)
	return buf.Bytes()
}

// Decode validates the frame and returns the document. Trailing bytes after
// the declared length are rejected.
func Decode(b []byte) (string, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return "", ErrCorrupt
	}
	dlen := int(binary.BigEndian.Uint32(b[5:9]))
	if dlen < 0 || dlen != len(b)-hdr {
		return "", ErrCorrupt
	}
	return string(b[hdr:]), nil
}
