package codec

import (
	"fmt"

	"github.com/unkn0wn-root/jsontree"
)

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Typical use: protect against oversized inputs coming from a shared cache
// or an untrusted source before the parser allocates anything.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted payload length (in bytes) for
	// Decode. Larger payloads fail without invoking Inner.
	MaxDecode int
}

func (c Limit) Encode(v jsontree.Value) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit) Decode(b []byte) (jsontree.Value, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return jsontree.Value{}, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
