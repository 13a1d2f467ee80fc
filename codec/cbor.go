package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/jsontree"
)

// CBOR transcodes Value trees to/from CBOR using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing/content
// addressing). Otherwise PreferredUnsortedEncOptions are used.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - deterministic=true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests/examples; avoid in production paths.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode encodes v as CBOR using the configured EncMode. v must be acyclic.
func (c CBOR) Encode(v jsontree.Value) ([]byte, error) {
	return c.enc.Marshal(v.Interface())
}

// Decode decodes CBOR bytes into a Value using the configured DecMode.
// Payloads with non-string map keys or non-JSON types fail with an
// EncodeError from the bridge.
func (c CBOR) Decode(b []byte) (jsontree.Value, error) {
	var raw any
	if err := c.dec.Unmarshal(b, &raw); err != nil {
		return jsontree.Value{}, err
	}
	return jsontree.FromGo(raw)
}
