// Package codec provides byte-level serializations of jsontree.Value trees
// for storage and transport: the native JSON text codec plus CBOR, msgpack
// and protobuf (structpb) transcoders.
//
// The binary transcoders go through plain Go maps, so object member order
// is not preserved across a binary round trip; member sets and values are.
package codec

import "github.com/unkn0wn-root/jsontree"

// Codec turns Value trees into bytes and back.
type Codec interface {
	Encode(jsontree.Value) ([]byte, error)
	Decode([]byte) (jsontree.Value, error)
}
