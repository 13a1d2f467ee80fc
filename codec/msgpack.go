package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/jsontree"
)

// Msgpack transcodes Value trees using vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Codec = Msgpack{}

func (Msgpack) Encode(v jsontree.Value) ([]byte, error) {
	return msgpack.Marshal(v.Interface())
}

func (Msgpack) Decode(b []byte) (jsontree.Value, error) {
	var raw any
	if err := msgpack.Unmarshal(b, &raw); err != nil {
		return jsontree.Value{}, err
	}
	return jsontree.FromGo(raw)
}
