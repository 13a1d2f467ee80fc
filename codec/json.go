package codec

import "github.com/unkn0wn-root/jsontree"

// JSON is the native text codec: Encode produces compact JSON, Decode runs
// the strict recursive-descent parser. The zero value is ready to use;
// set the embedded Decoder/Encoder fields to tune depth limits or allow
// empty input.
type JSON struct {
	Decoder jsontree.Decoder
	Encoder jsontree.Encoder
}

func (c JSON) Encode(v jsontree.Value) ([]byte, error) {
	s, err := c.Encoder.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (c JSON) Decode(b []byte) (jsontree.Value, error) {
	return c.Decoder.Decode(string(b))
}
