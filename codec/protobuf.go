package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/jsontree"
)

// Protobuf transcodes Value trees through the well-known
// google.protobuf.Value message (structpb) to proto wire bytes. This is the
// interchange shape gRPC APIs use for schemaless JSON payloads.
//
// structpb shares jsontree's model: numbers are float64, NaN/Inf are
// rejected at Encode.
type Protobuf struct{}

var _ Codec = Protobuf{}

func (Protobuf) Encode(v jsontree.Value) ([]byte, error) {
	pv, err := structpb.NewValue(v.Interface())
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pv)
}

func (Protobuf) Decode(b []byte) (jsontree.Value, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return jsontree.Value{}, err
	}
	return jsontree.FromGo(pv.AsInterface())
}
