package codec

import (
	"strings"
	"testing"

	"github.com/unkn0wn-root/jsontree"
)

// tree is a representative document exercising every kind.
func tree() jsontree.Value {
	return jsontree.Object(
		jsontree.Field("name", jsontree.String("arch")),
		jsontree.Field("version", jsontree.Number(6.1)),
		jsontree.Field("lts", jsontree.Bool(false)),
		jsontree.Field("modules", jsontree.Array(
			jsontree.String("kvm"),
			jsontree.Number(2),
			jsontree.Null(),
		)),
		jsontree.Field("meta", jsontree.Object()),
	)
}

func roundTrip(t *testing.T, c Codec, v jsontree.Value) {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !jsontree.Equal(got, v) {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got, v)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	roundTrip(t, JSON{}, tree())
}

func TestJSONDecodeStrict(t *testing.T) {
	if _, err := (JSON{}).Decode([]byte("[1,")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCBORRoundTrip(t *testing.T) {
	roundTrip(t, MustCBOR(false), tree())
}

func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR(true)
	v := tree()
	a, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("deterministic encoding differs between calls")
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	roundTrip(t, Msgpack{}, tree())
}

func TestProtobufRoundTrip(t *testing.T) {
	roundTrip(t, Protobuf{}, tree())
}

func TestLimitPassThrough(t *testing.T) {
	c := Limit{Inner: JSON{}, MaxDecode: 1 << 10}
	roundTrip(t, c, tree())
}

func TestLimitRejectsOversized(t *testing.T) {
	c := Limit{Inner: JSON{}, MaxDecode: 8}
	big := []byte(`"` + strings.Repeat("a", 64) + `"`)
	if _, err := c.Decode(big); err == nil {
		t.Fatalf("expected size error")
	}
	// Encode side is not limited
	if _, err := c.Encode(jsontree.String(strings.Repeat("a", 64))); err != nil {
		t.Fatalf("Encode: %v", err)
	}
}
