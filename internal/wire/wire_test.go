package wire

import (
	"encoding/binary"
	"testing"
)

func mustDecode(t *testing.T, b []byte) string {
	t.Helper()
	doc, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return doc
}

func TestRoundTrip(t *testing.T) {
	for _, doc := range []string{"", "null", `{"a":[1,2]}`} {
		enc := Encode(doc)
		if got := mustDecode(t, enc); got != doc {
			t.Fatalf("round trip: got %q want %q", got, doc)
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := append(Encode("x"), 0xDE, 0xAD)
	if _, err := Decode(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestCorruptHeadersAndLengths(t *testing.T) {
	enc := Encode("abc")

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := Decode(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := Decode(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// dlen announces more than available
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[5:9], uint32(len("abc")+1))
	if _, err := Decode(tooLong); err == nil {
		t.Fatalf("expected error on dlen beyond buffer")
	}

	// truncated buffer
	if _, err := Decode(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}

	// far too short
	if _, err := Decode([]byte{'J'}); err == nil {
		t.Fatalf("expected error on short buffer")
	}
}
