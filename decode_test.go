package jsontree

import (
	"errors"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, s string) Value {
	t.Helper()
	v, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", s, err)
	}
	return v
}

func mustParseError(t *testing.T, s string) *ParseError {
	t.Helper()
	_, err := Decode(s)
	if err == nil {
		t.Fatalf("Decode(%q): expected error, got none", s)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Decode(%q): error %v is not a ParseError", s, err)
	}
	return pe
}

func TestDecodeScalars(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"null", Null()},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"42", Number(42)},
		{"   42   ", Number(42)}, // surrounding whitespace tolerated
		{"\t\n-1.5e3\r", Number(-1500)},
		{"0.25", Number(0.25)},
		{"-0", Number(0)},
		{"1E+2", Number(100)},
		{`"a"`, String("a")},
		{`""`, String("")},
	}
	for _, tc := range cases {
		got := mustDecode(t, tc.in)
		if !Equal(got, tc.want) {
			t.Fatalf("Decode(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDecodeStringEscapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"a\nb"`, "a\nb"},
		{`"\"\\\/"`, `"\/`},
		{`"\b\f\r\t"`, "\b\f\r\t"},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"☃"`, "☃"},
		{`"😀"`, "😀"}, // surrogate pair combines
		{`"\ud800"`, "�"},  // lone surrogate degrades to U+FFFD
		{`"plain utf8: héllo"`, "plain utf8: héllo"},
	}
	for _, tc := range cases {
		v := mustDecode(t, tc.in)
		got, ok := v.Text()
		if !ok || got != tc.want {
			t.Fatalf("Decode(%q) = %q (ok=%v), want %q", tc.in, got, ok, tc.want)
		}
	}
}

func TestDecodeContainers(t *testing.T) {
	if v := mustDecode(t, "{}"); v.Kind() != KindObject || v.Len() != 0 {
		t.Fatalf("Decode({}) = %s, want empty object", v)
	}
	if v := mustDecode(t, "[]"); v.Kind() != KindArray || v.Len() != 0 {
		t.Fatalf("Decode([]) = %s, want empty array", v)
	}

	v := mustDecode(t, `{"b": 1, "a": [true, null, "x"], "c": {"d": -2.5}}`)
	want := Object(
		Field("b", Number(1)),
		Field("a", Array(Bool(true), Null(), String("x"))),
		Field("c", Object(Field("d", Number(-2.5)))),
	)
	if !Equal(v, want) {
		t.Fatalf("Decode mismatch:\n got %s\nwant %s", v, want)
	}

	// member order is insertion order
	ms := v.Members()
	if ms[0].Key != "b" || ms[1].Key != "a" || ms[2].Key != "c" {
		t.Fatalf("member order = %q,%q,%q, want b,a,c", ms[0].Key, ms[1].Key, ms[2].Key)
	}
}

func TestDecodeDuplicateKeysLastWins(t *testing.T) {
	v := mustDecode(t, `{"a":1,"a":2}`)
	if v.Len() != 1 {
		t.Fatalf("object size = %d, want 1", v.Len())
	}
	got, ok := v.Get("a")
	if n, _ := got.Number(); !ok || n != 2 {
		t.Fatalf(`Get("a") = %s (ok=%v), want 2`, got, ok)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		"",
		"   \n\t",
		"[1, 2,]", // trailing comma
		`{"a":1`,  // missing closing brace
		`{"a" 1}`, // missing colon
		`{"a":1,}`,
		`{`,
		`[`,
		`[1 2]`,
		`{"a":}`,
		`tru`,
		`nul`,
		`falsey`, // trailing garbage after literal
		`123abc`,
		`{} {}`,
		`"abc`,        // unterminated string
		`"ab\q"`,      // bad escape
		`"\u12g4"`,    // bad hex
		`-`,           // bare minus
		`1.`,          // missing frac digits
		`2e`,          // missing exponent digits
		`+1`,          // leading plus is not JSON
		`1e999`,       // overflows float64
		`{'a':1}`,     // single quotes
		string([]byte{0xff}),
	}
	for _, in := range cases {
		pe := mustParseError(t, in)
		if pe.Offset < 0 || pe.Offset > len(in) {
			t.Fatalf("Decode(%q): offset %d out of range", in, pe.Offset)
		}
	}
}

func TestDecodeAllowEmpty(t *testing.T) {
	d := Decoder{AllowEmpty: true}
	for _, in := range []string{"", "  \r\n\t "} {
		v, err := d.Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q) with AllowEmpty: %v", in, err)
		}
		if !v.IsNull() {
			t.Fatalf("Decode(%q) with AllowEmpty = %s, want null", in, v)
		}
	}
	// non-blank input still parses strictly
	if _, err := d.Decode("nope"); err == nil {
		t.Fatalf("AllowEmpty must not relax literal parsing")
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	d := Decoder{MaxDepth: 10}

	ok := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	if _, err := d.Decode(ok); err != nil {
		t.Fatalf("Decode at limit: %v", err)
	}

	deep := strings.Repeat("[", 12) + strings.Repeat("]", 12)
	_, err := d.Decode(deep)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Decode beyond limit: got %v, want ParseError", err)
	}
	if !strings.Contains(pe.Msg, "nesting too deep") {
		t.Fatalf("unexpected message: %q", pe.Msg)
	}

	// the default limit holds for adversarial input without crashing
	adversarial := strings.Repeat("[", 100000)
	if _, err := Decode(adversarial); err == nil {
		t.Fatalf("expected error for unterminated deep nesting")
	}
}

func TestDecodeReentrant(t *testing.T) {
	// stateless decoder: concurrent decodes on independent inputs
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				v, err := Decode(`{"k":[1,2,3],"s":"x"}`)
				if err == nil && v.Len() != 2 {
					err = errors.New("wrong shape")
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent decode: %v", err)
		}
	}
}
