package jsontree

// Kind identifies which JSON variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a single JSON value of any kind. The zero Value is null.
//
// Values are immutable once constructed: neither the decoder nor the encoder
// mutates a tree after it is built, and callers are expected not to either.
// Container constructors retain the slice they are given without copying, so
// a caller that keeps the slice can still alias into the tree - the encoder
// detects the degenerate self-referential case (ErrCyclicReference) rather
// than recursing forever.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	a    []Value
	m    []Member
}

// Member is one key/value pair of an object. Member order is insertion
// order and is preserved through decode/encode round trips.
type Member struct {
	Key   string
	Value Value
}

// Field builds an object member.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Null returns the JSON null value (same as a zero Value).
func Null() Value { return Value{} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number value. All numbers are float64; the encoder
// rejects NaN and infinities since JSON cannot represent them.
func Number(f float64) Value { return Value{kind: KindNumber, n: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array of elems. The slice is retained, not copied.
func Array(elems ...Value) Value { return Value{kind: KindArray, a: elems} }

// Object returns a JSON object. The member slice is retained, not copied.
// Duplicate keys collapse last-write-wins, keeping the position of the
// first occurrence.
func Object(members ...Member) Value {
	return Value{kind: KindObject, m: dedupMembers(members)}
}

// dedupMembers enforces unique keys, last write wins. The common case has
// no duplicates and returns the input slice untouched.
func dedupMembers(members []Member) []Member {
	for i := 1; i < len(members); i++ {
		for j := 0; j < i; j++ {
			if members[j].Key == members[i].Key {
				return dedupMembersSlow(members)
			}
		}
	}
	return members
}

func dedupMembersSlow(members []Member) []Member {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		replaced := false
		for i := range out {
			if out[i].Key == m.Key {
				out[i].Value = m.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, m)
		}
	}
	return out
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; ok is false when v is not a bool.
func (v Value) Bool() (b, ok bool) { return v.b, v.kind == KindBool }

// Number returns the numeric payload; ok is false when v is not a number.
func (v Value) Number() (float64, bool) { return v.n, v.kind == KindNumber }

// Text returns the string payload; ok is false when v is not a string.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// Len returns the element count of an array or the member count of an
// object, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.a)
	case KindObject:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the i-th array element; ok is false when v is not an array
// or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.a) {
		return Value{}, false
	}
	return v.a[i], true
}

// Get returns the value of the object member named key; ok is false when v
// is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.m {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Elems returns the array elements, nil for non-arrays. The returned slice
// is the tree's backing storage and must not be mutated.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.a
}

// Members returns the object members in insertion order, nil for
// non-objects. The returned slice must not be mutated.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.m
}

// String implements fmt.Stringer as a best-effort debug encoding.
func (v Value) String() string {
	s, err := Encode(v)
	if err != nil {
		return "<invalid " + v.kind.String() + ">"
	}
	return s
}

// Equal reports structural equality. Numbers compare exactly, object member
// order is ignored, key/value sets must match.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.m) != len(b.m) {
			return false
		}
		for _, m := range a.m {
			bv, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
