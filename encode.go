package jsontree

import (
	"math"
	"reflect"
	"strconv"
)

// Encoder serializes Value trees to JSON text. The zero value is ready to
// use. Encoders are stateless; a single Encoder is safe for concurrent use.
type Encoder struct {
	// MaxDepth is the maximum container nesting depth. 0 => DefaultMaxDepth.
	MaxDepth int
}

// Encode serializes v with default settings.
func Encode(v Value) (string, error) { return Encoder{}.Encode(v) }

// Encode serializes v as compact JSON. Object members are written in
// insertion order, so output is deterministic for a given tree. A container
// reached while it is still being written fails with ErrCyclicReference.
func (e Encoder) Encode(v Value) (string, error) {
	maxDepth := e.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	st := encodeState{maxDepth: maxDepth}
	if err := st.value(v, 0); err != nil {
		return "", err
	}
	return string(st.buf), nil
}

type encodeState struct {
	buf      []byte
	maxDepth int

	// active holds backing-array pointers of containers currently being
	// written on the call stack; revisiting one means the tree has a cycle.
	active map[uintptr]struct{}
}

func (st *encodeState) value(v Value, depth int) error {
	if depth > st.maxDepth {
		return &EncodeError{Msg: "nesting too deep (limit " + strconv.Itoa(st.maxDepth) + ")"}
	}
	switch v.kind {
	case KindNull:
		st.buf = append(st.buf, "null"...)
	case KindBool:
		if v.b {
			st.buf = append(st.buf, "true"...)
		} else {
			st.buf = append(st.buf, "false"...)
		}
	case KindNumber:
		return st.number(v.n)
	case KindString:
		st.stringLit(v.s)
	case KindArray:
		return st.array(v, depth)
	case KindObject:
		return st.object(v, depth)
	default:
		return &EncodeError{Msg: "unsupported kind " + v.kind.String()}
	}
	return nil
}

func (st *encodeState) enter(p uintptr) error {
	if _, ok := st.active[p]; ok {
		return ErrCyclicReference
	}
	if st.active == nil {
		st.active = make(map[uintptr]struct{})
	}
	st.active[p] = struct{}{}
	return nil
}

func (st *encodeState) array(v Value, depth int) error {
	if len(v.a) > 0 {
		p := reflect.ValueOf(v.a).Pointer()
		if err := st.enter(p); err != nil {
			return err
		}
		defer delete(st.active, p)
	}
	st.buf = append(st.buf, '[')
	for i, el := range v.a {
		if i > 0 {
			st.buf = append(st.buf, ',')
		}
		if err := st.value(el, depth+1); err != nil {
			return err
		}
	}
	st.buf = append(st.buf, ']')
	return nil
}

func (st *encodeState) object(v Value, depth int) error {
	if len(v.m) > 0 {
		p := reflect.ValueOf(v.m).Pointer()
		if err := st.enter(p); err != nil {
			return err
		}
		defer delete(st.active, p)
	}
	st.buf = append(st.buf, '{')
	for i, m := range v.m {
		if i > 0 {
			st.buf = append(st.buf, ',')
		}
		st.stringLit(m.Key)
		st.buf = append(st.buf, ':')
		if err := st.value(m.Value, depth+1); err != nil {
			return err
		}
	}
	st.buf = append(st.buf, '}')
	return nil
}

// number writes the shortest decimal representation that round-trips,
// preferring plain notation for everyday magnitudes.
func (st *encodeState) number(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &EncodeError{Msg: "number " + strconv.FormatFloat(f, 'g', -1, 64) + " has no JSON representation"}
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	st.buf = strconv.AppendFloat(st.buf, f, format, -1, 64)
	if format == 'e' {
		// 1e-09 -> 1e-9
		n := len(st.buf)
		if n >= 4 && st.buf[n-4] == 'e' && st.buf[n-3] == '-' && st.buf[n-2] == '0' {
			st.buf[n-2] = st.buf[n-1]
			st.buf = st.buf[:n-1]
		}
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// stringLit writes s quoted. Quotes, backslashes and control bytes are
// escaped; everything else (including non-ASCII) passes through as UTF-8.
func (st *encodeState) stringLit(s string) {
	st.buf = append(st.buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '"' && c != '\\' && c >= 0x20 {
			continue
		}
		st.buf = append(st.buf, s[start:i]...)
		switch c {
		case '"':
			st.buf = append(st.buf, '\\', '"')
		case '\\':
			st.buf = append(st.buf, '\\', '\\')
		case '\b':
			st.buf = append(st.buf, '\\', 'b')
		case '\f':
			st.buf = append(st.buf, '\\', 'f')
		case '\n':
			st.buf = append(st.buf, '\\', 'n')
		case '\r':
			st.buf = append(st.buf, '\\', 'r')
		case '\t':
			st.buf = append(st.buf, '\\', 't')
		default:
			st.buf = append(st.buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	st.buf = append(st.buf, s[start:]...)
	st.buf = append(st.buf, '"')
}
