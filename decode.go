package jsontree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// DefaultMaxDepth bounds container nesting for both Decode and Encode.
// Deeply nested adversarial input fails with an error instead of
// exhausting the goroutine stack.
const DefaultMaxDepth = 1000

// Decoder parses JSON text into Value trees. The zero value is ready to use
// with strict defaults. Decoders are stateless; a single Decoder is safe for
// concurrent use.
type Decoder struct {
	// MaxDepth is the maximum container nesting depth. 0 => DefaultMaxDepth.
	MaxDepth int

	// AllowEmpty makes empty (or whitespace-only) input decode to null
	// instead of failing. Off by default: absent input is almost always a
	// caller bug, not a document.
	AllowEmpty bool
}

// Decode parses text with default (strict) settings.
func Decode(text string) (Value, error) { return Decoder{}.Decode(text) }

// Decode parses one complete JSON document. Leading and trailing whitespace
// is tolerated; any other trailing content is a ParseError.
func (d Decoder) Decode(text string) (Value, error) {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := parser{s: text, maxDepth: maxDepth}
	p.skipSpace()
	if p.off == len(p.s) {
		if d.AllowEmpty {
			return Null(), nil
		}
		return Value{}, p.errf("unexpected end of input")
	}
	v, err := p.value(0)
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.off != len(p.s) {
		return Value{}, p.errf("trailing data after top-level value")
	}
	return v, nil
}

// parser is a cursor over the input. Offsets in ParseErrors are 0-based
// byte offsets into the original text.
type parser struct {
	s        string
	off      int
	maxDepth int
}

func (p *parser) errf(format string, args ...any) error {
	return &ParseError{Offset: p.off, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.off < len(p.s) {
		switch p.s[p.off] {
		case ' ', '\t', '\n', '\r':
			p.off++
		default:
			return
		}
	}
}

// value dispatches on the lookahead byte. depth counts enclosing containers.
func (p *parser) value(depth int) (Value, error) {
	if depth > p.maxDepth {
		return Value{}, p.errf("nesting too deep (limit %d)", p.maxDepth)
	}
	if p.off >= len(p.s) {
		return Value{}, p.errf("unexpected end of input")
	}
	switch c := p.s[p.off]; {
	case c == '{':
		return p.object(depth)
	case c == '[':
		return p.array(depth)
	case c == '"':
		s, err := p.stringLit()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == 't':
		return p.literal("true", Bool(true))
	case c == 'f':
		return p.literal("false", Bool(false))
	case c == 'n':
		return p.literal("null", Null())
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return Value{}, p.errf("unexpected character %q", c)
	}
}

func (p *parser) literal(lit string, v Value) (Value, error) {
	if !strings.HasPrefix(p.s[p.off:], lit) {
		return Value{}, p.errf("invalid literal")
	}
	p.off += len(lit)
	return v, nil
}

func (p *parser) object(depth int) (Value, error) {
	p.off++ // '{'
	p.skipSpace()
	if p.off < len(p.s) && p.s[p.off] == '}' {
		p.off++
		return Object(), nil
	}
	var members []Member
	for {
		p.skipSpace()
		if p.off >= len(p.s) {
			return Value{}, p.errf("unterminated object")
		}
		if p.s[p.off] != '"' {
			return Value{}, p.errf("expected object key")
		}
		key, err := p.stringLit()
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.off >= len(p.s) || p.s[p.off] != ':' {
			return Value{}, p.errf("expected ':' after object key")
		}
		p.off++
		p.skipSpace()
		v, err := p.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		members = putMember(members, key, v)
		p.skipSpace()
		if p.off >= len(p.s) {
			return Value{}, p.errf("unterminated object")
		}
		switch p.s[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return Value{kind: KindObject, m: members}, nil
		default:
			return Value{}, p.errf("expected ',' or '}' in object")
		}
	}
}

// putMember inserts key last-write-wins, keeping first-occurrence position.
func putMember(members []Member, key string, v Value) []Member {
	for i := range members {
		if members[i].Key == key {
			members[i].Value = v
			return members
		}
	}
	return append(members, Member{Key: key, Value: v})
}

func (p *parser) array(depth int) (Value, error) {
	p.off++ // '['
	p.skipSpace()
	if p.off < len(p.s) && p.s[p.off] == ']' {
		p.off++
		return Array(), nil
	}
	var elems []Value
	for {
		p.skipSpace()
		v, err := p.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
		p.skipSpace()
		if p.off >= len(p.s) {
			return Value{}, p.errf("unterminated array")
		}
		switch p.s[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return Value{kind: KindArray, a: elems}, nil
		default:
			return Value{}, p.errf("expected ',' or ']' in array")
		}
	}
}

// stringLit consumes a quoted string starting at the opening '"'.
func (p *parser) stringLit() (string, error) {
	start := p.off
	p.off++ // '"'

	// Fast path: scan for a close quote with no escapes in between.
	i := p.off
	for i < len(p.s) {
		c := p.s[i]
		if c == '"' {
			s := p.s[p.off:i]
			p.off = i + 1
			return s, nil
		}
		if c == '\\' {
			break
		}
		i++
	}
	if i >= len(p.s) {
		p.off = start
		return "", p.errf("unterminated string")
	}

	var sb strings.Builder
	sb.WriteString(p.s[p.off:i])
	p.off = i
	for {
		if p.off >= len(p.s) {
			p.off = start
			return "", p.errf("unterminated string")
		}
		switch c := p.s[p.off]; c {
		case '"':
			p.off++
			return sb.String(), nil
		case '\\':
			if p.off+1 >= len(p.s) {
				p.off = start
				return "", p.errf("unterminated string")
			}
			switch esc := p.s[p.off+1]; esc {
			case '"', '\\', '/':
				sb.WriteByte(esc)
				p.off += 2
			case 'b':
				sb.WriteByte('\b')
				p.off += 2
			case 'f':
				sb.WriteByte('\f')
				p.off += 2
			case 'n':
				sb.WriteByte('\n')
				p.off += 2
			case 'r':
				sb.WriteByte('\r')
				p.off += 2
			case 't':
				sb.WriteByte('\t')
				p.off += 2
			case 'u':
				r, err := p.unicodeEscape()
				if err != nil {
					return "", err
				}
				sb.WriteRune(r)
			default:
				return "", p.errf(`invalid escape '\%c'`, esc)
			}
		default:
			sb.WriteByte(c)
			p.off++
		}
	}
}

// unicodeEscape consumes `\uXXXX` with the cursor on the backslash.
// A high surrogate followed by an escaped low surrogate combines into one
// code point; a lone surrogate becomes U+FFFD.
func (p *parser) unicodeEscape() (rune, error) {
	r, ok := p.hex4(p.off + 2)
	if !ok {
		return 0, p.errf(`invalid \u escape`)
	}
	p.off += 6
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	if p.off+1 < len(p.s) && p.s[p.off] == '\\' && p.s[p.off+1] == 'u' {
		if r2, ok := p.hex4(p.off + 2); ok {
			if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
				p.off += 6
				return combined, nil
			}
		}
	}
	return utf8.RuneError, nil
}

func (p *parser) hex4(at int) (rune, bool) {
	if at+4 > len(p.s) {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := p.s[at+i]
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, true
}

// number consumes: '-'? digits ('.' digits)? ([eE] [+-]? digits)?
// A bare '-' or a missing digit group anywhere is a ParseError, and so is a
// literal whose magnitude overflows float64.
func (p *parser) number() (Value, error) {
	start := p.off
	if p.s[p.off] == '-' {
		p.off++
	}
	if !p.digits() {
		p.off = start
		return Value{}, p.errf("invalid number literal")
	}
	if p.off < len(p.s) && p.s[p.off] == '.' {
		p.off++
		if !p.digits() {
			p.off = start
			return Value{}, p.errf("invalid number literal")
		}
	}
	if p.off < len(p.s) && (p.s[p.off] == 'e' || p.s[p.off] == 'E') {
		p.off++
		if p.off < len(p.s) && (p.s[p.off] == '+' || p.s[p.off] == '-') {
			p.off++
		}
		if !p.digits() {
			p.off = start
			return Value{}, p.errf("invalid number literal")
		}
	}
	f, err := strconv.ParseFloat(p.s[start:p.off], 64)
	if err != nil {
		return Value{}, &ParseError{Offset: start, Msg: "invalid number literal " + strconv.Quote(p.s[start:p.off])}
	}
	return Number(f), nil
}

func (p *parser) digits() bool {
	n := 0
	for p.off < len(p.s) && p.s[p.off] >= '0' && p.s[p.off] <= '9' {
		p.off++
		n++
	}
	return n > 0
}
