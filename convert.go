package jsontree

import (
	"fmt"
	"sort"
)

// FromGo converts a dynamically-typed Go value into a Value tree. Supported
// inputs are nil, bool, string, all integer and float widths, []any,
// []Value, map[string]any and map[any]any with string keys (what generic
// CBOR/msgpack decoding produces). Map member order is not observable in Go,
// so object members are sorted by key to keep the result deterministic.
// Anything else yields an EncodeError.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case []Value:
		return Array(x...), nil
	case []any:
		elems := make([]Value, len(x))
		for i, el := range x {
			ev, err := FromGo(el)
			if err != nil {
				return Value{}, err
			}
			elems[i] = ev
		}
		return Array(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(x))
		for _, k := range keys {
			mv, err := FromGo(x[k])
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: mv})
		}
		return Value{kind: KindObject, m: members}, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			ks, ok := k.(string)
			if !ok {
				return Value{}, &EncodeError{Msg: fmt.Sprintf("non-string map key %v (%T)", k, k)}
			}
			m[ks] = val
		}
		return FromGo(m)
	default:
		return Value{}, &EncodeError{Msg: fmt.Sprintf("unsupported Go type %T", v)}
	}
}

// Interface converts v back into plain Go values: nil, bool, float64,
// string, []any and map[string]any. Object member order is lost. v must be
// acyclic.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.a))
		for i, el := range v.a {
			out[i] = el.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.m))
		for _, m := range v.m {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
