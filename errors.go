package jsontree

import (
	"errors"
	"fmt"
)

// ErrCyclicReference is returned by Encode when a container is reached
// while it is still being serialized further up the same call stack.
var ErrCyclicReference = errors.New("jsontree: cyclic reference")

// ParseError reports malformed input to Decode. Offset is the 0-based byte
// offset at which the problem was detected.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsontree: parse error at offset %d: %s", e.Offset, e.Msg)
}

// EncodeError reports a Value that cannot be serialized (non-finite number,
// nesting too deep) or a Go value FromGo cannot represent.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string {
	return "jsontree: encode error: " + e.Msg
}
