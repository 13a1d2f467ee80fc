// Package jsontree implements a document-model JSON codec: text is decoded
// into an immutable tagged-union Value tree, and Value trees are serialized
// back to text. No struct mapping, no streaming; the unit of work is one
// whole document.
//
// Components:
//   - Value: tagged union over null/bool/number/string/array/object. Numbers
//     are always float64. Object member order is preserved for round-trip
//     stability; duplicate keys collapse last-write-wins.
//   - Decoder/Encoder: recursive-descent parse and depth-first serialization,
//     both stateless and safe for concurrent use on independent inputs.
//   - codec: byte-level Codec implementations around Value (JSON text, CBOR,
//     Msgpack, protobuf structpb) for storage and transport.
//   - doccache: content-addressed memoization of Canonical over a pluggable
//     byte Provider (Ristretto, BigCache, Redis).
//
// Strictness: malformed numbers, trailing data, unterminated containers and
// empty input are all ParseErrors. The encoder refuses NaN/Inf and reports
// self-referential containers as ErrCyclicReference instead of recursing
// forever. Both directions enforce a nesting depth limit.
package jsontree
