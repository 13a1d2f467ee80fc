package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocKey returns the content-addressed storage key for a document:
// prefix + ":" + first 16 hex chars of the input's SHA-256. Identical
// inputs always map to the same key, so entries never need invalidation.
func DocKey(prefix, doc string) string {
	sum := sha256.Sum256([]byte(doc))
	return prefix + ":" + hex.EncodeToString(sum[:8])
}
