package jsontree

// Canonical normalizes a JSON document: one strict decode followed by one
// compact encode. Whitespace is dropped, escapes are resolved and re-applied
// minimally, numbers take their shortest round-trip form and duplicate
// object keys collapse last-write-wins. Two documents that decode to equal
// trees with identical member order canonicalize to identical bytes, which
// makes the output suitable for hashing and deduplication.
func Canonical(text string) (string, error) {
	v, err := Decode(text)
	if err != nil {
		return "", err
	}
	return Encode(v)
}
