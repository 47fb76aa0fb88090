package jsonschema

// Uri is an opaque identifier value used for $id (§6). It is
// deliberately not parsed into scheme/authority/path components: nothing in
// this package resolves a Uri against a base or fetches a remote document, so
// there is nothing for a structured representation to buy. Two Uris are equal
// when their underlying text is byte-for-byte equal; no normalization (case
// folding, percent-decoding, trailing-slash stripping) is performed.
type Uri struct {
	text string
}

// FromString builds a Uri from s. Every string is accepted: there is no such
// thing as a malformed Uri in this package (§6).
func FromString(s string) Uri {
	return Uri{text: s}
}

// String returns the Uri's underlying text.
func (u Uri) String() string {
	return u.text
}

// Equal reports byte-wise equality between two Uris.
func (u Uri) Equal(other Uri) bool {
	return u.text == other.text
}

// IsZero reports whether u is the zero-value Uri (no $id present).
func (u Uri) IsZero() bool {
	return u.text == ""
}
