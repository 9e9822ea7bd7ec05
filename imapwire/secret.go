package imapwire

import "crypto/subtle"

// Secret wraps a credential-bearing byte payload: AUTHENTICATE initial
// responses, LOGIN passwords, and AUTHENTICATE continuation data.
//
// Its Debug representation is always redacted and its Equal method runs
// in time dependent only on length, never on content, so a Secret can be
// compared against a stored credential without becoming a timing oracle.
// Encode emits the inner bytes unchanged: redaction is a reflection
// concern only, never a wire concern.
type Secret struct {
	inner []byte
}

// NewSecret wraps b. The caller must not mutate b afterwards.
func NewSecret(b []byte) Secret {
	return Secret{inner: b}
}

// Declassify exposes the inner bytes, opting out of every guarantee
// the wrapper provides. Callers that need the raw credential (to check
// it against a password store, say) must call this explicitly; nothing
// reaches it by accident.
func (s Secret) Declassify() []byte {
	return s.inner
}

// Equal reports whether s and other hold the same bytes. The running
// time depends only on len(s.inner) and len(other.inner), never on
// where the two values first differ.
func (s Secret) Equal(other Secret) bool {
	if len(s.inner) != len(other.inner) {
		return false
	}
	return subtle.ConstantTimeCompare(s.inner, other.inner) == 1
}

// String implements fmt.Stringer with a redacted representation.
func (s Secret) String() string {
	return "/* REDACTED */"
}

// GoString implements fmt.GoStringer so %#v also redacts.
func (s Secret) GoString() string {
	return "imapwire.Secret{/* REDACTED */}"
}
