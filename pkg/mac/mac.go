// Package mac computes and checks HMAC-SHA256 message authentication codes.
package mac

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Size is the length in bytes of a MAC produced by Sign.
const Size = sha256.Size

// Sign returns the HMAC-SHA256 of message keyed with secret.
func Sign(message, secret []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(message)
	return h.Sum(nil)
}

// Verify recomputes the MAC of message and compares it with candidate in
// constant time. Candidates of the wrong length never match.
func Verify(message, secret, candidate []byte) bool {
	return hmac.Equal(Sign(message, secret), candidate)
}
