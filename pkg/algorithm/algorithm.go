// Package algorithm is the closed registry of signing algorithms a token may
// name in its header.
//
// The allow-list is checked before anything is dispatched. Identifiers such as
// "none", lower-cased variants or other HMAC sizes never reach a MAC
// computation, so a forged header cannot select a weaker verifier.
package algorithm

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/jwtkit/pkg/mac"
)

var ErrNotAllowed = errors.New("algorithm: not allowed")

// Algorithm is a member of the closed set of supported algorithms.
type Algorithm uint8

const (
	unknown Algorithm = iota
	// HS256 is HMAC with SHA-256.
	HS256
)

// allowed maps header identifiers to algorithms. It is never mutated.
var allowed = map[string]Algorithm{
	"HS256": HS256,
}

// String returns the header identifier of a.
func (a Algorithm) String() string {
	switch a {
	case HS256:
		return "HS256"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// IsAllowed reports whether id is on the allow-list. Comparison is exact.
func IsAllowed(id string) bool {
	_, ok := allowed[id]
	return ok
}

// Parse returns the algorithm named by id or ErrNotAllowed.
func Parse(id string) (Algorithm, error) {
	a, ok := allowed[id]
	if !ok {
		return unknown, fmt.Errorf("%w: %q", ErrNotAllowed, id)
	}
	return a, nil
}

// SignWith computes the MAC of message with algorithm a.
func SignWith(a Algorithm, message, secret []byte) ([]byte, error) {
	switch a {
	case HS256:
		return mac.Sign(message, secret), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotAllowed, a)
	}
}

// VerifyWith checks candidate against the MAC of message using the algorithm
// named by id. It returns false for any identifier outside the allow-list.
func VerifyWith(id string, message, secret, candidate []byte) bool {
	a, err := Parse(id)
	if err != nil {
		return false
	}

	switch a {
	case HS256:
		return mac.Verify(message, secret, candidate)
	default:
		return false
	}
}
