package jwt

import "encoding/json"

// Status is the top-level outcome of Verify.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Reason explains a failed verification.
//
// Malformed encoding, disallowed algorithms and signature mismatches all map
// to ReasonInvalid so a caller cannot tell a wrong secret from a broken token.
type Reason string

const (
	ReasonMissing Reason = "missing"
	ReasonInvalid Reason = "invalid"
	ReasonExpired Reason = "expired"
)

// Result is the outcome of Verify: either success with the payload, or failed
// with a Reason. Of the failures only ReasonExpired carries a payload.
type Result[T any] struct {
	Status     Status
	Reason     Reason
	Payload    T
	HasPayload bool
}

func succeeded[T any](payload T) Result[T] {
	return Result[T]{Status: StatusSuccess, Payload: payload, HasPayload: true}
}

func failed[T any](reason Reason) Result[T] {
	return Result[T]{Status: StatusFailed, Reason: reason}
}

func expired[T any](payload T) Result[T] {
	return Result[T]{Status: StatusFailed, Reason: ReasonExpired, Payload: payload, HasPayload: true}
}

// OK reports whether the token was verified successfully.
func (r Result[T]) OK() bool { return r.Status == StatusSuccess }

// Expired reports whether verification failed only because the token expired.
func (r Result[T]) Expired() bool { return r.Status == StatusFailed && r.Reason == ReasonExpired }

// Claims returns the payload and whether the result carries one.
func (r Result[T]) Claims() (T, bool) { return r.Payload, r.HasPayload }

// Err maps the result to nil or one of ErrMissingToken, ErrInvalidToken and
// ErrExpiredToken.
func (r Result[T]) Err() error {
	if r.OK() {
		return nil
	}
	switch r.Reason {
	case ReasonMissing:
		return ErrMissingToken
	case ReasonExpired:
		return ErrExpiredToken
	default:
		return ErrInvalidToken
	}
}

// MarshalJSON encodes the result as {"status":..,"reason":..,"payload":..},
// omitting reason on success and payload when absent.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := struct {
		Status  Status `json:"status"`
		Reason  Reason `json:"reason,omitempty"`
		Payload *T     `json:"payload,omitempty"`
	}{Status: r.Status, Reason: r.Reason}
	if r.HasPayload {
		out.Payload = &r.Payload
	}
	return json.Marshal(out)
}
