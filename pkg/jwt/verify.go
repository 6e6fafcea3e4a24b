package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/jwtkit/pkg/algorithm"
	"github.com/dmitrymomot/jwtkit/pkg/codec"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

// Verification stages, used in debug logs.
const (
	stageLength    = "length"
	stageSplit     = "split"
	stageHeader    = "header"
	stageAlgorithm = "algorithm"
	stagePayload   = "payload"
	stageSignature = "signature"
	stageExpiry    = "expiry"
	stageClaims    = "claims"
)

// Verify checks token and decodes its payload into T.
//
// Steps, each terminal on failure:
//
//  1. tokens longer than MaxTokenLength are invalid;
//  2. more than three segments is invalid, fewer than three non-empty missing;
//  3. the header must decode and name an allowed algorithm, else invalid;
//  4. the payload must decode to a JSON object, else invalid;
//  5. the signature must match in constant time, else invalid;
//  6. an absent exp or one before now is expired (payload attached);
//  7. the payload must decode into T, else invalid.
//
// WithLegacyCheckOrder swaps steps 5 and 6. Verify never panics on untrusted
// input and never returns claims from a token whose signature failed.
func Verify[T any](s *Service, token string) Result[T] {
	res := verify[T](s, token)
	s.metrics.observeVerified(res.Status, res.Reason)
	return res
}

func verify[T any](s *Service, token string) Result[T] {
	if len(token) > MaxTokenLength {
		return reject[T](s, ReasonInvalid, stageLength, nil)
	}

	parts := strings.Split(token, ".")
	if len(parts) > 3 {
		return reject[T](s, ReasonInvalid, stageSplit, nil)
	}
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return reject[T](s, ReasonMissing, stageSplit, nil)
	}
	headerSegment, payloadSegment, signatureSegment := parts[0], parts[1], parts[2]

	var header Header
	if err := codec.DecodeValue(headerSegment, &header); err != nil {
		return reject[T](s, ReasonInvalid, stageHeader, err)
	}
	if !algorithm.IsAllowed(header.Algorithm) {
		return reject[T](s, ReasonInvalid, stageAlgorithm, nil, logger.Algorithm(header.Algorithm))
	}

	payloadJSON, err := codec.Decode(payloadSegment)
	if err != nil {
		return reject[T](s, ReasonInvalid, stagePayload, err)
	}
	var claims map[string]json.RawMessage
	if err := codec.Deserialize(payloadJSON, &claims); err != nil {
		return reject[T](s, ReasonInvalid, stagePayload, err)
	}
	if claims == nil {
		return reject[T](s, ReasonInvalid, stagePayload, nil)
	}

	checkSignature := func() bool {
		sig, err := codec.Decode(signatureSegment)
		if err != nil {
			return false
		}
		return algorithm.VerifyWith(header.Algorithm, []byte(headerSegment+"."+payloadSegment), s.secret, sig)
	}

	if !s.legacyOrder && !checkSignature() {
		return reject[T](s, ReasonInvalid, stageSignature, nil)
	}

	exp, present, err := expiresAt(claims)
	if err != nil {
		return reject[T](s, ReasonInvalid, stageExpiry, err)
	}
	if !present || exp < float64(s.now().Unix()) {
		var payload T
		if err := codec.Deserialize(payloadJSON, &payload); err != nil {
			return reject[T](s, ReasonInvalid, stageClaims, err)
		}
		s.log.Debug("token rejected", logger.Reason(string(ReasonExpired)), logger.Stage(stageExpiry))
		return expired(payload)
	}

	if s.legacyOrder && !checkSignature() {
		return reject[T](s, ReasonInvalid, stageSignature, nil)
	}

	var payload T
	if err := codec.Deserialize(payloadJSON, &payload); err != nil {
		return reject[T](s, ReasonInvalid, stageClaims, err)
	}
	return succeeded(payload)
}

func reject[T any](s *Service, reason Reason, stage string, err error, attrs ...slog.Attr) Result[T] {
	args := []any{logger.Reason(string(reason)), logger.Stage(stage), logger.Error(err)}
	for _, a := range attrs {
		args = append(args, a)
	}
	s.log.Debug("token rejected", args...)
	return failed[T](reason)
}

// expiresAt reads the exp claim. A missing or null exp is reported as absent;
// any value other than a JSON number is an error.
func expiresAt(claims map[string]json.RawMessage) (float64, bool, error) {
	raw, ok := claims["exp"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, false, nil
	}
	var exp float64
	if err := json.Unmarshal(raw, &exp); err != nil {
		return 0, false, fmt.Errorf("jwt: exp is not a number: %w", err)
	}
	return exp, true, nil
}

// Inspect decodes the header and claims of token WITHOUT verifying it.
// It exists for debugging tools; never make authorization decisions on its
// output.
func Inspect(token string) (Header, map[string]any, error) {
	if len(token) > MaxTokenLength {
		return Header{}, nil, fmt.Errorf("%w: token exceeds %d bytes", ErrInvalidToken, MaxTokenLength)
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Header{}, nil, ErrMissingToken
	}

	var header Header
	if err := codec.DecodeValue(parts[0], &header); err != nil {
		return Header{}, nil, errors.Join(ErrInvalidToken, err)
	}
	var claims map[string]any
	if err := codec.DecodeValue(parts[1], &claims); err != nil {
		return Header{}, nil, errors.Join(ErrInvalidToken, err)
	}
	return header, claims, nil
}
