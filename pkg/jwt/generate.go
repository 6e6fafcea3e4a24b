package jwt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/dmitrymomot/jwtkit/pkg/algorithm"
	"github.com/dmitrymomot/jwtkit/pkg/codec"
)

// Generate issues a token for payload.
//
// The payload must serialize to a JSON object. Its fields are copied, iat is
// set to the current Unix time and exp to iat plus Lifetime; fields named iat
// or exp in the payload are overwritten. The caller's value is not modified.
func Generate[T any](s *Service, payload T) (string, error) {
	raw, err := codec.Serialize(payload)
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}
	if bytes.Equal(raw, []byte("null")) {
		return "", ErrMissingClaims
	}

	var claims map[string]json.RawMessage
	if err := codec.Deserialize(raw, &claims); err != nil {
		return "", errors.Join(ErrSerialization, errors.New("jwt: payload is not a JSON object"))
	}

	iat := s.now().Unix()
	claims["iat"] = json.RawMessage(strconv.FormatInt(iat, 10))
	claims["exp"] = json.RawMessage(strconv.FormatInt(iat+int64(Lifetime.Seconds()), 10))

	token, err := s.sign(claims)
	if err != nil {
		return "", err
	}
	s.metrics.observeIssued()
	return token, nil
}

func (s *Service) sign(claims any) (string, error) {
	headerSegment, err := codec.EncodeValue(Header{Algorithm: HeaderAlgorithm, Type: HeaderType})
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}
	payloadSegment, err := codec.EncodeValue(claims)
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}

	signingInput := headerSegment + "." + payloadSegment
	sig, err := algorithm.SignWith(algorithm.HS256, []byte(signingInput), s.secret)
	if err != nil {
		return "", err
	}

	return signingInput + "." + codec.Encode(sig), nil
}
