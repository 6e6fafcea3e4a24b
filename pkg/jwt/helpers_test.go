package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/codec"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
	"github.com/dmitrymomot/jwtkit/pkg/mac"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var fixedNow = time.Unix(1_700_000_000, 0)

// UserClaims is the typed payload used across tests.
type UserClaims struct {
	jwt.Timestamps
	UserID string `json:"uid"`
	Role   string `json:"role,omitempty"`
}

func clockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newService(tb testing.TB, opts ...jwt.Option) *jwt.Service {
	tb.Helper()
	opts = append([]jwt.Option{jwt.WithLogger(logger.Discard())}, opts...)
	svc, err := jwt.NewFromString(testSecret, opts...)
	require.NoError(tb, err)
	require.NotNil(tb, svc)
	return svc
}

// craft builds a token from arbitrary header and claims, signed with
// HMAC-SHA256 regardless of what the header claims.
func craft(tb testing.TB, header, claims any, secret string) string {
	tb.Helper()
	h, err := codec.EncodeValue(header)
	require.NoError(tb, err)
	p, err := codec.EncodeValue(claims)
	require.NoError(tb, err)
	input := h + "." + p
	return input + "." + codec.Encode(mac.Sign([]byte(input), []byte(secret)))
}

func hs256Header() map[string]string {
	return map[string]string{"alg": "HS256", "typ": "JWT"}
}
