package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/algorithm"
	"github.com/dmitrymomot/jwtkit/pkg/mac"
)

var rejected = []string{"", "none", "None", "NONE", "hs256", "HS384", "HS512", "RS256", "ES256", " HS256", "HS256 "}

func TestIsAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, algorithm.IsAllowed("HS256"))
	for _, id := range rejected {
		assert.False(t, algorithm.IsAllowed(id), "id %q", id)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	a, err := algorithm.Parse("HS256")
	require.NoError(t, err)
	assert.Equal(t, algorithm.HS256, a)
	assert.Equal(t, "HS256", a.String())

	for _, id := range rejected {
		_, err := algorithm.Parse(id)
		require.ErrorIs(t, err, algorithm.ErrNotAllowed, "id %q", id)
	}
}

func TestSignWith(t *testing.T) {
	t.Parallel()

	msg, secret := []byte("h.p"), []byte("secret")

	sig, err := algorithm.SignWith(algorithm.HS256, msg, secret)
	require.NoError(t, err)
	assert.Equal(t, mac.Sign(msg, secret), sig)

	_, err = algorithm.SignWith(algorithm.Algorithm(0), msg, secret)
	require.ErrorIs(t, err, algorithm.ErrNotAllowed)

	_, err = algorithm.SignWith(algorithm.Algorithm(42), msg, secret)
	require.ErrorIs(t, err, algorithm.ErrNotAllowed)
}

func TestVerifyWith(t *testing.T) {
	t.Parallel()

	msg, secret := []byte("h.p"), []byte("secret")
	sig := mac.Sign(msg, secret)

	t.Run("allowed algorithm with valid mac", func(t *testing.T) {
		assert.True(t, algorithm.VerifyWith("HS256", msg, secret, sig))
	})

	t.Run("allowed algorithm with invalid mac", func(t *testing.T) {
		assert.False(t, algorithm.VerifyWith("HS256", msg, secret, []byte("nope")))
	})

	t.Run("disallowed identifiers fail closed", func(t *testing.T) {
		for _, id := range rejected {
			assert.False(t, algorithm.VerifyWith(id, msg, secret, sig), "id %q", id)
			assert.False(t, algorithm.VerifyWith(id, msg, secret, nil), "id %q", id)
		}
	})
}
