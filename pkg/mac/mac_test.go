package mac_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/mac"
)

func TestSign(t *testing.T) {
	t.Parallel()

	t.Run("rfc 4231 test case 2", func(t *testing.T) {
		got := mac.Sign([]byte("what do ya want for nothing?"), []byte("Jefe"))
		assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", hex.EncodeToString(got))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := mac.Sign([]byte("header.payload"), []byte("secret"))
		b := mac.Sign([]byte("header.payload"), []byte("secret"))
		assert.Equal(t, a, b)
		assert.Len(t, a, mac.Size)
	})

	t.Run("secret sensitive", func(t *testing.T) {
		a := mac.Sign([]byte("header.payload"), []byte("secret"))
		b := mac.Sign([]byte("header.payload"), []byte("secret2"))
		assert.NotEqual(t, a, b)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	msg := []byte("header.payload")
	secret := []byte("secret")
	sig := mac.Sign(msg, secret)

	t.Run("matching mac", func(t *testing.T) {
		assert.True(t, mac.Verify(msg, secret, sig))
	})

	t.Run("every flipped bit is detected", func(t *testing.T) {
		for i := range len(sig) * 8 {
			tampered := append([]byte(nil), sig...)
			tampered[i/8] ^= 1 << (i % 8)
			require.False(t, mac.Verify(msg, secret, tampered), "bit %d", i)
		}
	})

	t.Run("truncated mac", func(t *testing.T) {
		assert.False(t, mac.Verify(msg, secret, sig[:16]))
	})

	t.Run("empty mac", func(t *testing.T) {
		assert.False(t, mac.Verify(msg, secret, nil))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, mac.Verify(msg, []byte("other"), sig))
	})
}
