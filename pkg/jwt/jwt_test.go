package jwt_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/environment"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with valid signing key", func(t *testing.T) {
		svc, err := jwt.New([]byte(testSecret), jwt.WithLogger(logger.Discard()))
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("with empty signing key", func(t *testing.T) {
		svc, err := jwt.New([]byte{})
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
		require.Nil(t, svc)
	})

	t.Run("key is copied", func(t *testing.T) {
		key := []byte(testSecret)
		svc, err := jwt.New(key, jwt.WithLogger(logger.Discard()), jwt.WithClock(clockAt(fixedNow)))
		require.NoError(t, err)

		token, err := jwt.Generate(svc, UserClaims{UserID: "42"})
		require.NoError(t, err)

		key[0] ^= 0xff
		assert.True(t, jwt.Verify[UserClaims](svc, token).OK())
	})

	t.Run("insecure default secret is refused in production", func(t *testing.T) {
		svc, err := jwt.New([]byte(jwt.InsecureDefaultSecret),
			jwt.WithLogger(logger.Discard()),
			jwt.WithEnvironment(environment.Production))
		require.ErrorIs(t, err, jwt.ErrInsecureSigningKey)
		require.Nil(t, svc)
	})

	t.Run("insecure default secret warns outside production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

		svc, err := jwt.New([]byte(jwt.InsecureDefaultSecret),
			jwt.WithLogger(log),
			jwt.WithEnvironment(environment.Staging))
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Contains(t, buf.String(), "publicly known default secret")
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.NotContains(t, buf.String(), jwt.InsecureDefaultSecret)
	})

	t.Run("insecure default secret warning keeps the logger's env", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(environment.Staging, "api"),
			logger.WithFormat(logger.FormatJSON),
			logger.WithOutput(buf),
		)

		_, err := jwt.New([]byte(jwt.InsecureDefaultSecret),
			jwt.WithLogger(log),
			jwt.WithEnvironment(environment.Staging))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(buf.String(), `"env":`))
		assert.Contains(t, buf.String(), `"env":"staging"`)
	})

	t.Run("short key warns", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		svc, err := jwt.New([]byte("short"), jwt.WithLogger(log))
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Contains(t, buf.String(), "shorter than recommended")
		assert.Contains(t, buf.String(), `"component":"jwt"`)
	})

	t.Run("strong key does not warn", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		_, err := jwt.New([]byte(testSecret), jwt.WithLogger(log))
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestNewFromString(t *testing.T) {
	t.Parallel()

	t.Run("with valid signing key", func(t *testing.T) {
		svc, err := jwt.NewFromString(testSecret, jwt.WithLogger(logger.Discard()))
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("with empty signing key", func(t *testing.T) {
		svc, err := jwt.NewFromString("")
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
		require.Nil(t, svc)
	})
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	svc := newService(t)
	done := make(chan struct{})
	for i := range 32 {
		go func() {
			defer func() { done <- struct{}{} }()
			claims := UserClaims{UserID: string(rune('a' + i%26))}
			token, err := jwt.Generate(svc, claims)
			if !assert.NoError(t, err) {
				return
			}
			res := jwt.Verify[UserClaims](svc, token)
			assert.True(t, res.OK())
			assert.Equal(t, claims.UserID, res.Payload.UserID)
		}()
	}
	for range 32 {
		<-done
	}
}
