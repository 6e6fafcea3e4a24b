package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/config"
	"github.com/dmitrymomot/jwtkit/pkg/environment"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		svc, err := jwt.NewFromConfig(jwt.Config{Secret: testSecret, Environment: "production"},
			jwt.WithLogger(logger.Discard()))
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := jwt.NewFromConfig(jwt.Config{})
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})

	t.Run("insecure default in production", func(t *testing.T) {
		_, err := jwt.NewFromConfig(jwt.Config{Secret: jwt.InsecureDefaultSecret, Environment: "prod"},
			jwt.WithLogger(logger.Discard()))
		require.ErrorIs(t, err, jwt.ErrInsecureSigningKey)
	})

	t.Run("options override the configured environment", func(t *testing.T) {
		_, err := jwt.NewFromConfig(jwt.Config{Secret: jwt.InsecureDefaultSecret, Environment: "development"},
			jwt.WithLogger(logger.Discard()),
			jwt.WithEnvironment(environment.Production))
		require.ErrorIs(t, err, jwt.ErrInsecureSigningKey)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("JWT_SECRET", "")

		svc, err := jwt.NewFromEnv()
		require.ErrorIs(t, err, config.ErrParsingConfig)
		assert.Nil(t, svc)
	})

	t.Run("secret from environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("JWT_SECRET", testSecret)
		t.Setenv("APP_ENV", "production")

		svc, err := jwt.NewFromEnv(jwt.WithLogger(logger.Discard()))
		require.NoError(t, err)

		token, err := jwt.Generate(svc, UserClaims{UserID: "42"})
		require.NoError(t, err)
		assert.True(t, jwt.Verify[UserClaims](newService(t), token).OK())
	})

	t.Run("insecure default in production", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("JWT_SECRET", jwt.InsecureDefaultSecret)
		t.Setenv("APP_ENV", "production")

		_, err := jwt.NewFromEnv(jwt.WithLogger(logger.Discard()))
		require.ErrorIs(t, err, jwt.ErrInsecureSigningKey)
	})
}
