package jwt

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/jwtkit/pkg/environment"
	"github.com/dmitrymomot/jwtkit/pkg/logger"
)

// JWT header constants
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

const (
	// Lifetime is the fixed validity window of every issued token.
	Lifetime = 5 * time.Minute

	// MaxTokenLength bounds the work Verify does on untrusted input (8 KiB).
	MaxTokenLength = 8 << 10

	// InsecureDefaultSecret is the well-known fallback secret of earlier
	// deployments. It is never used implicitly: New warns when it is supplied
	// and refuses it in production.
	InsecureDefaultSecret = "we-love-what-the-stack"

	// minSecretLength is the HMAC-SHA256 block-size recommendation in bytes.
	minSecretLength = 32
)

// Header is the first token segment. Field order fixes the serialized form
// to {"alg":"HS256","typ":"JWT"}.
type Header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Timestamps mirrors the reserved claims set by Generate. Embed it in a claims
// struct to read them back after verification.
type Timestamps struct {
	IssuedAt  int64 `json:"iat,omitempty"`
	ExpiresAt int64 `json:"exp,omitempty"`
}

// Service issues and verifies HS256 tokens with a single shared secret.
// It is immutable after construction and safe for concurrent use.
type Service struct {
	secret      []byte
	now         func() time.Time
	log         *slog.Logger
	env         environment.Environment
	legacyOrder bool
	registerer  prometheus.Registerer
	metrics     *metrics
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the time source used for iat, exp and expiration checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for configuration warnings and rejected tokens.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithEnvironment sets the deployment stage used to validate the secret.
func WithEnvironment(env environment.Environment) Option {
	return func(s *Service) { s.env = env }
}

// WithLegacyCheckOrder evaluates expiration before the signature, as earlier
// deployments did. With this order a forged token that parses can learn
// whether it would be considered expired, and an expired result carries
// claims that were never authenticated.
func WithLegacyCheckOrder() Option {
	return func(s *Service) { s.legacyOrder = true }
}

// WithMetrics registers jwtkit_tokens_issued_total and
// jwtkit_verifications_total{status,reason} with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Service) { s.registerer = reg }
}

// New creates a Service signing with key.
//
// An empty key returns ErrMissingSigningKey. InsecureDefaultSecret returns
// ErrInsecureSigningKey in production and logs a warning elsewhere; keys
// shorter than 32 bytes are accepted with a warning.
func New(key []byte, opts ...Option) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		secret: append([]byte(nil), key...),
		now:    time.Now,
		env:    environment.Development,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With(logger.Component("jwt"))

	switch {
	case string(s.secret) == InsecureDefaultSecret:
		if s.env.IsProduction() {
			return nil, ErrInsecureSigningKey
		}
		s.log.Warn("signing key is the publicly known default secret; set JWT_SECRET before deploying")
	case len(s.secret) < minSecretLength:
		s.log.Warn("signing key is shorter than recommended",
			slog.Int("length", len(s.secret)),
			slog.Int("recommended", minSecretLength))
	}

	if s.registerer != nil {
		m, err := newMetrics(s.registerer)
		if err != nil {
			return nil, fmt.Errorf("jwt: register metrics: %w", err)
		}
		s.metrics = m
	}

	return s, nil
}

// NewFromString is New for string keys.
func NewFromString(key string, opts ...Option) (*Service, error) {
	return New([]byte(key), opts...)
}
