package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}        // raw token string
	claimsContextKey = &contextKey{name: "jwt_claims"} // verified payload
)

// WithToken stores the raw token string in ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext returns the token stored by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok && token != ""
}

// WithClaims stores verified claims in ctx.
func WithClaims[T any](ctx context.Context, claims T) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns claims stored by WithClaims.
// The second value is false if none are stored or they have a different type.
func ClaimsFromContext[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsContextKey).(T)
	return claims, ok
}

// ContextWithResult stores the token and, only when r is successful, its
// claims. Expired or invalid payloads never reach the context.
func ContextWithResult[T any](ctx context.Context, token string, r Result[T]) context.Context {
	if !r.OK() {
		return ctx
	}
	return WithClaims(WithToken(ctx, token), r.Payload)
}
