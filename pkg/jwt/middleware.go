package jwt

import (
	"net/http"
	"strings"
)

// TokenExtractorFunc extracts a raw token from an HTTP request.
// An empty string means the request carries no token.
type TokenExtractorFunc func(r *http.Request) string

// SkipFunc reports whether a request bypasses verification.
type SkipFunc func(r *http.Request) bool

// FailureHandler writes the response for a request whose token did not verify.
type FailureHandler[T any] func(w http.ResponseWriter, r *http.Request, res Result[T])

// MiddlewareConfig configures Middleware.
type MiddlewareConfig[T any] struct {
	Service   *Service           // required
	Extractor TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip      SkipFunc           // optional
	OnFailure FailureHandler[T]  // defaults to a 401 with a WWW-Authenticate challenge
}

// Middleware verifies the bearer token of every request and stores the token
// and its claims in the request context. Read them downstream with
// TokenFromContext and ClaimsFromContext[T].
func Middleware[T any](service *Service) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig[T]{Service: service})
}

// MiddlewareWithConfig is Middleware with a custom extractor, skip rule or
// failure response.
func MiddlewareWithConfig[T any](cfg MiddlewareConfig[T]) func(next http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("jwt: middleware requires a service")
	}
	if cfg.Extractor == nil {
		cfg.Extractor = BearerTokenExtractor
	}
	if cfg.OnFailure == nil {
		cfg.OnFailure = unauthorized[T]
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token := cfg.Extractor(r)
			res := Verify[T](cfg.Service, token)
			if !res.OK() {
				cfg.OnFailure(w, r, res)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithResult(r.Context(), token, res)))
		})
	}
}

func unauthorized[T any](w http.ResponseWriter, _ *http.Request, res Result[T]) {
	challenge := `Bearer`
	switch res.Reason {
	case ReasonExpired:
		challenge += ` error="invalid_token", error_description="token expired"`
	case ReasonInvalid:
		challenge += ` error="invalid_token"`
	}
	w.Header().Set("WWW-Authenticate", challenge)
	http.Error(w, "token "+string(res.Reason), http.StatusUnauthorized)
}

// BearerTokenExtractor reads "Authorization: Bearer <token>" (RFC 6750).
func BearerTokenExtractor(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CookieTokenExtractor reads the token from the named cookie.
func CookieTokenExtractor(name string) TokenExtractorFunc {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// QueryTokenExtractor reads the token from a URL query parameter.
// Query strings end up in access logs, so prefer headers or cookies.
func QueryTokenExtractor(param string) TokenExtractorFunc {
	return func(r *http.Request) string {
		return r.URL.Query().Get(param)
	}
}

// HeaderTokenExtractor reads the token from a custom header.
func HeaderTokenExtractor(header string) TokenExtractorFunc {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

// ChainExtractors returns the first non-empty token found by extractors.
func ChainExtractors(extractors ...TokenExtractorFunc) TokenExtractorFunc {
	return func(r *http.Request) string {
		for _, extract := range extractors {
			if token := extract(r); token != "" {
				return token
			}
		}
		return ""
	}
}
