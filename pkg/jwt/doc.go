// Package jwt issues and verifies compact HS256 tokens carrying an arbitrary
// JSON claim payload.
//
// A token is three base64url segments, header.payload.signature. The header
// is always {"alg":"HS256","typ":"JWT"}. Generate copies the caller's claims,
// adds iat (issue time) and exp (iat + 5 minutes) and signs the first two
// segments with HMAC-SHA256. Verify classifies a presented token as success,
// or failed with reason missing, invalid or expired.
//
// # Architecture
//
//   - Service holds the secret, the clock and the logger.
//   - Generate and Verify are generic functions over the claims type.
//   - Result is the tagged verification outcome.
//   - Config / NewFromEnv load JWT_SECRET and APP_ENV through pkg/config.
//   - context.go carries verified claims through a request.
//   - Middleware verifies the token of each HTTP request (Bearer header by
//     default, or cookie, query and custom header extractors).
//   - WithMetrics counts issued tokens and verification outcomes in Prometheus.
//
// Encoding lives in pkg/codec, the MAC in pkg/mac and the algorithm allow-list
// in pkg/algorithm.
//
// # Usage
//
//	svc, err := jwt.NewFromEnv()
//	if err != nil {
//	    // JWT_SECRET is not set
//	}
//
//	type Claims struct {
//	    jwt.Timestamps
//	    UserID string `json:"uid"`
//	}
//
//	token, err := jwt.Generate(svc, Claims{UserID: "42"})
//
//	res := jwt.Verify[Claims](svc, token)
//	switch {
//	case res.OK():
//	    // res.Payload.UserID
//	case res.Expired():
//	    // res.Payload is readable, offer a refresh
//	default:
//	    // res.Err() is ErrMissingToken or ErrInvalidToken
//	}
//
// # Security
//
// The algorithm allow-list is checked before any MAC work, so "none" and
// other identifiers are rejected outright. Signatures are compared in
// constant time. Malformed input, foreign algorithms and wrong secrets all
// produce ReasonInvalid. By default the signature is checked before
// expiration so expired results only ever carry authenticated claims;
// WithLegacyCheckOrder restores the older expiration-first order.
//
// There is no default secret. InsecureDefaultSecret is recognised only to warn
// about it, and it is refused in production.
package jwt
