package jwt

import "errors"

var (
	ErrMissingToken       = errors.New("jwt: token is missing")
	ErrInvalidToken       = errors.New("jwt: invalid token")
	ErrExpiredToken       = errors.New("jwt: token is expired")
	ErrMissingSigningKey  = errors.New("jwt: missing signing key")
	ErrInsecureSigningKey = errors.New("jwt: insecure signing key")
	ErrMissingClaims      = errors.New("jwt: missing claims")
	ErrSerialization      = errors.New("jwt: claims cannot be serialized")
)
