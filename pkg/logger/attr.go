package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Algorithm records a signing algorithm identifier under the key "alg".
func Algorithm(id string) slog.Attr {
	return slog.String("alg", id)
}

// Reason records a verification failure reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Stage records the verification step that decided the outcome under the key "stage".
func Stage(stage string) slog.Attr {
	return slog.String("stage", stage)
}

// TokenID records a token identifier (the jti claim) under the key "token_id".
// Empty identifiers produce an empty Attr.
func TokenID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("token_id", id)
}
