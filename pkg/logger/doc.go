// Package logger builds *slog.Logger values for jwtkit services and tools.
//
// New applies a list of Option functions to choose the output format (text or
// JSON), level, destination, static attributes and ContextExtractor callbacks
// that copy request-scoped values from a context.Context into every record.
// WithEnvironment picks sensible defaults per deployment stage.
//
// Attribute helpers such as Error, Reason and Algorithm keep key names
// consistent across packages. Token contents and secrets must never be logged;
// log the verification reason and stage instead.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "auth"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "token rejected",
//	    logger.Reason("invalid"),
//	    logger.Stage("signature"),
//	)
package logger
