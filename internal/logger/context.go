package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

// WithRequestID attaches a request id to the context. The gateway reuses
// it for the X-Request-ID header instead of generating its own.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns logger with request_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	reqID := RequestIDFrom(ctx)
	if reqID == "" {
		return L()
	}
	return L().With(zap.String("request_id", reqID))
}
