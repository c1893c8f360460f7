package requestid

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores requestID in ctx. Background jobs started outside HTTP
// use it to correlate their logs with the originating request.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// LoggerExtractor adds "request_id" to records logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		return slog.String("request_id", id), id != ""
	}
}
