package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

// Middleware stores the resolved client IP in the request context. With no
// headers given it uses DefaultHeaders; pass an empty non-nil slice to trust
// RemoteAddr only.
func Middleware(headers []string) func(http.Handler) http.Handler {
	if headers == nil {
		headers = DefaultHeaders
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), Resolve(r, headers))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor adds a "client_ip" attribute to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := GetIPFromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
