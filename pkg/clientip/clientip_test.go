package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/landkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr", "192.168.1.1:1234", nil, "192.168.1.1"},
		{"remote addr without port", "192.168.1.1", nil, "192.168.1.1"},
		{"ipv6 remote", "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"cloudflare wins", "10.0.0.1:1", map[string]string{
			"CF-Connecting-IP": "203.0.113.5",
			"X-Forwarded-For":  "198.51.100.2",
		}, "203.0.113.5"},
		{"first valid forwarded", "10.0.0.1:1", map[string]string{
			"X-Forwarded-For": "garbage, 198.51.100.2, 10.0.0.3",
		}, "198.51.100.2"},
		{"invalid header falls through", "10.0.0.1:1", map[string]string{
			"CF-Connecting-IP": "not-an-ip",
			"X-Real-IP":        "203.0.113.9",
		}, "203.0.113.9"},
		{"mapped ipv4 is unmapped", "[::ffff:192.0.2.1]:80", nil, "192.0.2.1"},
		{"unparseable remote", "nowhere", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}

func TestResolve_NoTrustedHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	assert.Equal(t, "192.168.1.1", clientip.Resolve(req, nil))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = clientip.GetIPFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.5")

	clientip.Middleware(nil)(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.5", got)

	clientip.Middleware([]string{})(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "192.168.1.1", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	_, ok := clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)

	attr, ok := clientip.LoggerExtractor()(clientip.SetIPToContext(context.Background(), "203.0.113.5"))
	assert.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
}
