package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders are the proxy headers consulted by GetIP, in priority order.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"Fly-Client-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client address using DefaultHeaders and falling back to
// RemoteAddr.
func GetIP(r *http.Request) string {
	return Resolve(r, DefaultHeaders)
}

// Resolve returns the first valid address found in headers, then RemoteAddr.
// For X-Forwarded-For the leftmost valid entry wins. Pass no headers when the
// server is not behind a trusted proxy.
func Resolve(r *http.Request, headers []string) string {
	for _, name := range headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP normalizes s, unmapping IPv4-in-IPv6 and dropping zones.
// Invalid input yields "".
func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
