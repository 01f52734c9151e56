package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP identifies the caller for rate limiting: the first X-Forwarded-For
// entry, then X-Real-IP, then the socket address. The headers are trusted as
// sent, so the deployment must overwrite them at the edge.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	return host
}
