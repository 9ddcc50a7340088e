package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders lists trusted headers in priority order. The first header
// carrying a valid address wins.
var proxyHeaders = [...]string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client IP address for the request. Proxy headers are
// consulted in priority order before falling back to RemoteAddr. When no
// source yields a valid address, the raw RemoteAddr is returned as-is.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		if ip := parseIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// parseIP validates and normalizes a single address. X-Forwarded-For may
// carry a comma-separated chain; the leftmost entry identifies the
// original client. Unparseable and unspecified (0.0.0.0, ::) addresses
// are rejected.
func parseIP(value string) string {
	if idx := strings.IndexByte(value, ','); idx >= 0 {
		value = value[:idx]
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	ip := net.ParseIP(value)
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
