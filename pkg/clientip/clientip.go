package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order. X-Forwarded-For may carry a chain;
// the leftmost entry is the original client.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the client IP address from the request, checking proxy
// headers before falling back to RemoteAddr. Returned addresses are
// validated and normalized; IPv4-mapped IPv6 addresses (::ffff:a.b.c.d)
// collapse to their dotted IPv4 form. If nothing valid is found the raw
// RemoteAddr is returned so the caller always has something to log.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		if header == "X-Forwarded-For" {
			if idx := strings.Index(value, ","); idx != -1 {
				value = value[:idx]
			}
		}
		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// normalize validates the address and returns its canonical string form.
// Unparseable and unspecified (0.0.0.0, ::) addresses yield "".
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return ip.String()
}
