package redact

import (
	"net/http"
	"strings"
)

var sensitiveKeys = []string{"authorization", "server-url", "password", "session", "token", "apikey"}

// Header masks a credential header value keeping only the scheme prefix,
// so proxy logs can show that auth was present without leaking it.
func Header(v string) string {
	if v == "" {
		return ""
	}
	if i := strings.IndexByte(v, ' '); i > 0 {
		return v[:i] + " ***"
	}
	return "***"
}

// Headers returns a copy of h with credential headers masked.
func Headers(h http.Header) http.Header {
	out := h.Clone()
	for _, k := range sensitiveKeys {
		if out.Get(k) != "" {
			out.Set(k, Header(out.Get(k)))
		}
	}
	return out
}
