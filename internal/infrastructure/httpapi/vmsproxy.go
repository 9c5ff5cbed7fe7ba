package httpapi

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"vms-gateway/pkg/shared/redact"
)

// handleVMSProxy is the consolidated pass-through for the VMS's uniform CRUD
// surface (layouts, notification channels and rules, catalogs). The path
// after /api/v1/proxy is appended to the credential's server URL; query
// parameters are forwarded as-is. No mock fallback here: there is nothing
// sensible to fabricate for arbitrary upstream paths.
func (d *Deps) handleVMSProxy(w http.ResponseWriter, r *http.Request) {
	cred := credentialFrom(r)
	if cred.IsZero() {
		writeError(w, http.StatusUnauthorized, "missing Server-Url or Authorization header")
		return
	}
	u, err := url.Parse(cred.ServerURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		writeError(w, http.StatusBadRequest, "invalid Server-Url header")
		return
	}

	suffix := strings.TrimPrefix(r.URL.Path, "/api/v1/proxy")
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	upstream := *u
	upstream.Path = strings.TrimRight(upstream.Path, "/") + suffix
	upstream.RawQuery = r.URL.RawQuery

	d.Logger.Debug().
		Str("method", r.Method).
		Str("upstream", upstream.String()).
		Interface("headers", redact.Headers(r.Header)).
		Msg("vms proxy")

	proxy := &httputil.ReverseProxy{
		Director: func(req *http.Request) {
			req.URL = &upstream
			req.Host = upstream.Host
			req.Header.Set("Authorization", cred.Authorization)
			req.Header.Del("Server-Url")
			removeHopHeaders(req.Header)
			req.Header.Set("Via", "vms-gateway")
		},
		ErrorHandler: func(rw http.ResponseWriter, req *http.Request, err error) {
			d.Metrics.UpstreamErrorsTotal.WithLabelValues("proxy").Inc()
			d.Logger.Error().Err(err).Str("upstream", upstream.String()).Msg("vms proxy error")
			writeError(rw, http.StatusBadGateway, err.Error())
		},
	}
	proxy.ServeHTTP(w, r)
}

var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func removeHopHeaders(h http.Header) {
	for _, k := range hopHeaders {
		h.Del(k)
	}
}
