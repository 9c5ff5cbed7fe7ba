// Package vms is the REST client for the upstream VMS server. Every call
// carries the per-request credential; the gateway never holds credentials
// between requests.
package vms

import (
	"crypto/tls"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"vms-gateway/internal/domain"
	"vms-gateway/internal/infrastructure/config"
)

// Upstream timestamps are strict ISO 8601 with milliseconds and Z suffix.
const TimeFormat = "2006-01-02T15:04:05.000Z"

type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
	r := resty.New()
	r.SetHeader("Accept", "application/json")
	r.SetTimeout(cfg.UpstreamTimeout())
	if cfg.InsecureTLS {
		// Self-signed certs are common on on-prem VMS installs.
		r.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	return &Client{http: r, log: log}
}

// Bind returns a credential-bound source for one request (or one player's
// lifetime). The bound source satisfies usecase.DataSource.
func (c *Client) Bind(cred domain.Credential) *Source {
	return &Source{c: c, cred: cred}
}

// Source is a Client bound to one credential.
type Source struct {
	c    *Client
	cred domain.Credential
}

func (s *Source) url(path string) string {
	return s.cred.ServerURL + path
}

func (s *Source) req() *resty.Request {
	return s.c.http.R().SetHeader("Authorization", s.cred.Authorization)
}

// envelope is the `{ success, error }` wrapper every upstream JSON response
// carries; result payloads embed it.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// upstreamErr extracts the upstream's error text, falling back to the HTTP
// status line.
func upstreamErr(stage string, resp *resty.Response, env envelope) error {
	if env.Error != "" {
		return fmt.Errorf("%s: %s", stage, env.Error)
	}
	return fmt.Errorf("%s: upstream returned %s", stage, resp.Status())
}
