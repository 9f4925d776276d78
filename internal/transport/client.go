package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"lpass/internal/domain"
	"lpass/internal/pinning"
)

// DefaultTimeout bounds one whole request/response exchange unless the
// Config overrides it. The engine itself never cancels; this is the only
// thing keeping a dead server from hanging a login forever.
const DefaultTimeout = 30 * time.Second

// Config carries the wiring options for a Client.
type Config struct {
	// Pinner validates the server certificate chain. Required.
	Pinner *pinning.Pinner

	// Timeout bounds each request; DefaultTimeout when zero.
	Timeout time.Duration

	// UserAgent is sent with every request; a plain "lpass-cli" when empty.
	UserAgent string

	// RootCAs overrides the system trust store. Tests use it to trust
	// their own server certificate; production leaves it nil.
	RootCAs *x509.CertPool
}

// Client posts form-encoded requests over pinned TLS.
type Client struct {
	http      *http.Client
	userAgent string
}

// New builds a Client around cfg.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "lpass-cli"
	}

	tlsConfig := &tls.Config{
		MinVersion:            tls.VersionTLS12,
		RootCAs:               cfg.RootCAs,
		VerifyPeerCertificate: cfg.Pinner.VerifyPeerCertificate,
	}

	return &Client{
		userAgent: userAgent,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: tlsConfig,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				DisableCompression:  true,
			},
		},
	}
}

// Post sends fields to https://server/page as an ordered
// application/x-www-form-urlencoded body and returns the response bytes.
// Anything but HTTP 200 is an error: *domain.HTTPStatusError for a
// non-200 status, *domain.TransportError for network, TLS, or I/O
// failures.
func (c *Client) Post(ctx context.Context, server, page string, fields []domain.Field) ([]byte, error) {
	u := "https://" + server + "/" + page
	log.Debug().Str("url", u).Msg("POST request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(encodeForm(fields)))
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.HTTPStatusError{Code: resp.StatusCode}
	}
	return body, nil
}

// encodeForm joins fields as k=v pairs with &, escaping both sides. The
// stdlib url.Values is deliberately not used: it sorts keys and the
// protocol's field order is part of the request shape.
func encodeForm(fields []domain.Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(string(f.Value)))
	}
	return b.String()
}

// Compile-time assertion that Client implements domain.Transport.
var _ domain.Transport = (*Client)(nil)
