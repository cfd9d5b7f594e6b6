package http

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/portsift"
	xproxy "golang.org/x/net/proxy"
)

// Probe transport defaults.
const (
	// DefaultUserAgent is the browser-like identification header sent
	// with every probe request.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultDirectTimeout bounds a direct probe attempt.
	DefaultDirectTimeout = 6 * time.Second

	// DefaultProxyTimeout bounds a proxied probe attempt; proxies add
	// a hop, so it is looser than the direct timeout.
	DefaultProxyTimeout = 10 * time.Second
)

// Ensure Fetcher implements portsift.PageFetcher at compile time.
var _ portsift.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies with a browser-like User-Agent,
// certificate validation disabled, and redirects followed. Candidate
// hosts routinely run expired or self-signed TLS; validating
// certificates would misreport them as dead.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a fetcher that issues requests directly to the
// target.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultDirectTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}

	return f
}

// NewProxyFetcher creates a fetcher that routes requests through the
// given proxy. Supported schemes: http, https, socks5, socks5h.
func NewProxyFetcher(proxyURL string, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultProxyTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, portsift.Errorf(portsift.EINVALID, "invalid proxy URL %q: %v", proxyURL, err)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		var auth *xproxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &xproxy.Auth{User: u.User.Username(), Password: password}
		}
		dialer, err := xproxy.SOCKS5("tcp", u.Host, auth, xproxy.Direct)
		if err != nil {
			return nil, portsift.Errorf(portsift.EINVALID, "invalid SOCKS proxy %q: %v", proxyURL, err)
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(xproxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	default:
		return nil, portsift.Errorf(portsift.EINVALID, "unsupported proxy scheme %q", u.Scheme)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f, nil
}

// Fetch issues a GET for the URL and returns the response body.
// Redirects are followed; a non-200 final status is an EUNAVAILABLE
// error so callers can fall back to the proxy pool.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", portsift.Errorf(portsift.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
