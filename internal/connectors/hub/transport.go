package hub

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/tripleten-tools/tripleten-cli/internal/core/domain"
	"github.com/tripleten-tools/tripleten-cli/internal/logger"
)

const (
	// DefaultBaseURL is the hub origin all requests are made against.
	DefaultBaseURL = "https://hub.tripleten.com"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries = 3

	// RetryWaitTime is the initial delay between retries.
	RetryWaitTime = 1 * time.Second

	// RetryMaxWaitTime caps the backoff delay between retries.
	RetryMaxWaitTime = 8 * time.Second

	// DefaultRequestsPerSecond is the proactive throttle rate. Watch
	// mode with a short interval stays well under the hub's limits.
	DefaultRequestsPerSecond = 2

	// DefaultBurst is the token bucket size for the throttle.
	DefaultBurst = 4
)

// browserHeaders is the fixed header set sent with every request.
// The hub serves its internal API to the web client only, so the
// values reproduce a current Firefox fingerprint byte-for-byte.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:142.0) Gecko/20100101 Firefox/142.0",
	"Accept":          "application/json",
	"Accept-Language": "en-US,en;q=0.5",
	"Content-Type":    "application/json",
	"Connection":      "keep-alive",
	"Sec-Fetch-Dest":  "empty",
	"Sec-Fetch-Mode":  "cors",
	"Sec-Fetch-Site":  "same-origin",
	"Priority":        "u=4",
	"Pragma":          "no-cache",
	"Cache-Control":   "no-cache",
	"TE":              "trailers",
}

// retryStatuses are the response codes retried for idempotent methods.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// idempotentMethods are the methods safe to retry.
var idempotentMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// Transport wraps a resty client configured to look like the hub's
// own web front-end: browser headers, session cookies, bounded
// retries and a proactive rate limit.
type Transport struct {
	client  *resty.Client
	limiter *rate.Limiter
	dump    *exchangeDump
}

// TransportOption customises transport construction.
type TransportOption func(*transportConfig)

type transportConfig struct {
	baseURL          string
	timeout          time.Duration
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestsPerSec   float64
	burst            int
	dumpDir          string
}

// WithBaseURL overrides the hub origin.
func WithBaseURL(baseURL string) TransportOption {
	return func(cfg *transportConfig) {
		cfg.baseURL = baseURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) TransportOption {
	return func(cfg *transportConfig) {
		cfg.timeout = timeout
	}
}

// WithRetryWaitTime overrides the retry backoff base. The cap scales
// with it, keeping the same backoff shape as the defaults.
func WithRetryWaitTime(wait time.Duration) TransportOption {
	return func(cfg *transportConfig) {
		cfg.retryWaitTime = wait
		cfg.retryMaxWaitTime = 8 * wait
	}
}

// WithRateLimit overrides the proactive throttle.
func WithRateLimit(requestsPerSecond float64, burst int) TransportOption {
	return func(cfg *transportConfig) {
		cfg.requestsPerSec = requestsPerSecond
		cfg.burst = burst
	}
}

// WithDebugDump writes every HTTP exchange to a file under dir for
// offline inspection.
func WithDebugDump(dir string) TransportOption {
	return func(cfg *transportConfig) {
		cfg.dumpDir = dir
	}
}

// NewTransport creates a transport against the hub origin.
func NewTransport(opts ...TransportOption) *Transport {
	cfg := transportConfig{
		baseURL:          DefaultBaseURL,
		timeout:          DefaultTimeout,
		retryWaitTime:    RetryWaitTime,
		retryMaxWaitTime: RetryMaxWaitTime,
		requestsPerSec:   DefaultRequestsPerSecond,
		burst:            DefaultBurst,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := resty.New()
	client.SetBaseURL(cfg.baseURL)
	client.SetTimeout(cfg.timeout)
	client.SetHeaders(browserHeaders)
	client.SetRetryCount(MaxRetries)
	client.SetRetryWaitTime(cfg.retryWaitTime)
	client.SetRetryMaxWaitTime(cfg.retryMaxWaitTime)
	client.AddRetryCondition(shouldRetry)

	// Connection and TE are hop-by-hop headers the HTTP/2 transport
	// rejects outright; the fingerprint is an HTTP/1.1 header set, so
	// HTTP/2 negotiation is disabled.
	client.SetTransport(&http.Transport{
		Proxy:        http.ProxyFromEnvironment,
		TLSNextProto: map[string]func(string, *tls.Conn) http.RoundTripper{},
	})

	t := &Transport{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.requestsPerSec), cfg.burst),
	}

	if cfg.dumpDir != "" {
		dump, err := newExchangeDump(cfg.dumpDir)
		if err != nil {
			logger.Warn("Exchange dumps disabled: %v", err)
		} else {
			t.dump = dump
			client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
				t.dump.Write(res)
				return nil
			})
		}
	}

	return t
}

// shouldRetry reports whether an attempt is worth repeating. Only
// idempotent methods are retried, on transport errors and on the
// transient status set. A 401 is deliberate rejection, not transience,
// and is never retried.
func shouldRetry(res *resty.Response, err error) bool {
	if res == nil || res.Request == nil {
		return false
	}
	if !idempotentMethods[res.Request.Method] {
		return false
	}
	if err != nil {
		return true
	}
	return retryStatuses[res.StatusCode()]
}

// SetCredentials replaces the cookies attached to every subsequent
// request. Cookies are sorted by name so the header bytes stay stable
// between requests; map iteration would shuffle them.
func (t *Transport) SetCredentials(creds domain.Credentials) {
	cookies := make([]*http.Cookie, 0, len(creds))
	for name, value := range creds {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	sort.Slice(cookies, func(i, j int) bool { return cookies[i].Name < cookies[j].Name })

	t.client.Cookies = cookies
}

// Do dispatches one request against the hub. The rate limiter gates
// dispatch; retries happen inside the resty client, so an exhausted
// retry budget surfaces as the final response rather than an error.
// A 401 maps to domain.ErrAuthRequired, transport failures map to
// NetworkError; every other response comes back as-is.
func (t *Transport) Do(
	ctx context.Context, method, path string, query, headers map[string]string,
) (*resty.Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req := t.client.R().SetContext(ctx)
	for key, value := range query {
		req.SetQueryParam(key, value)
	}
	for key, value := range headers {
		req.SetHeader(key, value)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, &NetworkError{URL: req.URL, Err: err}
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return resp, domain.ErrAuthRequired
	}

	return resp, nil
}
