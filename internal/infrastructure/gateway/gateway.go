package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-kiosk/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 30 * time.Second

	TimeoutMessage = "Request timeout"

	maxBodyBytes    = 4 << 20
	maxMessageRunes = 300
)

// TokenSource supplies bearer tokens for upstream calls.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
	Refresh(ctx context.Context) error
}

// Result is the outcome of every gateway call. Failures never surface as Go
// errors: Success is false and Message says why.
type Result struct {
	Data       json.RawMessage
	Success    bool
	Message    string
	StatusCode int
	FromCache  bool
}

// Options tunes a single request.
type Options struct {
	Query url.Values
	// Form is sent url-encoded as the request body.
	Form url.Values
	// Timeout overrides the gateway default for this call.
	Timeout time.Duration
}

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Gateway wraps *http.Client with the kiosk's upstream conventions: a timeout
// composed with the caller's context, a short-lived GET cache keyed by
// METHOD:URL, and error bodies flattened into Result.Message.
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	cache      *responseCache
	tokens     TokenSource
	metrics    *metrics.UpstreamMetrics
	log        *logrus.Logger
}

func New(cfg Config, tokens TokenSource, m *metrics.UpstreamMetrics, log *logrus.Logger) (*Gateway, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("gateway: empty base url")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("gateway: invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Gateway{
		// Deadlines come from the per-request context.
		httpClient: &http.Client{},
		baseURL:    base,
		timeout:    timeout,
		cache:      newResponseCache(ttl, time.Now),
		tokens:     tokens,
		metrics:    m,
		log:        log,
	}, nil
}

// Get is Request with GET and optional query parameters.
func (g *Gateway) Get(ctx context.Context, endpoint string, query url.Values) Result {
	return g.Request(ctx, http.MethodGet, endpoint, Options{Query: query})
}

func (g *Gateway) Request(ctx context.Context, method, endpoint string, opts Options) Result {
	fullURL := g.resolveURL(endpoint, opts.Query)
	key := method + ":" + fullURL
	cacheable := method == http.MethodGet

	if cacheable {
		if data, ok := g.cache.get(key); ok {
			g.metrics.ObserveCache("response", true)
			g.log.WithField("url", fullURL).Debug("Serving upstream response from cache")
			return Result{Data: data, Success: true, StatusCode: http.StatusOK, FromCache: true}
		}
		g.metrics.ObserveCache("response", false)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = g.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	result := g.do(ctx, method, fullURL, opts)
	outcome := "ok"
	if !result.Success {
		outcome = "error"
	}
	g.metrics.ObserveRequest(method, outcome, time.Since(start).Seconds())

	if result.Success && cacheable {
		g.cache.set(key, result.Data)
	}
	return result
}

// InvalidatePath drops cached GET responses whose URL starts with path.
func (g *Gateway) InvalidatePath(path string) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	g.cache.invalidatePrefix(http.MethodGet + ":" + g.baseURL + path)
}

// Purge drops every cached response.
func (g *Gateway) Purge() {
	g.cache.purge()
}

func (g *Gateway) do(ctx context.Context, method, fullURL string, opts Options) Result {
	var body io.Reader
	if opts.Form != nil {
		body = strings.NewReader(opts.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return Result{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if opts.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if g.tokens != nil {
		token, err := g.tokens.AccessToken(ctx)
		if err != nil {
			g.log.Warnf("Failed to obtain upstream token: %+v", err)
			return Result{Message: err.Error()}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Result{Message: transportMessage(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Result{Message: transportMessage(err), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fields := logrus.Fields{"status": resp.StatusCode, "method": method, "url": fullURL}
		g.log.WithFields(fields).Warn("Upstream returned non-2xx response")

		if resp.StatusCode == http.StatusUnauthorized && g.tokens != nil {
			// The next call picks up the new token; this one is reported as failed.
			if err := g.tokens.Refresh(ctx); err != nil {
				g.log.Warnf("Failed to refresh upstream token: %+v", err)
			}
		}
		return Result{Message: errorMessage(resp.StatusCode, raw), StatusCode: resp.StatusCode}
	}

	return Result{Data: raw, Success: true, StatusCode: resp.StatusCode}
}

func (g *Gateway) resolveURL(endpoint string, query url.Values) string {
	endpoint = strings.TrimSpace(endpoint)
	full := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if !strings.HasPrefix(endpoint, "/") {
			endpoint = "/" + endpoint
		}
		full = g.baseURL + endpoint
	}
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(full, "?") {
			sep = "&"
		}
		full += sep + query.Encode()
	}
	return full
}

// errorMessage prefers the JSON "message" field, then the raw body, then the status.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		return strings.TrimSpace(body.Message)
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return truncateRunes(text, maxMessageRunes)
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// truncateRunes cuts s to at most n runes without splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func transportMessage(err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return TimeoutMessage
	}
	return err.Error()
}
