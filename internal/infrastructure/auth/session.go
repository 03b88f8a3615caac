package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"hospital-kiosk/internal/converter"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	loginPath   = "/Auth/login"
	refreshPath = "/Auth/refresh"

	defaultTimeout = 15 * time.Second
)

// Error is the single failure shape of the auth client.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// Session holds the bearer tokens used against the hospital backend. Tokens
// live in memory only and are checked by presence, not by expiry; a 401 from
// the backend is what triggers Refresh.
type Session struct {
	baseURL    string
	username   string
	password   string
	timeout    time.Duration
	httpClient *http.Client
	log        *logrus.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	logins singleflight.Group
}

func NewSession(cfg Config, log *logrus.Logger) *Session {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// AccessToken returns the cached access token, logging in first when there is none.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	token := s.accessToken
	s.mu.Unlock()
	if token != "" {
		return token, nil
	}
	return s.login(ctx)
}

// Refresh exchanges the refresh token for a new pair. Any failure, including a
// missing refresh token, falls back to a fresh login.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()

	if refresh != "" {
		pair, err := s.postForm(ctx, refreshPath, url.Values{"refresh_token": {refresh}})
		if err == nil {
			s.store(pair)
			return nil
		}
		s.log.Warnf("Failed to refresh upstream token, logging in again: %+v", err)
	}

	_, err := s.login(ctx)
	return err
}

// Clear forgets both tokens.
func (s *Session) Clear() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()
}

func (s *Session) login(ctx context.Context) (string, error) {
	// Concurrent fan-out calls share a single login round trip. The shared call
	// is detached from any one caller, so a caller that goes away only stops
	// waiting.
	ch := s.logins.DoChan("login", func() (any, error) {
		if s.username == "" || s.password == "" {
			return "", &Error{Message: "upstream credentials are not configured", Code: "MISSING_CREDENTIALS"}
		}
		loginCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		pair, err := s.postForm(loginCtx, loginPath, url.Values{
			"username": {s.username},
			"password": {s.password},
		})
		if err != nil {
			return "", err
		}
		s.store(pair)
		return pair.access, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *Session) store(pair tokenPair) {
	s.mu.Lock()
	s.accessToken = pair.access
	if pair.refresh != "" {
		s.refreshToken = pair.refresh
	}
	s.mu.Unlock()
}

type tokenPair struct {
	access  string
	refresh string
}

func (s *Session) postForm(ctx context.Context, path string, form url.Values) (tokenPair, error) {
	if s.baseURL == "" {
		return tokenPair{}, &Error{Message: "upstream base url is not configured", Code: "NOT_CONFIGURED"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenPair{}, &Error{Message: fmt.Sprintf("build auth request: %v", err), Code: "REQUEST_ERROR"}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return tokenPair{}, normalizeTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return tokenPair{}, normalizeTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("authentication failed with status %d", resp.StatusCode)
		if rec, err := converter.DecodeObject(raw); err == nil {
			if m := rec.First("message", "error_description", "error"); m != "" {
				msg = m
			}
		}
		return tokenPair{}, &Error{Message: msg, Code: strconv.Itoa(resp.StatusCode)}
	}

	rec, err := converter.DecodeObject(raw)
	if err != nil {
		return tokenPair{}, &Error{Message: fmt.Sprintf("invalid auth response: %v", err), Code: "INVALID_RESPONSE"}
	}
	pair := tokenPair{
		access:  rec.First("access_token", "accessToken", "token"),
		refresh: rec.First("refresh_token", "refreshToken"),
	}
	if pair.access == "" {
		return tokenPair{}, &Error{Message: "auth response missing access_token", Code: "INVALID_RESPONSE"}
	}
	return pair, nil
}

func normalizeTransportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Message: "Request timeout", Code: "TIMEOUT"}
	}
	return &Error{Message: err.Error(), Code: "NETWORK_ERROR"}
}
