package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-kiosk/config"
	"hospital-kiosk/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	active map[string]bool
	err    error
}

func (f *fakeChecker) IsActive(ctx context.Context, sessionID string) (bool, error) {
	return f.active[sessionID], f.err
}

func newAuthFixture(t *testing.T) (*AuthMiddleware, *fakeChecker, string, string) {
	t.Helper()
	svc := jwt.NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})
	token, sessionID, _, err := svc.GenerateSessionToken()
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	checker := &fakeChecker{active: map[string]bool{sessionID: true}}
	return NewAuthMiddleware(svc, checker, log), checker, token, sessionID
}

func TestAuthMiddleware(t *testing.T) {
	m, checker, token, sessionID := newAuthFixture(t)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetSessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := m.Authenticate(next)

	tests := []struct {
		name   string
		header string
		setup  func()
		status int
	}{
		{name: "valid session", header: "Bearer " + token, status: http.StatusNoContent},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "bad scheme", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", status: http.StatusUnauthorized},
		{
			name:   "ended session",
			header: "Bearer " + token,
			setup:  func() { checker.active[sessionID] = false },
			status: http.StatusUnauthorized,
		},
		{
			name:   "registry down",
			header: "Bearer " + token,
			setup:  func() { checker.err = errors.New("redis down") },
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, sessionID, seen)
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"status":418`)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	h := NewCORSMiddleware().Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}
