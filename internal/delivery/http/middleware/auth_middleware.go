package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-kiosk/pkg/jwt"
	"hospital-kiosk/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
)

// SessionChecker reports whether a kiosk session is still registered.
type SessionChecker interface {
	IsActive(ctx context.Context, sessionID string) (bool, error)
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   SessionChecker
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions SessionChecker, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		log:        log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired session")
			return
		}
		if claims.TokenType != jwt.SessionToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Ended sessions keep a valid signature until expiry.
		active, err := m.sessions.IsActive(r.Context(), claims.SessionID)
		if err != nil {
			m.log.Warnf("Failed to check session %s: %+v", claims.SessionID, err)
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if !active {
			response.Unauthorized(w, "Session has ended")
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, claims.SessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext extracts the kiosk session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}
