package jwt

import (
	"errors"
	"time"

	"hospital-kiosk/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	SessionToken TokenType = "kiosk_session"
)

type Claims struct {
	SessionID string    `json:"session_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.SessionConfig
	now    func() time.Time
}

func NewJWTService(cfg config.SessionConfig) *JWTService {
	return &JWTService{config: cfg, now: time.Now}
}

// GenerateSessionToken starts a new kiosk session and returns its signed token,
// the fresh session id, and the expiry.
func (s *JWTService) GenerateSessionToken() (string, string, time.Time, error) {
	if s.config.Secret == "" {
		return "", "", time.Time{}, errors.New("session secret is not configured")
	}

	sessionID := uuid.New().String()
	now := s.now()
	expiresAt := now.Add(s.config.TTL)
	claims := Claims{
		SessionID: sessionID,
		TokenType: SessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", time.Time{}, err
	}

	return signedToken, sessionID, expiresAt, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetSessionExpiry() time.Duration {
	return s.config.TTL
}
