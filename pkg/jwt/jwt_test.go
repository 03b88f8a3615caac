package jwt

import (
	"testing"
	"time"

	"hospital-kiosk/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})

	token, sessionID, expiresAt, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, SessionToken, claims.TokenType)
	assert.Equal(t, time.Hour, svc.GetSessionExpiry())
}

func TestJWTService_FreshSessionEachTime(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})

	_, first, _, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	_, second, _, err := svc.GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Minute})
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, _, err := svc.GenerateSessionToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService(config.SessionConfig{Secret: "other", TTL: time.Hour})
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})

	token, _, _, err := issuer.GenerateSessionToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{SessionID: "abc", TokenType: SessionToken})
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{TTL: time.Hour})

	_, _, _, err := svc.GenerateSessionToken()
	assert.Error(t, err)
}
