package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Errors & Constants
// =============================================================================

// ErrEmptySessionID is returned when a registry call gets no session id.
var ErrEmptySessionID = errors.New("session id is empty")

const (
	// RedisSessionKeyPrefix marks a kiosk session as live until it expires or is revoked.
	RedisSessionKeyPrefix = "kiosk:session:"

	// Timeout for individual Redis operations
	redisSessionTimeout = 5 * time.Second
)

// =============================================================================
// Types
// =============================================================================

// SessionRegistryService tracks which kiosk sessions are live. A session token
// is only honored while its id is registered here.
type SessionRegistryService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionRegistryService(redisClient *redis.Client, log *logrus.Logger) *SessionRegistryService {
	return &SessionRegistryService{
		redisClient: redisClient,
		log:         log,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

func (s *SessionRegistryService) Register(ctx context.Context, sessionID string, ttl time.Duration) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, sessionKey(sessionID), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		s.log.Warnf("Failed to register session %s: %+v", sessionID, err)
		return fmt.Errorf("register session: %w", err)
	}
	return nil
}

func (s *SessionRegistryService) IsActive(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	n, err := s.redisClient.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// Revoke is idempotent.
func (s *SessionRegistryService) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	ctx, cancel := context.WithTimeout(ctx, redisSessionTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.log.Warnf("Failed to revoke session %s: %+v", sessionID, err)
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func sessionKey(sessionID string) string {
	return RedisSessionKeyPrefix + sessionID
}
