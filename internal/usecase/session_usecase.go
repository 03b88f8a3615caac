package usecase

import (
	"context"
	"fmt"
	"time"

	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/repository"
	"hospital-kiosk/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// SessionRegistry records which kiosk sessions may still be used.
type SessionRegistry interface {
	Register(ctx context.Context, sessionID string, ttl time.Duration) error
	Revoke(ctx context.Context, sessionID string) error
}

type SessionUsecase interface {
	StartSession(ctx context.Context) (*dto.SessionResponse, error)
	EndSession(ctx context.Context, sessionID string) error
}

type sessionUsecase struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	registry   SessionRegistry
	cacheRepo  repository.SessionCacheRepository
}

func NewSessionUsecase(
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	registry SessionRegistry,
	cacheRepo repository.SessionCacheRepository,
) SessionUsecase {
	return &sessionUsecase{
		log:        log,
		jwtService: jwtService,
		registry:   registry,
		cacheRepo:  cacheRepo,
	}
}

func (u *sessionUsecase) StartSession(ctx context.Context) (*dto.SessionResponse, error) {
	token, sessionID, expiresAt, err := u.jwtService.GenerateSessionToken()
	if err != nil {
		u.log.Warnf("Failed to sign session token: %+v", err)
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	if err := u.registry.Register(ctx, sessionID, u.jwtService.GetSessionExpiry()); err != nil {
		return nil, err
	}

	u.log.WithField("session_id", sessionID).Info("Kiosk session started")
	return &dto.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}

// EndSession drops the session's cached lists and revokes its token.
func (u *sessionUsecase) EndSession(ctx context.Context, sessionID string) error {
	if err := u.cacheRepo.ClearSession(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to clear caches of session %s: %+v", sessionID, err)
	}
	if err := u.registry.Revoke(ctx, sessionID); err != nil {
		return err
	}
	u.log.WithField("session_id", sessionID).Info("Kiosk session ended")
	return nil
}
