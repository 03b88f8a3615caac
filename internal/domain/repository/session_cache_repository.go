package repository

import (
	"context"

	"hospital-kiosk/internal/domain/entity"
)

// SessionCacheRepository keeps per-kiosk-session copies of directory lists.
// Load methods return nil, nil on a miss, including unreadable entries.
type SessionCacheRepository interface {
	LoadDoctors(ctx context.Context, sessionID string) (*entity.DoctorListCacheEntry, error)
	SaveDoctors(ctx context.Context, entry *entity.DoctorListCacheEntry) error
	ClearDoctors(ctx context.Context, sessionID string) error

	LoadSpecialties(ctx context.Context, sessionID string) (*entity.SpecialtyListCacheEntry, error)
	SaveSpecialties(ctx context.Context, entry *entity.SpecialtyListCacheEntry) error

	// ClearSession removes every cached list of the session.
	ClearSession(ctx context.Context, sessionID string) error
}
