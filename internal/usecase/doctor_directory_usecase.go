package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/entity"
	"hospital-kiosk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrUpstreamUnavailable = errors.New("hospital backend unavailable")
)

// DefaultDoctorListTTL is how long a session keeps its doctor list.
const DefaultDoctorListTTL = 24 * time.Hour

type DoctorDirectoryUsecase interface {
	LoadDoctors(ctx context.Context, sessionID string) (*dto.DoctorListResponse, error)
	RefreshDoctors(ctx context.Context, sessionID string) (*dto.DoctorListResponse, error)
	ClearCache(ctx context.Context, sessionID string) error
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	cacheRepo  repository.SessionCacheRepository
	ttl        time.Duration
	now        func() time.Time
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	cacheRepo repository.SessionCacheRepository,
	ttl time.Duration,
) DoctorDirectoryUsecase {
	if ttl <= 0 {
		ttl = DefaultDoctorListTTL
	}
	return &doctorDirectoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		cacheRepo:  cacheRepo,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (u *doctorDirectoryUsecase) LoadDoctors(ctx context.Context, sessionID string) (*dto.DoctorListResponse, error) {
	if entry := u.cachedDoctors(ctx, sessionID); entry != nil {
		return toDoctorList(entry.Doctors, true, entry.Timestamp), nil
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctor list: %+v", err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}

	fetchedAt := u.now()
	if sessionID != "" {
		entry := &entity.DoctorListCacheEntry{Doctors: doctors, Timestamp: fetchedAt, SessionID: sessionID}
		if err := u.cacheRepo.SaveDoctors(ctx, entry); err != nil {
			u.log.Warnf("Failed to cache doctor list for session %s: %+v", sessionID, err)
		}
	}

	return toDoctorList(doctors, false, fetchedAt), nil
}

// RefreshDoctors drops both the session copy and the gateway's cached
// response before loading again.
func (u *doctorDirectoryUsecase) RefreshDoctors(ctx context.Context, sessionID string) (*dto.DoctorListResponse, error) {
	if err := u.ClearCache(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to clear doctor cache for session %s: %+v", sessionID, err)
	}
	u.doctorRepo.ForgetAll()
	return u.LoadDoctors(ctx, sessionID)
}

func (u *doctorDirectoryUsecase) ClearCache(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.cacheRepo.ClearDoctors(ctx, sessionID)
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to fetch doctor %s: %+v", id, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) cachedDoctors(ctx context.Context, sessionID string) *entity.DoctorListCacheEntry {
	if sessionID == "" {
		return nil
	}
	entry, err := u.cacheRepo.LoadDoctors(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to read doctor cache for session %s: %+v", sessionID, err)
		return nil
	}
	if entry == nil || entry.Timestamp.IsZero() {
		return nil
	}
	if u.now().Sub(entry.Timestamp) >= u.ttl {
		u.log.Debugf("Doctor cache of session %s expired", sessionID)
		return nil
	}
	return entry
}

func toDoctorList(doctors []entity.Doctor, fromCache bool, at time.Time) *dto.DoctorListResponse {
	return &dto.DoctorListResponse{
		Doctors:     converter.DoctorsToResponses(doctors),
		Total:       len(doctors),
		IsFromCache: fromCache,
		CachedAt:    at.UTC().Format(time.RFC3339),
	}
}
