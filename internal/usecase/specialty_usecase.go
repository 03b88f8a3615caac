package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/entity"
	"hospital-kiosk/internal/domain/repository"
	"hospital-kiosk/internal/normalize"

	"github.com/sirupsen/logrus"
)

var (
	ErrSpecialtyNotFound = errors.New("specialty not found")
)

type SpecialtyUsecase interface {
	ListSpecialties(ctx context.Context, sessionID string) (*dto.SpecialtyListResponse, error)
	GetSpecialty(ctx context.Context, idOrSlug string) (*dto.SpecialtyResponse, error)
	ListDoctorsBySpecialty(ctx context.Context, specialtyID string) (*dto.DoctorListResponse, error)
}

type specialtyUsecase struct {
	log           *logrus.Logger
	specialtyRepo repository.SpecialtyRepository
	doctorRepo    repository.DoctorRepository
	cacheRepo     repository.SessionCacheRepository
	now           func() time.Time
}

func NewSpecialtyUsecase(
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	doctorRepo repository.DoctorRepository,
	cacheRepo repository.SessionCacheRepository,
) SpecialtyUsecase {
	return &specialtyUsecase{
		log:           log,
		specialtyRepo: specialtyRepo,
		doctorRepo:    doctorRepo,
		cacheRepo:     cacheRepo,
		now:           time.Now,
	}
}

func (u *specialtyUsecase) ListSpecialties(ctx context.Context, sessionID string) (*dto.SpecialtyListResponse, error) {
	if sessionID != "" {
		entry, err := u.cacheRepo.LoadSpecialties(ctx, sessionID)
		if err != nil {
			u.log.Warnf("Failed to read specialty cache for session %s: %+v", sessionID, err)
		}
		if entry != nil {
			return toSpecialtyList(entry.Specialties, true), nil
		}
	}

	list, err := u.specialtyRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch specialties: %+v", err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}

	if sessionID != "" {
		entry := &entity.SpecialtyListCacheEntry{Specialties: list, Timestamp: u.now(), SessionID: sessionID}
		if err := u.cacheRepo.SaveSpecialties(ctx, entry); err != nil {
			u.log.Warnf("Failed to cache specialties for session %s: %+v", sessionID, err)
		}
	}
	return toSpecialtyList(list, false), nil
}

// GetSpecialty resolves numeric ids through the backend and anything else
// as a slug against the full list.
func (u *specialtyUsecase) GetSpecialty(ctx context.Context, idOrSlug string) (*dto.SpecialtyResponse, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if idOrSlug == "" {
		return nil, ErrSpecialtyNotFound
	}

	if _, err := strconv.Atoi(idOrSlug); err == nil {
		e, err := u.specialtyRepo.FindByID(ctx, idOrSlug)
		if err != nil {
			u.log.Warnf("Failed to fetch specialty %s: %+v", idOrSlug, err)
			return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
		}
		if e == nil {
			return nil, ErrSpecialtyNotFound
		}
		if e.Slug == "" {
			e.Slug = normalize.Slugify(e.Description)
		}
		return converter.SpecialtyToResponse(e), nil
	}

	list, err := u.specialtyRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch specialties: %+v", err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}
	slug := normalize.Slugify(idOrSlug)
	for i := range list {
		if list[i].Slug == slug {
			return converter.SpecialtyToResponse(&list[i]), nil
		}
	}
	return nil, ErrSpecialtyNotFound
}

func (u *specialtyUsecase) ListDoctorsBySpecialty(ctx context.Context, specialtyID string) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindBySpecialty(ctx, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors of specialty %s: %+v", specialtyID, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, err.Error())
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func toSpecialtyList(list []entity.Especialidad, fromCache bool) *dto.SpecialtyListResponse {
	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(list),
		Total:       len(list),
		IsFromCache: fromCache,
	}
}
