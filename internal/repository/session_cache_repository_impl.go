package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hospital-kiosk/internal/domain/entity"
	domainRepo "hospital-kiosk/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	RedisSessionCacheKeyPrefix = "kiosk:cache:"

	doctorsSuffix     = ":doctors"
	specialtiesSuffix = ":specialties"
)

type sessionCacheRepository struct {
	redisClient  *redis.Client
	log          *logrus.Logger
	doctorTTL    time.Duration
	specialtyTTL time.Duration
}

func NewSessionCacheRepository(redisClient *redis.Client, log *logrus.Logger, doctorTTL, specialtyTTL time.Duration) domainRepo.SessionCacheRepository {
	return &sessionCacheRepository{
		redisClient:  redisClient,
		log:          log,
		doctorTTL:    doctorTTL,
		specialtyTTL: specialtyTTL,
	}
}

func doctorsKey(sessionID string) string {
	return RedisSessionCacheKeyPrefix + sessionID + doctorsSuffix
}

func specialtiesKey(sessionID string) string {
	return RedisSessionCacheKeyPrefix + sessionID + specialtiesSuffix
}

func (r *sessionCacheRepository) LoadDoctors(ctx context.Context, sessionID string) (*entity.DoctorListCacheEntry, error) {
	var entry entity.DoctorListCacheEntry
	found, err := r.load(ctx, doctorsKey(sessionID), &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (r *sessionCacheRepository) SaveDoctors(ctx context.Context, entry *entity.DoctorListCacheEntry) error {
	return r.save(ctx, doctorsKey(entry.SessionID), entry, r.doctorTTL)
}

func (r *sessionCacheRepository) ClearDoctors(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Del(ctx, doctorsKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear doctor cache for session %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionCacheRepository) LoadSpecialties(ctx context.Context, sessionID string) (*entity.SpecialtyListCacheEntry, error) {
	var entry entity.SpecialtyListCacheEntry
	found, err := r.load(ctx, specialtiesKey(sessionID), &entry)
	if err != nil || !found {
		return nil, err
	}
	return &entry, nil
}

func (r *sessionCacheRepository) SaveSpecialties(ctx context.Context, entry *entity.SpecialtyListCacheEntry) error {
	return r.save(ctx, specialtiesKey(entry.SessionID), entry, r.specialtyTTL)
}

func (r *sessionCacheRepository) ClearSession(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Del(ctx, doctorsKey(sessionID), specialtiesKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cache for session %s: %w", sessionID, err)
	}
	return nil
}

// load reports found=false on a miss. A corrupt entry is deleted and treated
// as a miss.
func (r *sessionCacheRepository) load(ctx context.Context, key string, out any) (bool, error) {
	raw, err := r.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		r.log.Warnf("Discarding unreadable cache entry %s: %+v", key, err)
		if delErr := r.redisClient.Del(ctx, key).Err(); delErr != nil {
			r.log.Warnf("Failed to delete cache entry %s: %+v", key, delErr)
		}
		return false, nil
	}
	return true, nil
}

func (r *sessionCacheRepository) save(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.redisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
