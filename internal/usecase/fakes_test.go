package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"hospital-kiosk/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeAgendaRepo struct {
	mu     sync.Mutex
	byKey  map[string][]entity.Agenda
	errs   map[string]error
	calls  []string
	onCall func(ctx context.Context)
}

func (f *fakeAgendaRepo) FindByProvider(ctx context.Context, providerCode, param string) ([]entity.Agenda, error) {
	f.mu.Lock()
	f.calls = append(f.calls, param+"="+providerCode)
	f.mu.Unlock()
	if f.onCall != nil {
		f.onCall(ctx)
	}
	key := param + "=" + providerCode
	return f.byKey[key], f.errs[key]
}

type fakeDoctorRepo struct {
	mu          sync.Mutex
	doctors     []entity.Doctor
	err         error
	findAll     int
	forgotten   int
	bySpecialty map[string][]entity.Doctor
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	f.mu.Lock()
	f.findAll++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.doctors, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.doctors {
		for _, alias := range f.doctors[i].Aliases {
			if alias == id {
				return &f.doctors[i], nil
			}
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindBySpecialty(ctx context.Context, specialtyID string) ([]entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySpecialty[specialtyID], nil
}

func (f *fakeDoctorRepo) ForgetAll() {
	f.mu.Lock()
	f.forgotten++
	f.mu.Unlock()
}

type fakeCatalogRepo struct {
	rooms        []entity.Consultorio
	buildings    []entity.Edificio
	days         []entity.Dia
	floors       map[string][]entity.Piso
	roomsErr     error
	buildingsErr error
	daysErr      error
	floorErrs    map[string]error
}

func (f *fakeCatalogRepo) FindConsultorios(ctx context.Context) ([]entity.Consultorio, error) {
	return f.rooms, f.roomsErr
}

func (f *fakeCatalogRepo) FindEdificios(ctx context.Context) ([]entity.Edificio, error) {
	return f.buildings, f.buildingsErr
}

func (f *fakeCatalogRepo) FindDias(ctx context.Context) ([]entity.Dia, error) {
	return f.days, f.daysErr
}

func (f *fakeCatalogRepo) FindPisosByEdificio(ctx context.Context, buildingCode string) ([]entity.Piso, error) {
	if err := f.floorErrs[buildingCode]; err != nil {
		return nil, err
	}
	return f.floors[buildingCode], nil
}

type fakeSpecialtyRepo struct {
	specialties []entity.Especialidad
	err         error
	findAll     int
}

func (f *fakeSpecialtyRepo) FindAll(ctx context.Context) ([]entity.Especialidad, error) {
	f.findAll++
	return f.specialties, f.err
}

func (f *fakeSpecialtyRepo) FindByID(ctx context.Context, id string) (*entity.Especialidad, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.specialties {
		if f.specialties[i].ID == id {
			return &f.specialties[i], nil
		}
	}
	return nil, nil
}

type fakeSessionCache struct {
	doctors     map[string]*entity.DoctorListCacheEntry
	specialties map[string]*entity.SpecialtyListCacheEntry
	loadErr     error
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{
		doctors:     map[string]*entity.DoctorListCacheEntry{},
		specialties: map[string]*entity.SpecialtyListCacheEntry{},
	}
}

func (f *fakeSessionCache) LoadDoctors(ctx context.Context, sessionID string) (*entity.DoctorListCacheEntry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.doctors[sessionID], nil
}

func (f *fakeSessionCache) SaveDoctors(ctx context.Context, entry *entity.DoctorListCacheEntry) error {
	f.doctors[entry.SessionID] = entry
	return nil
}

func (f *fakeSessionCache) ClearDoctors(ctx context.Context, sessionID string) error {
	delete(f.doctors, sessionID)
	return nil
}

func (f *fakeSessionCache) LoadSpecialties(ctx context.Context, sessionID string) (*entity.SpecialtyListCacheEntry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.specialties[sessionID], nil
}

func (f *fakeSessionCache) SaveSpecialties(ctx context.Context, entry *entity.SpecialtyListCacheEntry) error {
	f.specialties[entry.SessionID] = entry
	return nil
}

func (f *fakeSessionCache) ClearSession(ctx context.Context, sessionID string) error {
	delete(f.doctors, sessionID)
	delete(f.specialties, sessionID)
	return nil
}

var errUpstream = errors.New("Request timeout")

type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time { return c.t }
