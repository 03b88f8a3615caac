package repository

import (
	"context"
	"fmt"
	"net/url"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/domain/entity"
	domainRepo "hospital-kiosk/internal/domain/repository"
)

const doctorListPath = "/medico/agenda"

type doctorRepository struct {
	fetcher Fetcher
}

func NewDoctorRepository(fetcher Fetcher) domainRepo.DoctorRepository {
	return &doctorRepository{fetcher: fetcher}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	records, err := fetchList(ctx, r.fetcher, doctorListPath, nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToDoctors(records), nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	rec, err := fetchObject(ctx, r.fetcher, fmt.Sprintf("%s/%s", doctorListPath, url.PathEscape(id)))
	if err != nil || rec == nil {
		return nil, err
	}
	doctor, ok := converter.RecordToDoctor(rec)
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *doctorRepository) FindBySpecialty(ctx context.Context, specialtyID string) ([]entity.Doctor, error) {
	records, err := fetchList(ctx, r.fetcher, "/medico/especialidad/"+url.PathEscape(specialtyID), nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToDoctors(records), nil
}

func (r *doctorRepository) ForgetAll() {
	r.fetcher.InvalidatePath(doctorListPath)
}
