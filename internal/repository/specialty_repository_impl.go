package repository

import (
	"context"
	"net/url"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/domain/entity"
	domainRepo "hospital-kiosk/internal/domain/repository"
)

type specialtyRepository struct {
	fetcher Fetcher
}

func NewSpecialtyRepository(fetcher Fetcher) domainRepo.SpecialtyRepository {
	return &specialtyRepository{fetcher: fetcher}
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Especialidad, error) {
	records, err := fetchList(ctx, r.fetcher, "/especialidades/agenda", nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToEspecialidades(records), nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id string) (*entity.Especialidad, error) {
	rec, err := fetchObject(ctx, r.fetcher, "/especialidades/"+url.PathEscape(id))
	if err != nil || rec == nil {
		return nil, err
	}
	e, ok := converter.RecordToEspecialidad(rec)
	if !ok {
		return nil, nil
	}
	return &e, nil
}
