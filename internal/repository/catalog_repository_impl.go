package repository

import (
	"context"
	"net/url"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/domain/entity"
	domainRepo "hospital-kiosk/internal/domain/repository"
)

type catalogRepository struct {
	fetcher Fetcher
}

func NewCatalogRepository(fetcher Fetcher) domainRepo.CatalogRepository {
	return &catalogRepository{fetcher: fetcher}
}

func (r *catalogRepository) FindConsultorios(ctx context.Context) ([]entity.Consultorio, error) {
	records, err := fetchList(ctx, r.fetcher, "/catalogos/consultorios", nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToConsultorios(records), nil
}

func (r *catalogRepository) FindEdificios(ctx context.Context) ([]entity.Edificio, error) {
	records, err := fetchList(ctx, r.fetcher, "/catalogos/edificios", nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToEdificios(records), nil
}

func (r *catalogRepository) FindDias(ctx context.Context) ([]entity.Dia, error) {
	records, err := fetchList(ctx, r.fetcher, "/catalogos/dias", nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToDias(records), nil
}

func (r *catalogRepository) FindPisosByEdificio(ctx context.Context, buildingCode string) ([]entity.Piso, error) {
	records, err := fetchList(ctx, r.fetcher, "/catalogos/edificios/"+url.PathEscape(buildingCode)+"/pisos", nil)
	if err != nil {
		return nil, err
	}
	return converter.RecordsToPisos(buildingCode, records), nil
}
