package repository

import (
	"context"
	"net/url"

	"hospital-kiosk/internal/converter"
	"hospital-kiosk/internal/domain/entity"
	domainRepo "hospital-kiosk/internal/domain/repository"
)

type agendaRepository struct {
	fetcher Fetcher
}

func NewAgendaRepository(fetcher Fetcher) domainRepo.AgendaRepository {
	return &agendaRepository{fetcher: fetcher}
}

func (r *agendaRepository) FindByProvider(ctx context.Context, providerCode, providerParam string) ([]entity.Agenda, error) {
	if providerParam == "" {
		providerParam = domainRepo.ProviderParamCodigo
	}
	records, err := fetchList(ctx, r.fetcher, "/agnd-agenda", url.Values{providerParam: {providerCode}})
	if err != nil {
		return nil, err
	}
	return converter.RecordsToAgendas(records), nil
}
