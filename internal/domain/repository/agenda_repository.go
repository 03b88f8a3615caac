package repository

import (
	"context"

	"hospital-kiosk/internal/domain/entity"
)

// Query parameter names the backend has used for the provider code.
const (
	ProviderParamCodigo = "codigo_prestador"
	ProviderParamCd     = "cd_prestador"
)

type AgendaRepository interface {
	FindByProvider(ctx context.Context, providerCode, providerParam string) ([]entity.Agenda, error)
}
