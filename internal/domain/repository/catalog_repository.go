package repository

import (
	"context"

	"hospital-kiosk/internal/domain/entity"
)

type CatalogRepository interface {
	FindConsultorios(ctx context.Context) ([]entity.Consultorio, error)
	FindEdificios(ctx context.Context) ([]entity.Edificio, error)
	FindDias(ctx context.Context) ([]entity.Dia, error)
	FindPisosByEdificio(ctx context.Context, buildingCode string) ([]entity.Piso, error)
}
