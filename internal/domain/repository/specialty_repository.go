package repository

import (
	"context"

	"hospital-kiosk/internal/domain/entity"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Especialidad, error)
	// FindByID returns nil, nil when the backend does not know the specialty.
	FindByID(ctx context.Context, id string) (*entity.Especialidad, error)
}
