package repository

import (
	"context"

	"hospital-kiosk/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	// FindByID returns nil, nil when the backend does not know the doctor.
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindBySpecialty(ctx context.Context, specialtyID string) ([]entity.Doctor, error)
	// ForgetAll drops any transport-level copy of the doctor list.
	ForgetAll()
}
