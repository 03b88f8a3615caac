package converter

import (
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/entity"
)

// SpecialtyToResponse converts an Especialidad entity to SpecialtyResponse DTO
func SpecialtyToResponse(e *entity.Especialidad) *dto.SpecialtyResponse {
	if e == nil {
		return nil
	}
	return &dto.SpecialtyResponse{
		ID:          e.ID,
		Description: e.Description,
		Slug:        e.Slug,
		Floor:       e.Floor,
		Icon:        e.Icon,
	}
}

func SpecialtiesToResponses(list []entity.Especialidad) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(list))
	for i := range list {
		responses[i] = *SpecialtyToResponse(&list[i])
	}
	return responses
}
