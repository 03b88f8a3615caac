package dto

import "hospital-kiosk/internal/domain/entity"

// Request DTOs

// ScheduleQuery is built from the path code and the repeated or comma-separated
// "specialty" query parameter.
type ScheduleQuery struct {
	ProviderCode string   `json:"provider_code" validate:"required,max=32,alphanum"`
	SpecialtyIDs []string `json:"specialty_ids" validate:"omitempty,dive,required,numeric"`
}

// Response DTOs

type DetailedScheduleListResponse struct {
	Schedules []entity.DetailedSchedule `json:"schedules"`
	Total     int                       `json:"total"`
	Complete  bool                      `json:"complete"`
	Warning   string                    `json:"warning,omitempty"`
}
