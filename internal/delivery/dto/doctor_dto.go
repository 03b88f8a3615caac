package dto

// Response DTOs

type DoctorSpecialtyResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type DoctorResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	PhotoURL    string                    `json:"photo_url,omitempty"`
	Specialties []DoctorSpecialtyResponse `json:"specialties"`
}

type DoctorListResponse struct {
	Doctors     []DoctorResponse `json:"doctors"`
	Total       int              `json:"total"`
	IsFromCache bool             `json:"is_from_cache"`
	CachedAt    string           `json:"cached_at,omitempty"`
}
