package dto

type SpecialtyResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Floor       string `json:"floor,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
	IsFromCache bool                `json:"is_from_cache"`
}
