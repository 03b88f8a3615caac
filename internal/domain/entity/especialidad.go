package entity

type Especialidad struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Floor       string `json:"floor,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
