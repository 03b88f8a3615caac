package entity

// Consultorio is a physical room. FloorDescription comes from the room's own
// floor field; FloorDescriptionAlt is the raw alternate field some backend
// versions send instead.
type Consultorio struct {
	Code                string `json:"code"`
	Description         string `json:"description,omitempty"`
	BuildingCode        string `json:"building_code"`
	FloorCode           string `json:"floor_code"`
	FloorDescription    string `json:"floor_description,omitempty"`
	FloorDescriptionAlt string `json:"floor_description_alt,omitempty"`
}

type Edificio struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Piso is an entry of a building's floor catalog.
type Piso struct {
	BuildingCode string `json:"building_code"`
	Code         string `json:"code"`
	Description  string `json:"description"`
}

// Dia is an entry of the day-name catalog ("1" -> "Lunes").
type Dia struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
