package entity

// DoctorSpecialty pairs a specialty id with the label the doctor record shows for it.
type DoctorSpecialty struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Doctor is a provider ("prestador") as listed by the upstream doctor catalog.
// ID is the canonical key; Aliases holds every identifier value the record
// carried, ID included, so lookups by any alias resolve to the same doctor.
type Doctor struct {
	ID          string            `json:"id"`
	Aliases     []string          `json:"aliases,omitempty"`
	Name        string            `json:"name"`
	Specialties []DoctorSpecialty `json:"specialties"`
	PhotoURL    string            `json:"photo_url,omitempty"`
}

// FirstSpecialty returns the first listed specialty, if any.
func (d *Doctor) FirstSpecialty() (DoctorSpecialty, bool) {
	if d == nil || len(d.Specialties) == 0 {
		return DoctorSpecialty{}, false
	}
	return d.Specialties[0], true
}

// SpecialtyByID finds the doctor's specialty entry with the given id.
func (d *Doctor) SpecialtyByID(id string) (DoctorSpecialty, bool) {
	if d == nil || id == "" {
		return DoctorSpecialty{}, false
	}
	for _, s := range d.Specialties {
		if s.ID == id {
			return s, true
		}
	}
	return DoctorSpecialty{}, false
}
