package converter

import (
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/entity"
)

// RecordToDoctor maps an upstream doctor record. ok is false when the record
// carries no identifier at all.
func RecordToDoctor(r Record) (entity.Doctor, bool) {
	aliases := r.Fields(DoctorSchema, "id")
	if len(aliases) == 0 {
		return entity.Doctor{}, false
	}

	doctor := entity.Doctor{
		ID:       aliases[0],
		Aliases:  aliases,
		Name:     r.Field(DoctorSchema, "name"),
		PhotoURL: r.Field(DoctorSchema, "photo"),
	}

	for _, s := range r.Records(DoctorSchema["specialties"]...) {
		id := s.Field(DoctorSpecialtySchema, "id")
		if id == "" {
			continue
		}
		doctor.Specialties = append(doctor.Specialties, entity.DoctorSpecialty{
			ID:    id,
			Label: s.Field(DoctorSpecialtySchema, "label"),
		})
	}

	if len(doctor.Specialties) == 0 {
		if id := r.Field(DoctorSchema, "specialtyId"); id != "" {
			doctor.Specialties = append(doctor.Specialties, entity.DoctorSpecialty{
				ID:    id,
				Label: r.Field(DoctorSchema, "specialtyLabel"),
			})
		}
	}

	return doctor, true
}

// RecordsToDoctors maps a doctor list, skipping records without an identifier.
func RecordsToDoctors(records []Record) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, len(records))
	for _, r := range records {
		if d, ok := RecordToDoctor(r); ok {
			doctors = append(doctors, d)
		}
	}
	return doctors
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	specialties := make([]dto.DoctorSpecialtyResponse, len(doctor.Specialties))
	for i, s := range doctor.Specialties {
		specialties[i] = dto.DoctorSpecialtyResponse{ID: s.ID, Label: s.Label}
	}

	return &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		PhotoURL:    doctor.PhotoURL,
		Specialties: specialties,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
