package converter

import (
	"hospital-kiosk/internal/domain/entity"
	"hospital-kiosk/internal/normalize"
)

func RecordsToConsultorios(records []Record) []entity.Consultorio {
	out := make([]entity.Consultorio, 0, len(records))
	for _, r := range records {
		code := r.Field(ConsultorioSchema, "code")
		if code == "" {
			continue
		}
		out = append(out, entity.Consultorio{
			Code:                code,
			Description:         r.Field(ConsultorioSchema, "description"),
			BuildingCode:        r.Field(ConsultorioSchema, "building"),
			FloorCode:           r.Field(ConsultorioSchema, "floor"),
			FloorDescription:    r.Field(ConsultorioSchema, "floorDesc"),
			FloorDescriptionAlt: r.Field(ConsultorioSchema, "floorDescAlt"),
		})
	}
	return out
}

func RecordsToEdificios(records []Record) []entity.Edificio {
	out := make([]entity.Edificio, 0, len(records))
	for _, r := range records {
		code := r.Field(EdificioSchema, "code")
		if code == "" {
			continue
		}
		out = append(out, entity.Edificio{
			Code:        code,
			Description: r.Field(EdificioSchema, "description"),
		})
	}
	return out
}

func RecordsToPisos(buildingCode string, records []Record) []entity.Piso {
	out := make([]entity.Piso, 0, len(records))
	for _, r := range records {
		code := r.Field(PisoSchema, "code")
		if code == "" {
			continue
		}
		out = append(out, entity.Piso{
			BuildingCode: buildingCode,
			Code:         code,
			Description:  r.Field(PisoSchema, "description"),
		})
	}
	return out
}

func RecordsToDias(records []Record) []entity.Dia {
	out := make([]entity.Dia, 0, len(records))
	for _, r := range records {
		code := r.Field(DiaSchema, "code")
		if code == "" {
			continue
		}
		out = append(out, entity.Dia{
			Code: code,
			Name: r.Field(DiaSchema, "name"),
		})
	}
	return out
}

func RecordToEspecialidad(r Record) (entity.Especialidad, bool) {
	id := r.Field(EspecialidadSchema, "id")
	if id == "" {
		return entity.Especialidad{}, false
	}
	description := r.Field(EspecialidadSchema, "description")
	return entity.Especialidad{
		ID:          id,
		Description: description,
		Slug:        normalize.Slugify(description),
		Floor:       r.Field(EspecialidadSchema, "floor"),
		Icon:        r.Field(EspecialidadSchema, "icon"),
	}, true
}

func RecordsToEspecialidades(records []Record) []entity.Especialidad {
	out := make([]entity.Especialidad, 0, len(records))
	for _, r := range records {
		if e, ok := RecordToEspecialidad(r); ok {
			out = append(out, e)
		}
	}
	return out
}
