package converter

// Mapping tables from canonical field names to the keys the hospital backend
// has used across its versions. Keys are tried in order; the first non-empty
// value wins.

var DoctorSchema = Schema{
	"id":          {"codigoPrestador", "codigo_prestador", "cd_prestador", "prestadorId", "medicoId", "codigo", "id"},
	"name":        {"nombrePrestador", "nombre_prestador", "nombre", "nombres", "name", "descripcion"},
	"photo":       {"foto", "fotoUrl", "foto_url", "photo", "photoUrl", "imagen"},
	"specialties": {"especialidades", "specialties"},
	// Flat specialty fields used when the record has no specialty list.
	"specialtyId":    {"especialidadId", "codigo_especialidad", "cd_especialidad", "codigoEspecialidad"},
	"specialtyLabel": {"especialidad", "descripcion_especialidad", "des_especialidad", "nombreEspecialidad"},
}

var DoctorSpecialtySchema = Schema{
	"id":    {"especialidadId", "codigo_especialidad", "cd_especialidad", "codigoEspecialidad", "codigo_item_agendamiento", "id", "codigo"},
	"label": {"descripcion", "nombre", "especialidad", "descripcion_especialidad", "des_especialidad", "label"},
}

var AgendaSchema = Schema{
	"provider":  {"codigo_prestador", "cd_prestador", "codigoPrestador", "prestadorId", "medicoId"},
	"day":       {"codigo_dia", "cd_dia", "dia", "codigoDia", "day"},
	"start":     {"hora_inicio", "horaInicio", "hora_desde", "inicio", "start"},
	"end":       {"hora_fin", "horaFin", "hora_hasta", "fin", "end"},
	"room":      {"codigo_consultorio", "cd_consultorio", "consultorio", "codigoConsultorio", "consultorioId"},
	"visitType": {"tipo", "tipo_agenda", "tipoAgenda", "cd_tipo", "tipo_consulta"},
	"item":      {"codigo_item_agendamiento", "cd_item_agendamiento", "itemAgendamiento", "item_agendamiento", "codigoItemAgendamiento"},
}

var ConsultorioSchema = Schema{
	"code":         {"codigo_consultorio", "cd_consultorio", "codigoConsultorio", "consultorioId", "consultorio", "codigo", "id"},
	"description":  {"descripcion_consultorio", "des_consultorio", "descripcion", "nombre"},
	"building":     {"codigo_edificio", "cd_edificio", "codigoEdificio", "edificio"},
	"floor":        {"codigo_piso", "cd_piso", "codigoPiso", "piso"},
	"floorDesc":    {"descripcion_piso", "descripcionPiso"},
	"floorDescAlt": {"des_piso", "piso_descripcion", "nombre_piso"},
}

var EdificioSchema = Schema{
	"code":        {"codigo_edificio", "cd_edificio", "codigoEdificio", "codigo", "id"},
	"description": {"descripcion_edificio", "des_edificio", "descripcion", "nombre"},
}

var PisoSchema = Schema{
	"code":        {"codigo_piso", "cd_piso", "codigoPiso", "codigo", "id"},
	"description": {"descripcion_piso", "des_piso", "descripcion", "nombre"},
}

var DiaSchema = Schema{
	"code": {"codigo_dia", "cd_dia", "codigoDia", "codigo", "id"},
	"name": {"descripcion_dia", "des_dia", "nombre_dia", "descripcion", "nombre"},
}

var EspecialidadSchema = Schema{
	"id":          {"especialidadId", "codigo_especialidad", "cd_especialidad", "codigoEspecialidad", "codigo_item_agendamiento", "id", "codigo"},
	"description": {"descripcion", "nombre", "especialidad", "descripcion_especialidad"},
	"floor":       {"piso", "descripcion_piso", "ubicacion"},
	"icon":        {"icono", "icon", "imagen"},
}
