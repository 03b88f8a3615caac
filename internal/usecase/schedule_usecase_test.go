package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-kiosk/internal/domain/entity"
	"hospital-kiosk/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	agendas  *fakeAgendaRepo
	doctors  *fakeDoctorRepo
	catalogs *fakeCatalogRepo
	usecase  ScheduleUsecase
}

func newScheduleFixture() *scheduleFixture {
	f := &scheduleFixture{
		agendas: &fakeAgendaRepo{byKey: map[string][]entity.Agenda{}, errs: map[string]error{}},
		doctors: &fakeDoctorRepo{doctors: []entity.Doctor{{
			ID:      "100",
			Aliases: []string{"100", "D100"},
			Name:    "Dra. Ana Mora",
			Specialties: []entity.DoctorSpecialty{
				{ID: "10", Label: "Cardiología"},
				{ID: "20", Label: "Pediatría"},
			},
		}}},
		catalogs: &fakeCatalogRepo{
			rooms: []entity.Consultorio{
				{Code: "C1", Description: "Consultorio 1", BuildingCode: "1", FloorCode: "2", FloorDescription: "Segundo"},
			},
			buildings: []entity.Edificio{{Code: "1", Description: "Edificio Principal"}},
			days:      []entity.Dia{{Code: "1", Name: "Lunes"}, {Code: "3", Name: "Miércoles"}},
			floors: map[string][]entity.Piso{
				"1": {{BuildingCode: "1", Code: "2", Description: "Piso 2 - Consulta Externa"}},
			},
		},
	}
	f.usecase = NewScheduleUsecase(quietLogger(), f.agendas, f.doctors, f.catalogs)
	return f
}

func (f *scheduleFixture) setAgenda(param string, slots ...entity.Agenda) {
	f.agendas.byKey[param+"=100"] = slots
}

func slot(day, start, end, room, tipo, item string) entity.Agenda {
	return entity.Agenda{
		ProviderCode:  "100",
		DayCode:       day,
		StartTime:     start,
		EndTime:       end,
		RoomCode:      room,
		VisitTypeCode: tipo,
		ItemCode:      item,
	}
}

func TestGetDetailedSchedulesByDoctor_JoinsCatalogs(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "8:00", "12:30:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), " 100 ", nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Empty(t, res.Message)
	require.Len(t, res.Schedules, 1)

	s := res.Schedules[0]
	assert.Equal(t, "Dra. Ana Mora", s.DoctorName)
	assert.Equal(t, "Lunes", s.DayName)
	assert.Equal(t, "monday", s.DayKey)
	assert.Equal(t, "08:00", s.StartTime)
	assert.Equal(t, "12:30", s.EndTime)
	assert.Equal(t, "8:00", s.StartTimeRaw)
	assert.Equal(t, "Consultorio 1", s.RoomDescription)
	assert.Equal(t, "Edificio Principal", s.BuildingName)
	assert.Equal(t, "Principal", s.BuildingLabel)
	assert.Equal(t, "Piso 2 - Consulta Externa", s.FloorDescription)
	assert.Equal(t, "Consulta", s.VisitTypeText)
	assert.False(t, s.IsProcedure)
	assert.Equal(t, "10", s.SpecialtyID)
	assert.Equal(t, "Cardiología", s.SpecialtyLabel)
}

func TestGetDetailedSchedulesByDoctor_EmptyProviderCode(t *testing.T) {
	f := newScheduleFixture()

	_, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "  ", nil)
	assert.ErrorIs(t, err, ErrProviderCodeRequired)
	assert.Empty(t, f.agendas.calls)
}

func TestGetDetailedSchedulesByDoctor_DropsOtherProvidersSlots(t *testing.T) {
	f := newScheduleFixture()
	foreign := slot("1", "14:00", "16:00", "C1", "C", "10")
	foreign.ProviderCode = "200"
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"), foreign)

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "100", res.Schedules[0].ProviderCode)
}

func TestGetDetailedSchedulesByDoctor_FallsBackToAlternateProviderParam(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCd, slot("1", "08:00", "10:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	assert.Len(t, res.Schedules, 1)
	assert.Equal(t, []string{"codigo_prestador=100", "cd_prestador=100"}, f.agendas.calls)
}

func TestGetDetailedSchedulesByDoctor_FirstNonEmptyAgendaWins(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"))
	f.setAgenda(repository.ProviderParamCd,
		slot("3", "08:00", "10:00", "C1", "C", "10"),
		slot("3", "10:00", "12:00", "C1", "C", "10"),
	)

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "1", res.Schedules[0].DayCode)
	assert.Equal(t, []string{"codigo_prestador=100"}, f.agendas.calls)
}

func TestGetDetailedSchedulesByDoctor_SpecialtyFilter(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo,
		slot("1", "08:00", "10:00", "C1", "C", "10"),
		slot("1", "10:00", "12:00", "C1", "C", "20"),
	)

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", []string{" 20 "})
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "20", res.Schedules[0].ItemCode)
	assert.Equal(t, "Pediatría", res.Schedules[0].SpecialtyLabel)
}

func TestGetDetailedSchedulesByDoctor_SpecialtyLabelFallsBackToFirst(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "99"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "10", res.Schedules[0].SpecialtyID)
	assert.Equal(t, "Cardiología", res.Schedules[0].SpecialtyLabel)
}

func TestGetDetailedSchedulesByDoctor_NoLabelWithoutDoctorSpecialties(t *testing.T) {
	f := newScheduleFixture()
	f.doctors.doctors[0].Specialties = nil
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", []string{"10"})
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Empty(t, res.Schedules[0].SpecialtyLabel)
	assert.Empty(t, res.Schedules[0].SpecialtyID)
	assert.Equal(t, "Dra. Ana Mora", res.Schedules[0].DoctorName)
}

func TestGetDetailedSchedulesByDoctor_ResolvesDoctorByAlias(t *testing.T) {
	f := newScheduleFixture()
	s := slot("1", "08:00", "10:00", "C1", "C", "10")
	s.ProviderCode = "D100"
	f.agendas.byKey["codigo_prestador=D100"] = []entity.Agenda{s}

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "D100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "Dra. Ana Mora", res.Schedules[0].DoctorName)
}

func TestGetDetailedSchedulesByDoctor_FloorFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		room     entity.Consultorio
		floors   map[string][]entity.Piso
		expected string
	}{
		{
			name:     "building floor catalog",
			room:     entity.Consultorio{Code: "C9", BuildingCode: "1", FloorCode: "2", FloorDescription: "Segundo"},
			floors:   map[string][]entity.Piso{"1": {{Code: "2", Description: "Piso 2 - Consulta Externa"}}},
			expected: "Piso 2 - Consulta Externa",
		},
		{
			name:     "room floor description",
			room:     entity.Consultorio{Code: "C9", BuildingCode: "1", FloorCode: "3", FloorDescription: "Tercero", FloorDescriptionAlt: "3er piso"},
			floors:   map[string][]entity.Piso{"1": {{Code: "2", Description: "Piso 2"}}},
			expected: "Tercero",
		},
		{
			name:     "room alternate floor field",
			room:     entity.Consultorio{Code: "C9", BuildingCode: "1", FloorCode: "3", FloorDescriptionAlt: "3er piso"},
			expected: "3er piso",
		},
		{
			name:     "floor code only",
			room:     entity.Consultorio{Code: "C9", BuildingCode: "1", FloorCode: "4"},
			expected: "Piso 4",
		},
		{
			name:     "nothing known",
			room:     entity.Consultorio{Code: "C9", BuildingCode: "1"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture()
			f.catalogs.rooms = []entity.Consultorio{tt.room}
			f.catalogs.floors = tt.floors
			f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C9", "C", "10"))

			res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
			require.NoError(t, err)
			require.Len(t, res.Schedules, 1)
			assert.Equal(t, tt.expected, res.Schedules[0].FloorDescription)
		})
	}
}

func TestGetDetailedSchedulesByDoctor_FloorFetchFailureIsNotFatal(t *testing.T) {
	f := newScheduleFixture()
	f.catalogs.floorErrs = map[string]error{"1": errUpstream}
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Schedules, 1)
	assert.Equal(t, "Segundo", res.Schedules[0].FloorDescription)
}

func TestGetDetailedSchedulesByDoctor_UnknownBuildingLeavesNameBlank(t *testing.T) {
	f := newScheduleFixture()
	f.catalogs.rooms = []entity.Consultorio{{Code: "T1", BuildingCode: "2", FloorCode: "5"}}
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "T1", "P", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)

	s := res.Schedules[0]
	assert.Empty(t, s.BuildingName)
	assert.Equal(t, "Torre Bless", s.BuildingLabel)
	assert.Equal(t, "Procedimiento", s.VisitTypeText)
	assert.True(t, s.IsProcedure)
}

func TestGetDetailedSchedulesByDoctor_UnknownRoomAndDay(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo, slot("Sábado", "0800", "1000", "X9", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	require.Len(t, res.Schedules, 1)

	s := res.Schedules[0]
	assert.Equal(t, "Sábado", s.DayName)
	assert.Equal(t, "saturday", s.DayKey)
	assert.Equal(t, "08:00", s.StartTime)
	assert.Empty(t, s.RoomDescription)
	assert.Equal(t, "No especificado", s.BuildingLabel)
}

func TestGetDetailedSchedulesByDoctor_PartialFailure(t *testing.T) {
	f := newScheduleFixture()
	f.catalogs.roomsErr = errors.New("HTTP 500: Internal Server Error")
	f.catalogs.daysErr = errUpstream
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "HTTP 500: Internal Server Error", res.Message)
	require.Len(t, res.Schedules, 1)
	assert.Empty(t, res.Schedules[0].RoomDescription)
	assert.Equal(t, "1", res.Schedules[0].DayName)
}

func TestGetDetailedSchedulesByDoctor_AgendaFailureReported(t *testing.T) {
	f := newScheduleFixture()
	f.agendas.errs["codigo_prestador=100"] = errors.New("first")
	f.agendas.errs["cd_prestador=100"] = errUpstream
	f.doctors.err = errors.New("doctors down")

	res, err := f.usecase.GetDetailedSchedulesByDoctor(context.Background(), "100", nil)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, errUpstream.Error(), res.Message)
	assert.Empty(t, res.Schedules)
	assert.NotNil(t, res.Schedules)
}

func TestGetDetailedSchedulesByDoctor_CanceledContext(t *testing.T) {
	f := newScheduleFixture()
	ctx, cancel := context.WithCancel(context.Background())
	f.agendas.onCall = func(context.Context) { cancel() }
	f.setAgenda(repository.ProviderParamCodigo, slot("1", "08:00", "10:00", "C1", "C", "10"))

	res, err := f.usecase.GetDetailedSchedulesByDoctor(ctx, "100", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestGetWeeklySchedule_BucketsByWeekday(t *testing.T) {
	f := newScheduleFixture()
	f.setAgenda(repository.ProviderParamCodigo,
		slot("3", "14:00", "16:00", "C1", "P", "10"),
		slot("1", "10:00", "12:00", "C1", "C", "10"),
		slot("1", "08:00", "10:00", "C1", "C", "10"),
		slot("3", "08:00", "09:00", "C1", "C", "10"),
		slot("9", "08:00", "09:00", "C1", "C", "10"),
	)

	week, err := f.usecase.GetWeeklySchedule(context.Background(), "100", nil)
	require.NoError(t, err)
	assert.True(t, week.Success)
	assert.Equal(t, "100", week.ProviderCode)
	assert.Equal(t, "Dra. Ana Mora", week.DoctorName)
	require.Len(t, week.Days, 2)

	monday := week.Days[0]
	assert.Equal(t, "monday", monday.DayKey)
	assert.Equal(t, "Lunes", monday.DayName)
	require.Len(t, monday.Consultas, 2)
	assert.Equal(t, "08:00", monday.Consultas[0].StartTime)
	assert.Equal(t, "10:00", monday.Consultas[1].StartTime)
	assert.Empty(t, monday.Procedimientos)

	wednesday := week.Days[1]
	assert.Equal(t, "wednesday", wednesday.DayKey)
	assert.Len(t, wednesday.Consultas, 1)
	require.Len(t, wednesday.Procedimientos, 1)
	assert.Equal(t, "14:00", wednesday.Procedimientos[0].StartTime)
}

func TestBuildWeeklySchedule_CarriesFailure(t *testing.T) {
	week := BuildWeeklySchedule("100", &entity.DetailedScheduleResult{Success: false, Message: "Request timeout"})

	assert.False(t, week.Success)
	assert.Equal(t, "Request timeout", week.Message)
	assert.Empty(t, week.Days)
}
