package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"hospital-kiosk/internal/domain/entity"
	"hospital-kiosk/internal/domain/repository"
	"hospital-kiosk/internal/normalize"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProviderCodeRequired = errors.New("provider code is required")
)

// floorFetchLimit bounds the per-building floor catalog fan-out.
const floorFetchLimit = 4

type ScheduleUsecase interface {
	GetDetailedSchedulesByDoctor(ctx context.Context, providerCode string, specialtyIDs []string) (*entity.DetailedScheduleResult, error)
	GetWeeklySchedule(ctx context.Context, providerCode string, specialtyIDs []string) (*entity.WeeklySchedule, error)
}

type scheduleUsecase struct {
	log         *logrus.Logger
	agendaRepo  repository.AgendaRepository
	doctorRepo  repository.DoctorRepository
	catalogRepo repository.CatalogRepository
}

func NewScheduleUsecase(
	log *logrus.Logger,
	agendaRepo repository.AgendaRepository,
	doctorRepo repository.DoctorRepository,
	catalogRepo repository.CatalogRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:         log,
		agendaRepo:  agendaRepo,
		doctorRepo:  doctorRepo,
		catalogRepo: catalogRepo,
	}
}

type floorKey struct {
	building string
	floor    string
}

// GetDetailedSchedulesByDoctor joins a doctor's agenda with the room, building,
// floor, day and specialty catalogs. Upstream failures do not abort the join:
// they turn Success off and the first one becomes Message. The only errors
// returned are a missing provider code and the caller's own cancellation.
func (u *scheduleUsecase) GetDetailedSchedulesByDoctor(ctx context.Context, providerCode string, specialtyIDs []string) (*entity.DetailedScheduleResult, error) {
	providerCode = strings.TrimSpace(providerCode)
	if providerCode == "" {
		return nil, ErrProviderCodeRequired
	}

	var (
		agendas   []entity.Agenda
		doctors   []entity.Doctor
		rooms     []entity.Consultorio
		buildings []entity.Edificio
		days      []entity.Dia
		errs      [5]error
	)

	var g errgroup.Group
	g.Go(func() error {
		agendas, errs[0] = u.fetchAgendas(ctx, providerCode)
		return nil
	})
	g.Go(func() error {
		doctors, errs[1] = u.doctorRepo.FindAll(ctx)
		return nil
	})
	g.Go(func() error {
		rooms, errs[2] = u.catalogRepo.FindConsultorios(ctx)
		return nil
	})
	g.Go(func() error {
		buildings, errs[3] = u.catalogRepo.FindEdificios(ctx)
		return nil
	})
	g.Go(func() error {
		days, errs[4] = u.catalogRepo.FindDias(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &entity.DetailedScheduleResult{Success: true, Schedules: []entity.DetailedSchedule{}}
	sources := [5]string{"agenda", "doctors", "rooms", "buildings", "days"}
	for i, err := range errs {
		if err == nil {
			continue
		}
		u.log.Warnf("Failed to fetch %s for provider %s: %+v", sources[i], providerCode, err)
		if result.Success {
			result.Message = err.Error()
		}
		result.Success = false
	}

	roomsByCode := make(map[string]entity.Consultorio, len(rooms))
	for _, room := range rooms {
		if _, ok := roomsByCode[room.Code]; !ok {
			roomsByCode[room.Code] = room
		}
	}
	buildingsByCode := make(map[string]entity.Edificio, len(buildings))
	for _, b := range buildings {
		if _, ok := buildingsByCode[b.Code]; !ok {
			buildingsByCode[b.Code] = b
		}
	}
	daysByCode := make(map[string]entity.Dia, len(days))
	for _, d := range days {
		if _, ok := daysByCode[d.Code]; !ok {
			daysByCode[d.Code] = d
		}
	}
	doctorsByAlias := indexDoctors(doctors)

	floors := u.loadFloors(ctx, rooms)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := specialtySet(specialtyIDs)
	doctor := doctorsByAlias[providerCode]

	for _, slot := range agendas {
		if len(filter) > 0 {
			if _, ok := filter[slot.ItemCode]; !ok {
				continue
			}
		}
		if slot.ProviderCode != providerCode {
			u.log.Debugf("Dropping agenda slot of provider %q from schedule of %q", slot.ProviderCode, providerCode)
			continue
		}

		result.Schedules = append(result.Schedules, buildDetailedSchedule(slot, doctor, filter, roomsByCode, buildingsByCode, daysByCode, floors))
	}

	return result, nil
}

func (u *scheduleUsecase) GetWeeklySchedule(ctx context.Context, providerCode string, specialtyIDs []string) (*entity.WeeklySchedule, error) {
	result, err := u.GetDetailedSchedulesByDoctor(ctx, providerCode, specialtyIDs)
	if err != nil {
		return nil, err
	}
	return BuildWeeklySchedule(strings.TrimSpace(providerCode), result), nil
}

// fetchAgendas asks with codigo_prestador first and, when that yields nothing,
// once more with cd_prestador. The first non-empty answer is used as is.
func (u *scheduleUsecase) fetchAgendas(ctx context.Context, providerCode string) ([]entity.Agenda, error) {
	agendas, err := u.agendaRepo.FindByProvider(ctx, providerCode, repository.ProviderParamCodigo)
	if err == nil && len(agendas) > 0 {
		return agendas, nil
	}
	if err != nil {
		u.log.Debugf("Agenda lookup by %s failed for %s, retrying: %+v", repository.ProviderParamCodigo, providerCode, err)
	}
	return u.agendaRepo.FindByProvider(ctx, providerCode, repository.ProviderParamCd)
}

func (u *scheduleUsecase) loadFloors(ctx context.Context, rooms []entity.Consultorio) map[floorKey]string {
	var codes []string
	seen := map[string]struct{}{}
	for _, room := range rooms {
		if room.BuildingCode == "" {
			continue
		}
		if _, ok := seen[room.BuildingCode]; ok {
			continue
		}
		seen[room.BuildingCode] = struct{}{}
		codes = append(codes, room.BuildingCode)
	}

	var (
		mu     sync.Mutex
		floors = make(map[floorKey]string)
		g      errgroup.Group
	)
	g.SetLimit(floorFetchLimit)
	for _, code := range codes {
		g.Go(func() error {
			pisos, err := u.catalogRepo.FindPisosByEdificio(ctx, code)
			if err != nil {
				u.log.Warnf("Failed to fetch floors of building %s: %+v", code, err)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, p := range pisos {
				key := floorKey{building: code, floor: p.Code}
				if _, ok := floors[key]; !ok && p.Description != "" {
					floors[key] = p.Description
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return floors
}

func indexDoctors(doctors []entity.Doctor) map[string]*entity.Doctor {
	byAlias := make(map[string]*entity.Doctor, len(doctors))
	for i := range doctors {
		for _, alias := range doctors[i].Aliases {
			if _, taken := byAlias[alias]; !taken {
				byAlias[alias] = &doctors[i]
			}
		}
	}
	return byAlias
}

func specialtySet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		for _, part := range strings.Split(id, ",") {
			if part = strings.TrimSpace(part); part != "" {
				set[part] = struct{}{}
			}
		}
	}
	return set
}

func buildDetailedSchedule(
	slot entity.Agenda,
	doctor *entity.Doctor,
	filter map[string]struct{},
	rooms map[string]entity.Consultorio,
	buildings map[string]entity.Edificio,
	days map[string]entity.Dia,
	floors map[floorKey]string,
) entity.DetailedSchedule {
	room := rooms[slot.RoomCode]
	visitText := normalize.DecodeTipo(slot.VisitTypeCode)

	dayName := days[slot.DayCode].Name
	if dayName == "" {
		dayName = slot.DayCode
	}

	ds := entity.DetailedSchedule{
		ProviderCode:     slot.ProviderCode,
		DayCode:          slot.DayCode,
		DayName:          dayName,
		DayKey:           normalize.NormalizeDayKey(dayName),
		StartTimeRaw:     slot.StartTime,
		EndTimeRaw:       slot.EndTime,
		StartTime:        normalize.ToHHmm(slot.StartTime),
		EndTime:          normalize.ToHHmm(slot.EndTime),
		RoomCode:         slot.RoomCode,
		RoomDescription:  room.Description,
		BuildingCode:     room.BuildingCode,
		BuildingName:     buildings[room.BuildingCode].Description,
		BuildingLabel:    normalize.BuildingDisplayName(room.BuildingCode),
		FloorCode:        room.FloorCode,
		FloorDescription: floorText(room, floors),
		VisitTypeCode:    slot.VisitTypeCode,
		VisitTypeText:    visitText,
		IsProcedure:      normalize.IsProcedure(visitText),
		ItemCode:         slot.ItemCode,
		Raw:              slot.Raw,
	}

	if doctor != nil {
		ds.DoctorName = doctor.Name
		if s, ok := specialtyFor(doctor, slot.ItemCode, filter); ok {
			ds.SpecialtyID = s.ID
			ds.SpecialtyLabel = s.Label
		}
	}
	return ds
}

// floorText resolves the floor label: building floor catalog, then the room's
// floor description, then its alternate raw field, then "Piso {code}".
func floorText(room entity.Consultorio, floors map[floorKey]string) string {
	if text := floors[floorKey{building: room.BuildingCode, floor: room.FloorCode}]; text != "" {
		return text
	}
	if room.FloorDescription != "" {
		return room.FloorDescription
	}
	if room.FloorDescriptionAlt != "" {
		return room.FloorDescriptionAlt
	}
	if room.FloorCode != "" {
		return "Piso " + room.FloorCode
	}
	return ""
}

// specialtyFor picks the label for a slot: the doctor's specialty matching the
// slot's item code within the active filter, then the match regardless of the
// filter, then the doctor's first specialty.
func specialtyFor(doctor *entity.Doctor, itemCode string, filter map[string]struct{}) (entity.DoctorSpecialty, bool) {
	if len(filter) > 0 {
		if _, inFilter := filter[itemCode]; inFilter {
			if s, ok := doctor.SpecialtyByID(itemCode); ok {
				return s, true
			}
		}
	}
	if s, ok := doctor.SpecialtyByID(itemCode); ok {
		return s, true
	}
	return doctor.FirstSpecialty()
}

// BuildWeeklySchedule buckets schedules by canonical weekday, Monday first.
// Slots whose day does not normalize to a weekday are left out.
func BuildWeeklySchedule(providerCode string, result *entity.DetailedScheduleResult) *entity.WeeklySchedule {
	week := &entity.WeeklySchedule{
		ProviderCode: providerCode,
		Days:         []entity.ScheduleDay{},
		Success:      result.Success,
		Message:      result.Message,
	}

	buckets := make(map[string]*entity.ScheduleDay)
	for _, s := range result.Schedules {
		if week.DoctorName == "" {
			week.DoctorName = s.DoctorName
		}
		if !normalize.IsCanonicalDay(s.DayKey) {
			continue
		}
		day, ok := buckets[s.DayKey]
		if !ok {
			day = &entity.ScheduleDay{
				DayKey:         s.DayKey,
				DayName:        s.DayName,
				Consultas:      []entity.DetailedSchedule{},
				Procedimientos: []entity.DetailedSchedule{},
			}
			buckets[s.DayKey] = day
		}
		if s.IsProcedure {
			day.Procedimientos = append(day.Procedimientos, s)
		} else {
			day.Consultas = append(day.Consultas, s)
		}
	}

	for _, key := range normalize.DayOrder {
		day, ok := buckets[key]
		if !ok {
			continue
		}
		sortByStart(day.Consultas)
		sortByStart(day.Procedimientos)
		week.Days = append(week.Days, *day)
	}
	return week
}

func sortByStart(list []entity.DetailedSchedule) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartTime < list[j].StartTime
	})
}
