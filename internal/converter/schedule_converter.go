package converter

import (
	"hospital-kiosk/internal/delivery/dto"
	"hospital-kiosk/internal/domain/entity"
)

func RecordsToAgendas(records []Record) []entity.Agenda {
	out := make([]entity.Agenda, 0, len(records))
	for _, r := range records {
		out = append(out, entity.Agenda{
			ProviderCode:  r.Field(AgendaSchema, "provider"),
			DayCode:       r.Field(AgendaSchema, "day"),
			StartTime:     r.Field(AgendaSchema, "start"),
			EndTime:       r.Field(AgendaSchema, "end"),
			RoomCode:      r.Field(AgendaSchema, "room"),
			VisitTypeCode: r.Field(AgendaSchema, "visitType"),
			ItemCode:      r.Field(AgendaSchema, "item"),
			Raw:           r,
		})
	}
	return out
}

// DetailedSchedulesToResponse wraps orchestrator output for the kiosk.
func DetailedSchedulesToResponse(result *entity.DetailedScheduleResult) *dto.DetailedScheduleListResponse {
	if result == nil {
		return &dto.DetailedScheduleListResponse{Schedules: []entity.DetailedSchedule{}}
	}
	schedules := result.Schedules
	if schedules == nil {
		schedules = []entity.DetailedSchedule{}
	}
	return &dto.DetailedScheduleListResponse{
		Schedules: schedules,
		Total:     len(schedules),
		Complete:  result.Success,
		Warning:   result.Message,
	}
}
