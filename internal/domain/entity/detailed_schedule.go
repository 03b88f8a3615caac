package entity

// DetailedSchedule is the materialized join of an Agenda slot with its room,
// building, floor, day and specialty. Raw fields are kept next to the derived
// ones so the kiosk can show either.
type DetailedSchedule struct {
	ProviderCode string `json:"provider_code"`
	DoctorName   string `json:"doctor_name,omitempty"`

	DayCode string `json:"day_code"`
	DayName string `json:"day_name,omitempty"`
	DayKey  string `json:"day_key"`

	StartTimeRaw string `json:"start_time_raw"`
	EndTimeRaw   string `json:"end_time_raw"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`

	RoomCode         string `json:"room_code"`
	RoomDescription  string `json:"room_description,omitempty"`
	BuildingCode     string `json:"building_code,omitempty"`
	BuildingName     string `json:"building_name"`
	BuildingLabel    string `json:"building_label"`
	FloorCode        string `json:"floor_code,omitempty"`
	FloorDescription string `json:"floor_description,omitempty"`

	VisitTypeCode string `json:"visit_type_code"`
	VisitTypeText string `json:"visit_type_text"`
	IsProcedure   bool   `json:"is_procedure"`

	ItemCode       string `json:"item_code"`
	SpecialtyID    string `json:"specialty_id,omitempty"`
	SpecialtyLabel string `json:"specialty_label,omitempty"`

	Raw map[string]any `json:"raw,omitempty"`
}

// DetailedScheduleResult is the orchestrator outcome. Success is false when any
// upstream call failed; Message then carries the first failure.
type DetailedScheduleResult struct {
	Schedules []DetailedSchedule
	Success   bool
	Message   string
}

// ScheduleDay groups the slots of one canonical weekday.
type ScheduleDay struct {
	DayKey         string             `json:"day_key"`
	DayName        string             `json:"day_name"`
	Consultas      []DetailedSchedule `json:"consultas"`
	Procedimientos []DetailedSchedule `json:"procedimientos"`
}

// WeeklySchedule is the per-doctor view the kiosk renders.
type WeeklySchedule struct {
	ProviderCode string        `json:"provider_code"`
	DoctorName   string        `json:"doctor_name,omitempty"`
	Days         []ScheduleDay `json:"days"`
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
}
