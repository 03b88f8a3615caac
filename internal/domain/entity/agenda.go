package entity

// Agenda is one scheduled slot of a doctor: a weekday, a time window, a room
// and a visit type. ItemCode is the "item de agendamiento" code, which the
// backend also uses as the specialty selector key.
type Agenda struct {
	ProviderCode  string         `json:"provider_code"`
	DayCode       string         `json:"day_code"`
	StartTime     string         `json:"start_time"`
	EndTime       string         `json:"end_time"`
	RoomCode      string         `json:"room_code"`
	VisitTypeCode string         `json:"visit_type_code"`
	ItemCode      string         `json:"item_code"`
	Raw           map[string]any `json:"-"`
}
