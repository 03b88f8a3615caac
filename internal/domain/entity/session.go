package entity

import "time"

// DoctorListCacheEntry is what the kiosk session keeps for the doctor list.
type DoctorListCacheEntry struct {
	Doctors   []Doctor  `json:"doctors"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

type SpecialtyListCacheEntry struct {
	Specialties []Especialidad `json:"specialties"`
	Timestamp   time.Time      `json:"timestamp"`
	SessionID   string         `json:"session_id"`
}
