package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// OccupyingStatuses are the statuses that block a time range for
// conflict purposes.
var OccupyingStatuses = []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress}

// Valid reports whether s is a known status value.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Occupying reports whether an appointment in this status blocks its
// time range.
func (s AppointmentStatus) Occupying() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// Appointment is a committed booking record.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	ProviderID      string            `bson:"providerId" json:"providerId"`
	ServiceID       string            `bson:"serviceId" json:"serviceId"`
	ScheduledAt     time.Time         `bson:"scheduledAt" json:"scheduledAt"` // absolute, UTC
	DurationMinutes int               `bson:"durationMinutes" json:"durationMinutes"`
	EndAt           time.Time         `bson:"endAt" json:"endAt"` // scheduledAt + duration, persisted for range queries
	Status          AppointmentStatus `bson:"status" json:"status"`
	ClientName      string            `bson:"clientName" json:"clientName"`
	ClientEmail     string            `bson:"clientEmail" json:"clientEmail"`
	ClientPhone     string            `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt" json:"createdAt"`
}
