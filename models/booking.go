package models

import "time"

// BookingRequest is the validated input to the booking coordinator.
// It is transient: either committed as an Appointment or rejected,
// never partially persisted.
type BookingRequest struct {
	ProviderID  string
	ServiceID   string
	ScheduledAt time.Time
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
}

// BookingInput is the wire shape of a public booking submission.
type BookingInput struct {
	ProviderID  string `json:"providerId" binding:"required"`
	ServiceID   string `json:"serviceId" binding:"required"`
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail" binding:"required"`
	ClientPhone string `json:"clientPhone"`
	ScheduledAt string `json:"scheduledAt" binding:"required"` // ISO timestamp
	ClientNotes string `json:"clientNotes"`
}

// BookingConfirmation is the minimal confirmation returned on success.
type BookingConfirmation struct {
	ID              string    `json:"id"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	ServiceName     string    `json:"serviceName"`
}
