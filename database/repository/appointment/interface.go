package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"slotbook/models"
)

// ErrConflict is returned when a commit would produce two occupying
// appointments overlapping in time for the same provider.
var ErrConflict = errors.New("overlapping occupying appointment exists")

// ErrNotFound is returned when the referenced appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines data access for appointments.
type AppointmentRepository interface {
	// GetByID returns ErrNotFound when the appointment does not exist.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListOccupyingInRange returns occupying appointments overlapping
	// [from, to), ordered by start.
	ListOccupyingInRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Appointment, error)
	// ListByProviderDay returns all appointments (any status) starting
	// within [dayStart, dayEnd).
	ListByProviderDay(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	// BookTransactionally re-checks conflicts and inserts the
	// appointment as one atomic decision. Returns ErrConflict when the
	// slot is already occupied, including when this call loses a
	// commit race.
	BookTransactionally(ctx context.Context, appt *models.Appointment) error
	EnsureIndexes() error
}
