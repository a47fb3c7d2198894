package booking

import (
	"context"
	"time"

	"slotbook/models"
)

// AvailabilityEngine derives bookable slot starts for a provider on a
// given calendar date. Its output is advisory: the coordinator
// re-validates before commit.
type AvailabilityEngine interface {
	Resolve(ctx context.Context, providerID string, date time.Time, serviceID string) ([]time.Time, error)
}

// ConflictGuard decides whether a candidate window overlaps an
// existing occupying appointment.
type ConflictGuard interface {
	// excludeID, when non-empty, skips the appointment being moved in
	// a reschedule flow.
	HasConflict(ctx context.Context, providerID string, start time.Time, durationMinutes int, excludeID string) (bool, error)
}

// Coordinator validates a booking request end-to-end and commits it
// atomically, returning a definitive accept or reject.
type Coordinator interface {
	Submit(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}
