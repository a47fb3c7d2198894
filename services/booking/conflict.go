package booking

import (
	"context"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
)

// DefaultConflictGuard checks a candidate window against occupying
// appointments fetched for the candidate's calendar day.
type DefaultConflictGuard struct {
	Appointments appointmentRepo.AppointmentRepository
}

func (g *DefaultConflictGuard) HasConflict(ctx context.Context, providerID string, start time.Time, durationMinutes int, excludeID string) (bool, error) {
	candidate := Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}

	// Bound the query to at least the candidate's calendar day; widen
	// when the candidate runs past midnight.
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	if candidate.End.After(to) {
		to = candidate.End
	}

	appts, err := g.Appointments.ListOccupyingInRange(ctx, providerID, from, to)
	if err != nil {
		return false, err
	}
	for _, a := range appts {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		existing := Interval{
			Start: a.ScheduledAt,
			End:   a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute),
		}
		if Overlaps(candidate, existing) {
			return true, nil
		}
	}
	return false, nil
}
