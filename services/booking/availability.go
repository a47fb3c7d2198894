package booking

import (
	"context"
	"sort"
	"time"

	availabilityRepo "slotbook/database/repository/availability"
	appointmentRepo "slotbook/database/repository/appointment"
	providerRepo "slotbook/database/repository/provider"
	serviceRepo "slotbook/database/repository/service"
	"slotbook/utils"

	"go.uber.org/zap"
)

// SlotStep is the fixed quantization step for bookable slot starts.
const SlotStep = 30 * time.Minute

// DefaultAvailabilityEngine resolves bookable slots from weekly rules,
// service duration and committed appointments.
type DefaultAvailabilityEngine struct {
	Providers    providerRepo.ProviderRepository
	Services     serviceRepo.ServiceRepository
	Rules        availabilityRepo.AvailabilityRuleRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (e *DefaultAvailabilityEngine) Resolve(ctx context.Context, providerID string, date time.Time, serviceID string) ([]time.Time, error) {
	logger := utils.GetLogger()

	provider, err := e.Providers.GetByID(ctx, providerID)
	if err != nil {
		logger.Error("resolve: provider lookup failed", zap.String("providerID", providerID), zap.Error(err))
		return nil, ErrInternal
	}
	if provider == nil {
		return nil, NewNotFoundError("provider not found")
	}

	svc, err := e.Services.GetByID(ctx, serviceID)
	if err != nil {
		logger.Error("resolve: service lookup failed", zap.String("serviceID", serviceID), zap.Error(err))
		return nil, ErrInternal
	}
	if svc == nil || !svc.Active || svc.ProviderID != providerID {
		return nil, NewNotFoundError("service not found")
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	rules, err := e.Rules.ListActiveForDay(ctx, providerID, int(dayStart.Weekday()))
	if err != nil {
		logger.Error("resolve: rule lookup failed", zap.String("providerID", providerID), zap.Error(err))
		return nil, ErrInternal
	}
	if len(rules) == 0 {
		return []time.Time{}, nil
	}

	appts, err := e.Appointments.ListOccupyingInRange(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		logger.Error("resolve: appointment lookup failed", zap.String("providerID", providerID), zap.Error(err))
		return nil, ErrInternal
	}
	busy := make([]Interval, 0, len(appts))
	for _, a := range appts {
		busy = append(busy, Interval{
			Start: a.ScheduledAt,
			End:   a.ScheduledAt.Add(time.Duration(a.DurationMinutes) * time.Minute),
		})
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute

	// Overlapping rules are a union of open windows; identical starts
	// produced by more than one window collapse in the set.
	seen := make(map[int64]struct{})
	var slots []time.Time
	for _, rule := range rules {
		window := Interval{
			Start: dayStart.Add(time.Duration(rule.StartMinute) * time.Minute),
			End:   dayStart.Add(time.Duration(rule.EndMinute) * time.Minute),
		}
		for _, start := range Quantize(Subtract(window, busy), SlotStep, duration) {
			key := start.Unix()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			slots = append(slots, start)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots, nil
}
