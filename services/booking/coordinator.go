package booking

import (
	"context"
	"errors"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
	providerRepo "slotbook/database/repository/provider"
	serviceRepo "slotbook/database/repository/service"
	"slotbook/models"
	"slotbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHorizonMonths caps how far ahead a public booking may be placed.
const BookingHorizonMonths = 6

// DefaultCoordinator validates a booking request end-to-end and
// commits it as a single atomic decision against the data store.
type DefaultCoordinator struct {
	Providers    providerRepo.ProviderRepository
	Services     serviceRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Guard        ConflictGuard
	Locks        ProviderLocker

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (c *DefaultCoordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *DefaultCoordinator) Submit(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	// 1. Structural validation.
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	// 2. Temporal validation.
	now := c.now().UTC()
	req.ScheduledAt = req.ScheduledAt.UTC()
	if !req.ScheduledAt.After(now) {
		return nil, NewOutOfWindowError("scheduledAt must be in the future")
	}
	if req.ScheduledAt.After(now.AddDate(0, BookingHorizonMonths, 0)) {
		return nil, NewOutOfWindowError("scheduledAt must be within 6 months")
	}

	// 3. Eligibility.
	svc, err := c.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		logger.Error("submit: service lookup failed", zap.String("serviceID", req.ServiceID), zap.Error(err))
		return nil, ErrInternal
	}
	if svc == nil || !svc.Active || svc.ProviderID != req.ProviderID {
		return nil, NewNotBookableError("service is not available for booking")
	}

	provider, err := c.Providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		logger.Error("submit: provider lookup failed", zap.String("providerID", req.ProviderID), zap.Error(err))
		return nil, ErrInternal
	}
	if provider == nil || !provider.Active || !provider.AcceptsPublicBookings {
		return nil, NewNotBookableError("provider is not accepting bookings")
	}

	// Serialize check+insert per provider; the store-level constraint
	// still backstops races across instances.
	release, err := c.Locks.Lock(ctx, req.ProviderID)
	if err != nil {
		logger.Error("submit: provider lock failed", zap.String("providerID", req.ProviderID), zap.Error(err))
		return nil, ErrInternal
	}
	defer release()

	// 4. Live conflict check.
	conflict, err := c.Guard.HasConflict(ctx, req.ProviderID, req.ScheduledAt, svc.DurationMinutes, "")
	if err != nil {
		logger.Error("submit: conflict check failed", zap.String("providerID", req.ProviderID), zap.Error(err))
		return nil, ErrInternal
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	// 5. Commit.
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ProviderID:      req.ProviderID,
		ServiceID:       svc.ID,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: svc.DurationMinutes,
		EndAt:           req.ScheduledAt.Add(time.Duration(svc.DurationMinutes) * time.Minute),
		Status:          models.StatusScheduled,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		Notes:           req.Notes,
		CreatedAt:       now,
	}
	if err := c.Appointments.BookTransactionally(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrConflict) {
			return nil, ErrSlotTaken
		}
		logger.Error("submit: booking transaction failed",
			zap.String("providerID", req.ProviderID),
			zap.String("appointmentID", appt.ID),
			zap.Error(err))
		return nil, ErrInternal
	}

	logger.Info("booking committed",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.Time("scheduledAt", appt.ScheduledAt))

	return &models.BookingConfirmation{
		ID:              appt.ID,
		ScheduledAt:     appt.ScheduledAt,
		DurationMinutes: appt.DurationMinutes,
		ServiceName:     svc.Name,
	}, nil
}
