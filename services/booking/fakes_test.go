package booking

import (
	"context"
	"sync"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
)

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (f *fakeProviderRepo) Create(_ context.Context, p *models.Provider) error {
	f.providers[p.ID] = p
	return nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	return f.providers[id], nil
}

func (f *fakeProviderRepo) EnsureIndexes() error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, s *models.Service) error {
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) ListByProvider(_ context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) EnsureIndexes() error { return nil }

type fakeRuleRepo struct {
	rules []models.AvailabilityRule
}

func (f *fakeRuleRepo) ReplaceForProvider(_ context.Context, providerID string, rules []models.AvailabilityRule) error {
	f.rules = rules
	return nil
}

func (f *fakeRuleRepo) ListForProvider(_ context.Context, providerID string) ([]models.AvailabilityRule, error) {
	return f.rules, nil
}

func (f *fakeRuleRepo) ListActiveForDay(_ context.Context, providerID string, weekday int) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range f.rules {
		if r.ProviderID == providerID && r.Weekday == weekday && r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRuleRepo) EnsureIndexes() error { return nil }

// fakeAppointmentRepo mimics the store's commit guarantees: the
// conflict re-check and the insert happen under one lock, and a second
// occupying appointment at the same provider/start is refused.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) ListOccupyingInRange(_ context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProviderID != providerID || !a.Status.Occupying() {
			continue
		}
		if a.ScheduledAt.Before(to) && a.EndAt.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByProviderDay(_ context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.ProviderID == providerID && !a.ScheduledAt.Before(dayStart) && a.ScheduledAt.Before(dayEnd) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointmentRepo) BookTransactionally(_ context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.appts {
		if a.ProviderID != appt.ProviderID || !a.Status.Occupying() {
			continue
		}
		if a.ScheduledAt.Equal(appt.ScheduledAt) {
			return appointmentRepo.ErrConflict
		}
		if a.ScheduledAt.Before(appt.EndAt) && appt.ScheduledAt.Before(a.EndAt) {
			return appointmentRepo.ErrConflict
		}
	}
	f.appts = append(f.appts, *appt)
	return nil
}

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

func (f *fakeAppointmentRepo) snapshot() []models.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Appointment, len(f.appts))
	copy(out, f.appts)
	return out
}
