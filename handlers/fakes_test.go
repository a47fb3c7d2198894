package handlers

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
)

type memProviderRepo struct {
	providers map[string]*models.Provider
}

func newMemProviderRepo() *memProviderRepo {
	return &memProviderRepo{providers: make(map[string]*models.Provider)}
}

func (m *memProviderRepo) Create(_ context.Context, p *models.Provider) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("prov-%d", len(m.providers)+1)
	}
	m.providers[p.ID] = p
	return nil
}

func (m *memProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	return m.providers[id], nil
}

func (m *memProviderRepo) EnsureIndexes() error { return nil }

type memServiceRepo struct {
	services map[string]*models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]*models.Service)}
}

func (m *memServiceRepo) Create(_ context.Context, s *models.Service) error {
	if s.ID == "" {
		s.ID = fmt.Sprintf("svc-%d", len(m.services)+1)
	}
	m.services[s.ID] = s
	return nil
}

func (m *memServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	return m.services[id], nil
}

func (m *memServiceRepo) ListByProvider(_ context.Context, providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range m.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memServiceRepo) EnsureIndexes() error { return nil }

type memRuleRepo struct {
	rules map[string][]models.AvailabilityRule
}

func newMemRuleRepo() *memRuleRepo {
	return &memRuleRepo{rules: make(map[string][]models.AvailabilityRule)}
}

func (m *memRuleRepo) ReplaceForProvider(_ context.Context, providerID string, rules []models.AvailabilityRule) error {
	m.rules[providerID] = rules
	return nil
}

func (m *memRuleRepo) ListForProvider(_ context.Context, providerID string) ([]models.AvailabilityRule, error) {
	return m.rules[providerID], nil
}

func (m *memRuleRepo) ListActiveForDay(_ context.Context, providerID string, weekday int) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, r := range m.rules[providerID] {
		if r.Weekday == weekday && r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRuleRepo) EnsureIndexes() error { return nil }

type memAppointmentRepo struct {
	appts []models.Appointment
}

func (m *memAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for i := range m.appts {
		if m.appts[i].ID == id {
			a := m.appts[i]
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (m *memAppointmentRepo) ListOccupyingInRange(_ context.Context, providerID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ProviderID == providerID && a.Status.Occupying() && a.ScheduledAt.Before(to) && a.EndAt.After(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) ListByProviderDay(_ context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.ProviderID == providerID && !a.ScheduledAt.Before(dayStart) && a.ScheduledAt.Before(dayEnd) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) UpdateStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts[i].Status = status
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (m *memAppointmentRepo) BookTransactionally(_ context.Context, appt *models.Appointment) error {
	m.appts = append(m.appts, *appt)
	return nil
}

func (m *memAppointmentRepo) EnsureIndexes() error { return nil }
