package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"slotbook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func scheduleRouter(rules *memRuleRepo, appts *memAppointmentRepo) *gin.Engine {
	h := NewScheduleHandler(rules, appts, zap.NewNop())
	r := gin.New()
	r.PUT("/providers/:providerID/availability", h.SetAvailabilityHandler)
	r.GET("/providers/:providerID/availability", h.GetAvailabilityHandler)
	r.GET("/providers/:providerID/appointments", h.ListAppointmentsHandler)
	r.PATCH("/appointments/:appointmentID/status", h.UpdateAppointmentStatusHandler)
	return r
}

func TestSetAvailability_ReplacesRuleSet(t *testing.T) {
	rules := newMemRuleRepo()
	rules.rules["prov-1"] = []models.AvailabilityRule{
		{ProviderID: "prov-1", Weekday: 5, StartMinute: 600, EndMinute: 720, Active: true},
	}
	r := scheduleRouter(rules, &memAppointmentRepo{})

	payload := `{"rules":[
		{"weekday":1,"startMinute":540,"endMinute":720,"active":true},
		{"weekday":3,"startMinute":780,"endMinute":1020,"active":true}
	]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/providers/prov-1/availability", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	stored := rules.rules["prov-1"]
	require.Len(t, stored, 2, "the old rule set is replaced, not appended to")
	assert.Equal(t, 1, stored[0].Weekday)
	assert.Equal(t, 3, stored[1].Weekday)
}

func TestSetAvailability_InvalidRules(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"weekday out of range", `{"rules":[{"weekday":7,"startMinute":540,"endMinute":720,"active":true}]}`},
		{"start not before end", `{"rules":[{"weekday":1,"startMinute":720,"endMinute":720,"active":true}]}`},
		{"end past midnight", `{"rules":[{"weekday":1,"startMinute":540,"endMinute":1441,"active":true}]}`},
		{"negative start", `{"rules":[{"weekday":1,"startMinute":-10,"endMinute":720,"active":true}]}`},
		{"missing rules field", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rules := newMemRuleRepo()
			r := scheduleRouter(rules, &memAppointmentRepo{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/providers/prov-1/availability", strings.NewReader(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, rules.rules["prov-1"], "nothing is written on a rejected rule set")
		})
	}
}

func TestListAppointments_FiltersByDay(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	appts := &memAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProviderID: "prov-1", ScheduledAt: day.Add(10 * time.Hour), EndAt: day.Add(10*time.Hour + 30*time.Minute), Status: models.StatusScheduled},
		{ID: "a2", ProviderID: "prov-1", ScheduledAt: day.AddDate(0, 0, 1).Add(10 * time.Hour), EndAt: day.AddDate(0, 0, 1).Add(10*time.Hour + 30*time.Minute), Status: models.StatusScheduled},
		{ID: "a3", ProviderID: "prov-2", ScheduledAt: day.Add(11 * time.Hour), EndAt: day.Add(11*time.Hour + 30*time.Minute), Status: models.StatusScheduled},
	}}
	r := scheduleRouter(newMemRuleRepo(), appts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/prov-1/appointments?date=2026-09-07", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"a1"`)
	assert.NotContains(t, w.Body.String(), `"a2"`)
	assert.NotContains(t, w.Body.String(), `"a3"`)
}

func TestListAppointments_RequiresDate(t *testing.T) {
	r := scheduleRouter(newMemRuleRepo(), &memAppointmentRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/providers/prov-1/appointments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	appts := &memAppointmentRepo{appts: []models.Appointment{
		{ID: "a1", ProviderID: "prov-1", Status: models.StatusScheduled},
	}}
	r := scheduleRouter(newMemRuleRepo(), appts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/a1/status", strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusCancelled, appts.appts[0].Status)
}

func TestUpdateAppointmentStatus_UnknownStatusIs400(t *testing.T) {
	r := scheduleRouter(newMemRuleRepo(), &memAppointmentRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/a1/status", strings.NewReader(`{"status":"snoozed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAppointmentStatus_UnknownAppointmentIs404(t *testing.T) {
	r := scheduleRouter(newMemRuleRepo(), &memAppointmentRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/ghost/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
