package handlers

import (
	"errors"
	"net/http"
	"time"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler manages weekly availability rules and appointment
// status transitions for a provider.
type ScheduleHandler struct {
	Rules        availabilityRepo.AvailabilityRuleRepository
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

func NewScheduleHandler(rules availabilityRepo.AvailabilityRuleRepository, appointments appointmentRepo.AppointmentRepository, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Rules: rules, Appointments: appointments, Logger: logger}
}

type availabilityRuleInput struct {
	Weekday     int  `json:"weekday"`
	StartMinute int  `json:"startMinute"`
	EndMinute   int  `json:"endMinute"`
	Active      bool `json:"active"`
}

// SetAvailabilityHandler replaces a provider's weekly rule set.
func (h *ScheduleHandler) SetAvailabilityHandler(c *gin.Context) {
	var input struct {
		Rules []availabilityRuleInput `json:"rules" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	providerID := c.Param("providerID")
	rules := make([]models.AvailabilityRule, 0, len(input.Rules))
	for _, r := range input.Rules {
		if r.Weekday < 0 || r.Weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be between 0 and 6"})
			return
		}
		if r.StartMinute < 0 || r.EndMinute > 24*60 || r.StartMinute >= r.EndMinute {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rule start must be before end within the same day"})
			return
		}
		rules = append(rules, models.AvailabilityRule{
			ProviderID:  providerID,
			Weekday:     r.Weekday,
			StartMinute: r.StartMinute,
			EndMinute:   r.EndMinute,
			Active:      r.Active,
		})
	}

	if err := h.Rules.ReplaceForProvider(c.Request.Context(), providerID, rules); err != nil {
		h.Logger.Error("failed to replace availability rules", zap.String("providerID", providerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": len(rules)})
}

func (h *ScheduleHandler) GetAvailabilityHandler(c *gin.Context) {
	rules, err := h.Rules.ListForProvider(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		h.Logger.Error("failed to list availability rules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if rules == nil {
		rules = []models.AvailabilityRule{}
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// ListAppointmentsHandler returns a provider's appointments for one
// calendar date.
func (h *ScheduleHandler) ListAppointmentsHandler(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid calendar date (YYYY-MM-DD)"})
		return
	}

	appts, err := h.Appointments.ListByProviderDay(c.Request.Context(), c.Param("providerID"), date, date.Add(24*time.Hour))
	if err != nil {
		h.Logger.Error("failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// UpdateAppointmentStatusHandler moves an appointment through its
// lifecycle. Transitions out of an occupying status free the slot.
func (h *ScheduleHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	var input struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !input.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown appointment status"})
		return
	}

	id := c.Param("appointmentID")
	err := h.Appointments.UpdateStatus(c.Request.Context(), id, input.Status)
	switch {
	case errors.Is(err, appointmentRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
	case errors.Is(err, appointmentRepo.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot no longer available"})
	case err != nil:
		h.Logger.Error("failed to update appointment status", zap.String("appointmentID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	default:
		c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
	}
}
