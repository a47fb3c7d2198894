package handlers

import (
	"net/http"
	"time"

	"slotbook/models"
	"slotbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking surface: slot queries and
// booking submissions.
type BookingHandler struct {
	Availability booking.AvailabilityEngine
	Coordinator  booking.Coordinator
	Logger       *zap.Logger
}

func NewBookingHandler(availability booking.AvailabilityEngine, coordinator booking.Coordinator, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Availability: availability, Coordinator: coordinator, Logger: logger}
}

// GetAvailableSlotsHandler returns the bookable start times for a
// provider on a calendar date, as "HH:MM" strings in ascending order.
func (h *BookingHandler) GetAvailableSlotsHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	dateStr := c.Query("date")
	serviceID := c.Query("serviceId")

	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required (YYYY-MM-DD)"})
		return
	}
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId is required"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be a valid calendar date (YYYY-MM-DD)"})
		return
	}

	slots, err := h.Availability.Resolve(c.Request.Context(), providerID, date, serviceID)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format("15:04"))
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": out})
}

// SubmitBookingHandler accepts a public booking submission and returns
// a definitive accept or reject.
func (h *BookingHandler) SubmitBookingHandler(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, input.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scheduledAt must be a valid ISO timestamp"})
		return
	}

	req := models.BookingRequest{
		ProviderID:  input.ProviderID,
		ServiceID:   input.ServiceID,
		ScheduledAt: scheduledAt.UTC(),
		ClientName:  input.ClientName,
		ClientEmail: input.ClientEmail,
		ClientPhone: input.ClientPhone,
		Notes:       input.ClientNotes,
	}

	confirmation, err := h.Coordinator.Submit(c.Request.Context(), req)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"appointment": confirmation,
	})
}

// respondWithError maps the booking error taxonomy onto HTTP statuses.
// Only validation, eligibility and availability reasons are echoed;
// internal failures stay generic.
func (h *BookingHandler) respondWithError(c *gin.Context, err error) {
	be, ok := err.(*booking.BookingError)
	if !ok {
		h.Logger.Error("unexpected booking failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	switch be.Code {
	case booking.CodeValidation, booking.CodeOutOfWindow, booking.CodeNotBookable:
		c.JSON(http.StatusBadRequest, gin.H{"error": be.Message})
	case booking.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": be.Message})
	case booking.CodeSlotTaken:
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot no longer available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
