package booking

import (
	"regexp"
	"strings"

	"slotbook/models"
)

const (
	minNameLen  = 2
	maxNameLen  = 100
	maxEmailLen = 255
	maxPhoneLen = 20
	maxNotesLen = 500
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest checks the structural shape of a booking request.
// Notes are truncated rather than rejected. The request is mutated in
// place (trimming, truncation).
func validateRequest(req *models.BookingRequest) error {
	if req.ProviderID == "" {
		return NewValidationError("providerId is required")
	}
	if req.ServiceID == "" {
		return NewValidationError("serviceId is required")
	}
	if req.ScheduledAt.IsZero() {
		return NewValidationError("scheduledAt is required")
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	nameLen := len([]rune(req.ClientName))
	if nameLen < minNameLen || nameLen > maxNameLen {
		return NewValidationError("clientName must be between 2 and 100 characters")
	}

	req.ClientEmail = strings.TrimSpace(req.ClientEmail)
	if len(req.ClientEmail) > maxEmailLen || !emailPattern.MatchString(req.ClientEmail) {
		return NewValidationError("clientEmail must be a valid email address")
	}

	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	if len(req.ClientPhone) > maxPhoneLen {
		return NewValidationError("clientPhone must be at most 20 characters")
	}

	if notes := []rune(req.Notes); len(notes) > maxNotesLen {
		req.Notes = string(notes[:maxNotesLen])
	}
	return nil
}
