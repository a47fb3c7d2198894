package booking

import "fmt"

// Code classifies a booking engine failure for callers; every code
// except CodeInternal carries a message safe to echo to the client.
type Code string

const (
	CodeValidation  Code = "validation"
	CodeOutOfWindow Code = "out_of_window"
	CodeNotFound    Code = "not_found"
	CodeNotBookable Code = "not_bookable"
	CodeSlotTaken   Code = "slot_taken"
	CodeInternal    Code = "internal"
)

type BookingError struct {
	Code    Code
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewOutOfWindowError(msg string) error {
	return &BookingError{Code: CodeOutOfWindow, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewNotBookableError(msg string) error {
	return &BookingError{Code: CodeNotBookable, Message: msg}
}

// ErrSlotTaken is returned when the requested window conflicts with an
// occupying appointment, at pre-check or at commit.
var ErrSlotTaken = &BookingError{Code: CodeSlotTaken, Message: "Time slot no longer available"}

// ErrInternal hides data-store and unexpected failures behind a
// generic retry-suggesting message.
var ErrInternal = &BookingError{Code: CodeInternal, Message: "Something went wrong. Please try again."}

// CodeOf extracts the failure code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	if be, ok := err.(*BookingError); ok {
		return be.Code
	}
	return CodeInternal
}
