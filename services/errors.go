package services

import "errors"

// Booking error taxonomy. Controllers map these onto HTTP status codes;
// the dispatcher maps them onto customer-facing replies. ErrSlotBusy is
// the only condition a caller should retry after a short delay.
var (
	ErrInvalidInput     = errors.New("missing required booking information")
	ErrServiceNotFound  = errors.New("service not found")
	ErrStylistNotFound  = errors.New("stylist not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPastDate         = errors.New("cannot book appointments in the past")
	ErrSlotUnavailable  = errors.New("time slot is no longer available")
	ErrSlotBusy         = errors.New("slot is being processed by another request")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)
