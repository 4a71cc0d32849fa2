package services

import (
	"log"

	"marusalon-backend/models"
)

// BookingEvent is the snapshot handed to the CRM collaborator after a
// booking is committed. Delivery and retries are the collaborator's
// responsibility; a failed sync never rolls the booking back.
type BookingEvent struct {
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	Booking       models.Booking `json:"booking"`
}

// CRMSync receives booking events for downstream contact/deal syncing.
type CRMSync interface {
	BookingCreated(event BookingEvent) error
}

// LogCRMSync is the default collaborator: it just logs the event. A
// HubSpot-style client plugs in behind the same interface.
type LogCRMSync struct{}

func (LogCRMSync) BookingCreated(event BookingEvent) error {
	log.Printf("[CRM] booking created: %s %s %s at %s for %s",
		event.Booking.ID, event.Booking.ServiceName,
		event.Booking.Date, event.Booking.Time, event.CustomerPhone)
	return nil
}
