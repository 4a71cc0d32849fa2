package models

import "time"

// Booking statuses. Cancelled is terminal.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a confirmed (or cancelled) appointment. Price and Duration
// are copied from the service at creation time and never recomputed.
type Booking struct {
	ID string `gorm:"primaryKey" json:"id"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"index;not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	ServiceID   string `gorm:"not null" json:"serviceId"`
	ServiceName string `json:"serviceName"`

	Date     string `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Time     string `gorm:"not null" json:"time"`       // HH:MM
	Duration int    `json:"duration"`                   // in minutes

	StylistID   string `json:"stylistId,omitempty"` // empty means any available
	StylistName string `json:"stylistName"`

	Price  float64 `gorm:"type:decimal(10,2)" json:"price"`
	Status string  `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	Notes  string  `json:"notes,omitempty"`

	CancellationReason string `json:"cancellationReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Slot is a derived candidate window produced by the availability
// engine. Never persisted.
type Slot struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"endTime"`
	Duration int    `json:"duration"`
}

// BookingRequest carries the fields needed to create a booking.
type BookingRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	StylistID     string `json:"stylistId"`
	Notes         string `json:"notes"`
}
