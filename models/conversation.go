package models

import "time"

// Conversation contexts classified from a customer message.
const (
	ContextBooking   = "booking"
	ContextSupport   = "support"
	ContextSales     = "sales"
	ContextComplaint = "complaint"
	ContextGeneral   = "general"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ConversationState holds the retained history for one customer phone
// number plus the last classified context.
type ConversationState struct {
	History      []Message `json:"history"`
	Context      string    `json:"context"`
	LastActivity time.Time `json:"lastActivity"`
}

// PartialBookingRequest is the best-effort structured extraction from a
// free-text message. Empty fields were simply not mentioned.
type PartialBookingRequest struct {
	ServiceID string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	StylistID string
	BookingID string
	Reason    string
}
