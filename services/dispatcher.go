package services

import (
	"errors"
	"strings"

	"marusalon-backend/config"
	"marusalon-backend/models"
)

// Suggested actions the dispatcher can derive from a message. Each one
// maps 1:1 onto a booking service or availability engine call.
const (
	ActionBookAppointment       = "BOOK_APPOINTMENT"
	ActionRescheduleAppointment = "RESCHEDULE_APPOINTMENT"
	ActionCancelAppointment     = "CANCEL_APPOINTMENT"
	ActionCheckAvailability     = "CHECK_AVAILABILITY"
	ActionShowServices          = "SHOW_SERVICES"
	ActionShowPricing           = "SHOW_PRICING"
)

// Dispatcher turns an inbound free-text message into a classified
// context plus executed booking actions. It never touches the booking
// store directly; all mutation goes through the BookingService.
type Dispatcher struct {
	catalog       *config.Catalog
	bookings      *BookingService
	availability  *AvailabilityEngine
	conversations *ConversationStore
	extractor     Extractor
	analytics     *AnalyticsTracker // optional
}

// DispatchResult is what the messaging gateway delivers back to the
// customer.
type DispatchResult struct {
	Context      string   `json:"context"`
	Actions      []string `json:"actions"`
	ResponseText string   `json:"responseText"`
}

func NewDispatcher(catalog *config.Catalog, bookings *BookingService, availability *AvailabilityEngine, conversations *ConversationStore, extractor Extractor, analytics *AnalyticsTracker) *Dispatcher {
	if extractor == nil {
		extractor = NewKeywordExtractor(catalog)
	}
	return &Dispatcher{
		catalog:       catalog,
		bookings:      bookings,
		availability:  availability,
		conversations: conversations,
		extractor:     extractor,
		analytics:     analytics,
	}
}

// DetermineContext classifies a message as booking/support/sales/
// complaint, defaulting to general when ambiguous. Best effort, keyword
// driven.
func DetermineContext(text string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "book") || strings.Contains(lower, "appointment"):
		return models.ContextBooking
	case strings.Contains(lower, "cancel") || strings.Contains(lower, "reschedule"):
		return models.ContextSupport
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost"):
		return models.ContextSales
	case strings.Contains(lower, "complaint") || strings.Contains(lower, "problem"):
		return models.ContextComplaint
	}
	return models.ContextGeneral
}

// HandleMessage processes one inbound customer message and returns the
// reply text plus the structured actions that were taken.
func (d *Dispatcher) HandleMessage(senderID, text, contactName string) *DispatchResult {
	context := DetermineContext(text)
	d.analytics.TrackConversation(senderID, context)
	partial := d.extractor.Extract(text)
	actions := deriveActions(text, context)

	var responses []string
	for _, action := range actions {
		if reply := d.runAction(action, senderID, text, contactName, partial); reply != "" {
			responses = append(responses, reply)
		}
	}

	responseText := strings.Join(responses, "\n\n")
	if responseText == "" {
		responseText = defaultReply(context)
	}

	d.conversations.AppendTurn(senderID, text, responseText, context)

	return &DispatchResult{
		Context:      context,
		Actions:      actions,
		ResponseText: responseText,
	}
}

// deriveActions maps keyword hits to concrete actions. Reschedule and
// cancel win over book so "cancel my appointment" is not a booking.
func deriveActions(text, context string) []string {
	lower := strings.ToLower(text)
	var actions []string

	switch {
	case strings.Contains(lower, "reschedule") || strings.Contains(lower, "move my"):
		actions = append(actions, ActionRescheduleAppointment)
	case strings.Contains(lower, "cancel"):
		actions = append(actions, ActionCancelAppointment)
	case context == models.ContextBooking:
		actions = append(actions, ActionBookAppointment)
	}

	if strings.Contains(lower, "price") || strings.Contains(lower, "cost") || strings.Contains(lower, "how much") {
		actions = append(actions, ActionShowPricing)
	}
	if strings.Contains(lower, "what services") || strings.Contains(lower, "which services") {
		actions = append(actions, ActionShowServices)
	}
	if strings.Contains(lower, "available") || strings.Contains(lower, "availability") || strings.Contains(lower, "open slots") {
		actions = append(actions, ActionCheckAvailability)
	}
	return actions
}

func (d *Dispatcher) runAction(action, senderID, text, contactName string, partial models.PartialBookingRequest) string {
	switch action {
	case ActionBookAppointment:
		return d.handleBooking(senderID, text, contactName, partial)
	case ActionRescheduleAppointment:
		return d.handleReschedule(senderID, partial)
	case ActionCancelAppointment:
		return d.handleCancellation(senderID, partial)
	case ActionCheckAvailability:
		return d.handleAvailability(partial)
	case ActionShowServices:
		return servicesMessage(d.catalog.Services)
	case ActionShowPricing:
		return pricingMessage(d.catalog.Services)
	}
	return ""
}

func (d *Dispatcher) handleBooking(senderID, text, contactName string, partial models.PartialBookingRequest) string {
	if partial.ServiceID == "" {
		return serviceSelectionMessage(d.catalog.Services)
	}

	slots, err := d.availability.GetAvailableSlots(partial.Date, partial.ServiceID, partial.StylistID)
	if err != nil {
		return friendlyError(err)
	}
	if len(slots) == 0 {
		return "Sorry, no available slots for that date and service. Please try a different date or service."
	}

	slotTime := partial.Time
	if slotTime == "" {
		slotTime = slots[0].Time
	}

	name := contactName
	if name == "" {
		name = "Customer"
	}

	result, err := d.bookings.CreateBooking(models.BookingRequest{
		CustomerName:  name,
		CustomerPhone: senderID,
		ServiceID:     partial.ServiceID,
		Date:          partial.Date,
		Time:          slotTime,
		StylistID:     partial.StylistID,
		Notes:         text,
	})
	if err != nil {
		return friendlyError(err)
	}
	return result.Message
}

func (d *Dispatcher) handleReschedule(senderID string, partial models.PartialBookingRequest) string {
	existing := d.activeBookings(senderID)
	if len(existing) == 0 {
		return "No existing bookings found. Would you like to make a new appointment?"
	}
	if partial.BookingID == "" {
		return bookingSelectionMessage(existing)
	}
	if partial.Time == "" {
		return "What new time would you like? You can say morning, afternoon or evening."
	}

	result, err := d.bookings.RescheduleBooking(partial.BookingID, partial.Date, partial.Time)
	if err != nil {
		return friendlyError(err)
	}
	return result.Message
}

func (d *Dispatcher) handleCancellation(senderID string, partial models.PartialBookingRequest) string {
	existing := d.activeBookings(senderID)
	if len(existing) == 0 {
		return "No existing bookings found to cancel."
	}
	if partial.BookingID == "" {
		return bookingSelectionMessage(existing)
	}

	result, err := d.bookings.CancelBooking(partial.BookingID, partial.Reason)
	if err != nil {
		return friendlyError(err)
	}
	return result.Message
}

func (d *Dispatcher) handleAvailability(partial models.PartialBookingRequest) string {
	if partial.ServiceID == "" {
		return serviceSelectionMessage(d.catalog.Services)
	}
	slots, err := d.availability.GetAvailableSlots(partial.Date, partial.ServiceID, partial.StylistID)
	if err != nil {
		return friendlyError(err)
	}
	return availabilityMessage(slots)
}

func (d *Dispatcher) activeBookings(phone string) []models.Booking {
	all, err := d.bookings.GetCustomerBookings(phone)
	if err != nil {
		return nil
	}
	var active []models.Booking
	for _, booking := range all {
		if booking.Status != models.StatusCancelled {
			active = append(active, booking)
		}
	}
	return active
}

// friendlyError translates the error taxonomy into a specific customer
// message: "pick another time" is not "try again shortly".
func friendlyError(err error) string {
	switch {
	case errors.Is(err, ErrSlotUnavailable):
		return "That time slot is already taken. Please pick another time."
	case errors.Is(err, ErrSlotBusy):
		return "That slot is being booked by someone else right now. Please try again shortly."
	case errors.Is(err, ErrPastDate):
		return "That time is in the past. Please choose an upcoming date and time."
	case errors.Is(err, ErrBookingNotFound):
		return "That booking doesn't exist. Please check the booking ID."
	case errors.Is(err, ErrAlreadyCancelled):
		return "That booking has already been cancelled."
	case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrStylistNotFound):
		return "I couldn't find that service or stylist. Reply 'services' to see what we offer."
	case errors.Is(err, ErrInvalidInput):
		return "I'm missing some details. Could you tell me the service, date and time you'd like?"
	}
	return "Sorry, something went wrong on our side. Please try again."
}

func defaultReply(context string) string {
	switch context {
	case models.ContextBooking:
		return "I'd love to help you book! Which service would you like, and for when?"
	case models.ContextSupport:
		return "I can help with your existing booking. Could you share your booking ID (it starts with BK)?"
	case models.ContextSales:
		return "Happy to help with pricing. Reply 'price list' to see all services and prices."
	case models.ContextComplaint:
		return "I'm sorry to hear that. I've flagged this for our management team, and they will contact you shortly."
	}
	return "Hi! Welcome to Maru Salon. I can help you book an appointment, check availability, or answer questions about our services."
}
