package services

import (
	"fmt"
	"strings"

	"marusalon-backend/models"
)

// Customer-facing message templates, WhatsApp formatting (asterisks for
// bold). Kept here so both the HTTP surface and the dispatcher render
// identical confirmations.

func bookingConfirmation(booking *models.Booking) string {
	return fmt.Sprintf(`🎉 *Booking Confirmed!*

*Booking ID:* %s
*Customer:* %s
*Service:* %s
*Date:* %s
*Time:* %s
*Stylist:* %s
*Price:* R%.0f

*Important:* Please arrive 10 minutes early. Cancel or reschedule at least 24 hours in advance.`,
		booking.ID, booking.CustomerName, booking.ServiceName,
		booking.Date, booking.Time, booking.StylistName, booking.Price)
}

func cancellationConfirmation(booking *models.Booking) string {
	return fmt.Sprintf(`✅ *Booking Cancelled*

*Booking ID:* %s
*Service:* %s
*Date:* %s
*Time:* %s

Your booking has been successfully cancelled. We hope to see you again soon!`,
		booking.ID, booking.ServiceName, booking.Date, booking.Time)
}

func rescheduleConfirmation(booking *models.Booking, oldDate, oldTime string) string {
	return fmt.Sprintf(`📅 *Booking Rescheduled*

*Booking ID:* %s
*Service:* %s
*Previous:* %s at %s
*New Date:* %s
*New Time:* %s
*Stylist:* %s

Your appointment has been successfully rescheduled!`,
		booking.ID, booking.ServiceName, oldDate, oldTime,
		booking.Date, booking.Time, booking.StylistName)
}

func servicesMessage(services []models.Service) string {
	var b strings.Builder
	b.WriteString("✨ *Available Services*\n\n")
	for _, service := range services {
		fmt.Fprintf(&b, "• %s - %d minutes\n", service.Name, service.Duration)
	}
	b.WriteString("\n*What service interests you?*")
	return b.String()
}

func pricingMessage(services []models.Service) string {
	var b strings.Builder
	b.WriteString("💇 *Our Services & Pricing*\n\n")
	for _, service := range services {
		fmt.Fprintf(&b, "• %s: R%.0f (%d minutes)\n", service.Name, service.Price, service.Duration)
	}
	b.WriteString("\n*Book now by replying with your preferred service!*")
	return b.String()
}

func availabilityMessage(slots []models.Slot) string {
	if len(slots) == 0 {
		return "Sorry, no available slots for that date and service. Please try a different date or service."
	}

	shown := slots
	if len(shown) > 5 {
		shown = shown[:5]
	}
	var b strings.Builder
	b.WriteString("📅 *Available Time Slots*\n\n")
	for _, slot := range shown {
		fmt.Fprintf(&b, "• %s - %s\n", slot.Time, slot.EndTime)
	}
	b.WriteString("\n*Reply with your preferred time to book!*")
	return b.String()
}

func serviceSelectionMessage(services []models.Service) string {
	var b strings.Builder
	b.WriteString("Please select a service:\n\n")
	for i, service := range services {
		fmt.Fprintf(&b, "%d. %s - R%.0f\n", i+1, service.Name, service.Price)
	}
	b.WriteString("\nReply with the name of your choice.")
	return b.String()
}

func bookingSelectionMessage(bookings []models.Booking) string {
	var b strings.Builder
	b.WriteString("Please select a booking to reschedule/cancel:\n\n")
	for i, booking := range bookings {
		fmt.Fprintf(&b, "%d. %s on %s at %s (ID: %s)\n",
			i+1, booking.ServiceName, booking.Date, booking.Time, booking.ID)
	}
	b.WriteString("\nReply with the booking ID of your choice.")
	return b.String()
}
