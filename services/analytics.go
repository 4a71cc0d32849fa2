package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"marusalon-backend/models"
	"marusalon-backend/utils"
)

// AnalyticsTracker keeps process-scoped conversation and booking
// counters for the dashboard endpoint. Events accumulate in memory and
// a periodic cleanup drops the old ones; nothing here is persisted.
type AnalyticsTracker struct {
	mu            sync.Mutex
	conversations []conversationEvent
	bookings      []bookingStat
	now           func() time.Time
}

type conversationEvent struct {
	customerID string
	context    string
	at         time.Time
}

type bookingStat struct {
	bookingID string
	serviceID string
	stylistID string
	value     float64
	at        time.Time
}

func NewAnalyticsTracker() *AnalyticsTracker {
	return &AnalyticsTracker{now: time.Now}
}

// TrackConversation records one handled inbound message. Safe on a nil
// tracker so collaborators can treat analytics as optional.
func (t *AnalyticsTracker) TrackConversation(customerID, context string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conversations = append(t.conversations, conversationEvent{
		customerID: customerID,
		context:    context,
		at:         t.now(),
	})
}

// TrackBooking records one committed booking with its snapshotted price.
func (t *AnalyticsTracker) TrackBooking(booking *models.Booking) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bookings = append(t.bookings, bookingStat{
		bookingID: booking.ID,
		serviceID: booking.ServiceID,
		stylistID: booking.StylistID,
		value:     booking.Price,
		at:        t.now(),
	})
}

// Dashboard aggregates the period's events. Periods are day, week and
// month, measured back from now.
func (t *AnalyticsTracker) Dashboard(period string) (*models.AnalyticsDashboard, error) {
	end := t.now()
	var start time.Time
	switch period {
	case "day":
		start = end.AddDate(0, 0, -1)
	case "week":
		start = end.AddDate(0, 0, -7)
	case "month":
		start = end.AddDate(0, -1, 0)
	default:
		return nil, fmt.Errorf("%w: period must be day, week or month", ErrInvalidInput)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	dashboard := &models.AnalyticsDashboard{
		Period:    period,
		Start:     start,
		End:       end,
		ByContext: map[string]int{},
		ByService: map[string]int{},
		ByStylist: map[string]int{},
	}

	for _, conv := range t.conversations {
		if conv.at.Before(start) {
			continue
		}
		dashboard.TotalConversations++
		dashboard.ByContext[conv.context]++
	}
	for _, b := range t.bookings {
		if b.at.Before(start) {
			continue
		}
		dashboard.TotalBookings++
		dashboard.TotalRevenue += b.value
		dashboard.ByService[b.serviceID]++
		stylist := b.stylistID
		if stylist == "" {
			stylist = "unassigned"
		}
		dashboard.ByStylist[stylist]++
	}
	if dashboard.TotalConversations > 0 {
		dashboard.ConversionRate = dashboard.TotalBookings * 100 / dashboard.TotalConversations
	}
	return dashboard, nil
}

// Cleanup drops events older than daysToKeep calendar days and reports
// how many were removed. Runs on a daily timer.
func (t *AnalyticsTracker) Cleanup(daysToKeep int) int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	removed := 0

	keptConversations := t.conversations[:0]
	for _, conv := range t.conversations {
		if utils.DaysBetween(conv.at, now) > daysToKeep {
			removed++
			continue
		}
		keptConversations = append(keptConversations, conv)
	}
	t.conversations = keptConversations

	keptBookings := t.bookings[:0]
	for _, b := range t.bookings {
		if utils.DaysBetween(b.at, now) > daysToKeep {
			removed++
			continue
		}
		keptBookings = append(keptBookings, b)
	}
	t.bookings = keptBookings

	if removed > 0 {
		log.Printf("🧹 Cleaned up %d old analytics events", removed)
	}
	return removed
}
