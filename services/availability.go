package services

import (
	"fmt"
	"log"
	"sync"

	"marusalon-backend/config"
	"marusalon-backend/models"
	"marusalon-backend/utils"
)

// AvailabilityEngine computes candidate slots for a date/service/stylist
// and checks individual slots against existing bookings. Reads only; it
// never creates or mutates bookings.
type AvailabilityEngine struct {
	catalog *config.Catalog
	store   BookingStore
	step    int // minutes between slot candidates
	buffer  int // gap enforced after each appointment

	mu    sync.Mutex
	cache map[string]bool // transient memo, invalidated per date
}

func NewAvailabilityEngine(catalog *config.Catalog, store BookingStore, cfg *config.AppConfig) *AvailabilityEngine {
	return &AvailabilityEngine{
		catalog: catalog,
		store:   store,
		step:    cfg.SlotStepMinutes,
		buffer:  cfg.BufferMinutes,
		cache:   make(map[string]bool),
	}
}

// GetAvailableSlots returns the free slots for a date and service in
// chronological order. A closed day yields an empty list, not an error.
func (e *AvailabilityEngine) GetAvailableSlots(date, serviceID, stylistID string) ([]models.Slot, error) {
	service := e.catalog.ServiceByID(serviceID)
	if service == nil {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}
	if stylistID != "" && e.catalog.StylistByID(stylistID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrStylistNotFound, stylistID)
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	hours := e.catalog.HoursFor(utils.WeekdayKey(day))
	if hours.Closed {
		return []models.Slot{}, nil
	}

	// The buffer widens the search stride only; the slot itself keeps
	// the service duration.
	slots := []models.Slot{}
	for start := hours.Open; start+service.Duration+e.buffer <= hours.Close; start += e.step {
		clock := utils.FormatClock(start)
		if e.IsSlotAvailable(date, clock, serviceID, stylistID) {
			slots = append(slots, models.Slot{
				Date:     date,
				Time:     clock,
				EndTime:  utils.FormatClock(start + service.Duration),
				Duration: service.Duration,
			})
		}
	}
	return slots, nil
}

// IsSlotAvailable reports whether a slot can take a new booking. Fails
// closed: lookup problems return false and are logged, never raised.
// Results are memoized until the date is invalidated.
func (e *AvailabilityEngine) IsSlotAvailable(date, clock, serviceID, stylistID string) bool {
	key := cacheKey(date, clock, serviceID, stylistID)

	e.mu.Lock()
	cached, ok := e.cache[key]
	e.mu.Unlock()
	if ok {
		return cached
	}

	available, err := e.checkSlot(date, clock, serviceID, stylistID, "")
	if err != nil {
		// Transient lookup failure: answer false but do not memoize it,
		// or the slot would stay blocked until an unrelated mutation.
		return false
	}

	e.mu.Lock()
	e.cache[key] = available
	e.mu.Unlock()
	return available
}

// checkSlot is the authoritative availability test, always against the
// store's current state. The lifecycle service calls it directly inside
// the slot lock, bypassing the cache. excludeID skips one booking from
// the scan so a reschedule does not collide with itself. A non-nil
// error means the store could not be read, not that the slot is taken.
func (e *AvailabilityEngine) checkSlot(date, clock, serviceID, stylistID, excludeID string) (bool, error) {
	service := e.catalog.ServiceByID(serviceID)
	if service == nil {
		log.Printf("[AVAILABILITY] unknown service %q in slot check", serviceID)
		return false, nil
	}

	start, err := utils.ParseClock(clock)
	if err != nil {
		log.Printf("[AVAILABILITY] bad time %q in slot check: %v", clock, err)
		return false, nil
	}

	bookings, err := e.store.ListByDate(date)
	if err != nil {
		log.Printf("[AVAILABILITY] booking scan failed for %s: %v", date, err)
		return false, err
	}

	for _, booking := range bookings {
		if booking.Status == models.StatusCancelled || booking.ID == excludeID {
			continue
		}
		if !overlaps(start, service.Duration, booking) {
			continue
		}
		// Stylist-scoped exclusion: a requested stylist is only blocked
		// by that stylist's bookings; a request with no stylist needs
		// the interval completely free.
		if stylistID == "" || booking.StylistID == stylistID {
			return false, nil
		}
	}
	return true, nil
}

// InvalidateDate drops every memoized result for a date. Called after
// any booking on that date is created, cancelled or rescheduled.
func (e *AvailabilityEngine) InvalidateDate(date string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	prefix := date + "_"
	for key := range e.cache {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(e.cache, key)
		}
	}
}

func cacheKey(date, clock, serviceID, stylistID string) string {
	return fmt.Sprintf("%s_%s_%s_%s", date, clock, serviceID, stylistID)
}

func overlaps(start, duration int, booking models.Booking) bool {
	otherStart, err := utils.ParseClock(booking.Time)
	if err != nil {
		log.Printf("[AVAILABILITY] booking %s has bad time %q", booking.ID, booking.Time)
		return false
	}
	end := start + duration
	otherEnd := otherStart + booking.Duration
	return !(end <= otherStart || otherEnd <= start)
}
