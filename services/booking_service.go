package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"marusalon-backend/config"
	"marusalon-backend/models"
	"marusalon-backend/utils"
)

// BookingService orchestrates create/cancel/reschedule. Every operation
// either fully applies or returns an error with no partial mutation.
type BookingService struct {
	catalog      *config.Catalog
	store        BookingStore
	locks        *SlotLockManager
	availability *AvailabilityEngine
	crm          CRMSync
	analytics    *AnalyticsTracker // optional
	now          func() time.Time
}

// BookingResult pairs the committed booking with a customer-facing
// confirmation message.
type BookingResult struct {
	Booking *models.Booking `json:"booking"`
	Message string          `json:"message"`
}

func NewBookingService(catalog *config.Catalog, store BookingStore, locks *SlotLockManager, availability *AvailabilityEngine, crm CRMSync, analytics *AnalyticsTracker) *BookingService {
	if crm == nil {
		crm = LogCRMSync{}
	}
	return &BookingService{
		catalog:      catalog,
		store:        store,
		locks:        locks,
		availability: availability,
		crm:          crm,
		analytics:    analytics,
		now:          time.Now,
	}
}

// CreateBooking validates the request, takes the slot lock, re-checks
// availability against the store and commits the booking. Price and
// duration are snapshotted from the catalog at this point.
func (s *BookingService) CreateBooking(req models.BookingRequest) (*BookingResult, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.ServiceID == "" || req.Date == "" || req.Time == "" {
		return nil, ErrInvalidInput
	}
	if !utils.ValidatePhone(req.CustomerPhone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	service := s.catalog.ServiceByID(req.ServiceID)
	if service == nil {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceID)
	}
	if req.StylistID != "" && s.catalog.StylistByID(req.StylistID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrStylistNotFound, req.StylistID)
	}

	startsAt, err := s.parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if !startsAt.After(s.now()) {
		return nil, ErrPastDate
	}

	lock, err := s.locks.Acquire(req.Date, req.Time, req.ServiceID)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	// Authoritative re-check against the store, never the cache.
	free, err := s.availability.checkSlot(req.Date, req.Time, req.ServiceID, req.StylistID, "")
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	now := s.now()
	booking := &models.Booking{
		ID:            newBookingID(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		Date:          req.Date,
		Time:          req.Time,
		Duration:      service.Duration,
		StylistID:     req.StylistID,
		StylistName:   s.catalog.StylistName(req.StylistID),
		Price:         service.Price,
		Status:        models.StatusConfirmed,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}
	s.availability.InvalidateDate(booking.Date)
	s.analytics.TrackBooking(booking)

	// Downstream sync is best effort; the booking is already committed.
	if err := s.crm.BookingCreated(BookingEvent{
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		CustomerEmail: booking.CustomerEmail,
		Booking:       *booking,
	}); err != nil {
		log.Printf("[CRM] sync failed for booking %s: %v", booking.ID, err)
	}

	return &BookingResult{Booking: booking, Message: bookingConfirmation(booking)}, nil
}

// CancelBooking marks a booking cancelled and records the reason.
// Cancelled is terminal; cancelling twice fails with ErrAlreadyCancelled.
func (s *BookingService) CancelBooking(id, reason string) (*BookingResult, error) {
	booking, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	booking.Status = models.StatusCancelled
	booking.CancellationReason = reason
	booking.UpdatedAt = s.now()

	if err := s.store.Update(booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	s.availability.InvalidateDate(booking.Date)

	return &BookingResult{Booking: booking, Message: cancellationConfirmation(booking)}, nil
}

// RescheduleBooking moves a booking to a new date/time after validating
// the destination slot. Only the destination slot is guarded; the source
// slot simply frees up once the move commits.
func (s *BookingService) RescheduleBooking(id, newDate, newTime string) (*BookingResult, error) {
	booking, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if _, err := s.parseDateTime(newDate, newTime); err != nil {
		return nil, err
	}

	lock, err := s.locks.Acquire(newDate, newTime, booking.ServiceID)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	// The booking being moved must not collide with itself.
	free, err := s.availability.checkSlot(newDate, newTime, booking.ServiceID, booking.StylistID, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	oldDate, oldTime := booking.Date, booking.Time
	booking.Date = newDate
	booking.Time = newTime
	booking.UpdatedAt = s.now()

	if err := s.store.Update(booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	s.availability.InvalidateDate(oldDate)
	s.availability.InvalidateDate(newDate)

	return &BookingResult{Booking: booking, Message: rescheduleConfirmation(booking, oldDate, oldTime)}, nil
}

// GetBooking looks up a booking by id.
func (s *BookingService) GetBooking(id string) (*models.Booking, error) {
	return s.store.GetByID(id)
}

// GetCustomerBookings lists every booking for a customer phone number.
func (s *BookingService) GetCustomerBookings(phone string) ([]models.Booking, error) {
	return s.store.ListByPhone(phone)
}

func (s *BookingService) parseDateTime(date, clock string) (time.Time, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}
	minutes, err := utils.ParseClock(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, time.Local), nil
}

func newBookingID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "BK" + raw[:10]
}
