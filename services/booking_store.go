package services

import (
	"sort"
	"sync"

	"marusalon-backend/models"
)

// BookingStore owns the set of bookings. All mutation goes through the
// BookingService; the store only guarantees serialized writes and
// consistent reads.
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Update(booking *models.Booking) error
	ListByDate(date string) ([]models.Booking, error)
	ListByPhone(phone string) ([]models.Booking, error)
}

// MemoryBookingStore keeps bookings in process memory: a map by id plus
// a secondary index by date for availability scans. Used when no DB_URL
// is configured and throughout the test suite.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	byDate   map[string]map[string]struct{} // date -> set of booking ids
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{
		bookings: make(map[string]models.Booking),
		byDate:   make(map[string]map[string]struct{}),
	}
}

func (s *MemoryBookingStore) Create(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[booking.ID] = *booking
	s.index(booking.Date, booking.ID)
	return nil
}

func (s *MemoryBookingStore) GetByID(id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

func (s *MemoryBookingStore) Update(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bookings[booking.ID]
	if !ok {
		return ErrBookingNotFound
	}

	// Reschedules move the booking between date buckets.
	if existing.Date != booking.Date {
		if ids, ok := s.byDate[existing.Date]; ok {
			delete(ids, booking.ID)
		}
		s.index(booking.Date, booking.ID)
	}

	s.bookings[booking.ID] = *booking
	return nil
}

func (s *MemoryBookingStore) ListByDate(date string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Booking
	for id := range s.byDate[date] {
		result = append(result, s.bookings[id])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Time < result[j].Time })
	return result, nil
}

func (s *MemoryBookingStore) ListByPhone(phone string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Booking
	for _, booking := range s.bookings {
		if booking.CustomerPhone == phone {
			result = append(result, booking)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Time < result[j].Time
	})
	return result, nil
}

func (s *MemoryBookingStore) index(date, id string) {
	if s.byDate[date] == nil {
		s.byDate[date] = make(map[string]struct{})
	}
	s.byDate[date][id] = struct{}{}
}
