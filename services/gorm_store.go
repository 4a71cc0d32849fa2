package services

import (
	"errors"

	"gorm.io/gorm"

	"marusalon-backend/models"
)

// GormBookingStore persists bookings in postgres. Same contract as the
// in-memory store; selected at startup when DB_URL is configured.
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) Create(booking *models.Booking) error {
	return s.db.Create(booking).Error
}

func (s *GormBookingStore) GetByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) Update(booking *models.Booking) error {
	result := s.db.Save(booking)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *GormBookingStore) ListByDate(date string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("date = ?", date).Order("time").Find(&bookings).Error
	return bookings, err
}

func (s *GormBookingStore) ListByPhone(phone string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Where("customer_phone = ?", phone).Order("date, time").Find(&bookings).Error
	return bookings, err
}
