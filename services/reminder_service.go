// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"marusalon-backend/models"
	"marusalon-backend/utils"
)

// ReminderService sends next-day appointment reminders over the message
// gateway. The reminder log is persisted when a database is configured.
type ReminderService struct {
	store  BookingStore
	sender MessageSender
	db     *gorm.DB // optional, reminder log only
}

func NewReminderService(store BookingStore, sender MessageSender, db *gorm.DB) *ReminderService {
	return &ReminderService{store: store, sender: sender, db: db}
}

// StartScheduler registers the daily 9 AM reminder run on the given
// cron instance.
func (s *ReminderService) StartScheduler(c *cron.Cron) {
	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every customer with a confirmed booking
// tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format(utils.DateLayout)
	bookings, err := s.store.ListByDate(tomorrow)
	if err != nil {
		log.Printf("Failed to fetch bookings for %s: %v", tomorrow, err)
		return
	}

	for _, booking := range bookings {
		if booking.Status != models.StatusConfirmed {
			continue
		}
		s.sendReminder(booking)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	message := fmt.Sprintf(
		"Hi %s! A reminder of your %s appointment tomorrow (%s) at %s with %s. See you then! Reply CANCEL %s if you can't make it.",
		booking.CustomerName, booking.ServiceName, booking.Date,
		booking.Time, booking.StylistName, booking.ID,
	)

	status := "sent"
	errorMsg := ""
	if err := s.sender.SendText(booking.CustomerPhone, message); err != nil {
		status = "failed"
		errorMsg = err.Error()
	}

	if s.db == nil {
		return
	}
	reminderLog := models.ReminderLog{
		BookingID:     booking.ID,
		CustomerPhone: booking.CustomerPhone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       "whatsapp",
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %s: %v", booking.ID, err)
	}
}
