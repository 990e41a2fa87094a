package notify

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/docpoint/doctor-scheduler/internal/models"
)

// Store is the persistence the delivery worker needs: a notification row
// per dispatch, and the sent bookkeeping on the appointment itself.
type Store interface {
	Record(ev Event) (uint, error)
	MarkEmailSent(notificationID uint) error
	MarkReviewEmailSent(appointmentID uint) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Record(ev Event) (uint, error) {
	n := models.Notification{
		UserID:  ev.UserID,
		Type:    string(ev.Kind),
		Title:   "Rate your visit",
		Message: fmt.Sprintf("How was your visit with Dr. %s?", ev.DoctorName),
	}

	if ev.AppointmentID != 0 {
		id := ev.AppointmentID
		n.AppointmentID = &id
	}

	if err := s.db.Create(&n).Error; err != nil {
		return 0, err
	}

	return n.ID, nil
}

func (s *GormStore) MarkEmailSent(notificationID uint) error {
	return s.db.
		Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("is_email_sent", true).Error
}

func (s *GormStore) MarkReviewEmailSent(appointmentID uint) error {
	return s.db.
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Updates(map[string]any{
			"review_email_sent":    true,
			"review_email_sent_at": time.Now(),
		}).Error
}

var _ Store = (*GormStore)(nil)
