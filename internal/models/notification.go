package models

import "time"

const (
	NotificationReviewRequest           = "REVIEW_REQUEST"
	NotificationAppointmentConfirmation = "APPOINTMENT_CONFIRMATION"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint   `gorm:"index" json:"user_id"`
	Type   string `gorm:"size:40;not null" json:"type"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	AppointmentID *uint `json:"appointment_id"`

	IsRead      bool `gorm:"default:false" json:"is_read"`
	IsEmailSent bool `gorm:"default:false" json:"is_email_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
