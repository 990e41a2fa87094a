package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// External reference used in review links and notifications.
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	DoctorID uint   `gorm:"index" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// Calendar date plus HH:MM slot label. The pair identifies the
	// bookable instant; no absolute timestamp is stored.
	Date time.Time `gorm:"type:date" json:"date"`
	Time string    `gorm:"column:slot_time;size:5" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ReviewRating  *int       `json:"review_rating"`
	ReviewComment string     `gorm:"size:500" json:"review_comment"`
	ReviewedAt    *time.Time `json:"reviewed_at"`

	ReviewEmailSent   bool       `gorm:"default:false" json:"review_email_sent"`
	ReviewEmailSentAt *time.Time `json:"review_email_sent_at"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
