package models

import "time"

const (
	DoctorStatusPending  = "pending"
	DoctorStatusApproved = "approved"
	DoctorStatusRejected = "rejected"
)

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	FullName       string `gorm:"size:100;not null" json:"full_name"`
	Email          string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Specialization string `gorm:"size:100;not null" json:"specialization"`
	Experience     string `gorm:"size:255" json:"experience"`
	Education      string `gorm:"size:255" json:"education"`
	Phone          string `gorm:"size:20" json:"phone"`
	PhotoURL       string `gorm:"size:255" json:"photo_url"`

	Street       string  `gorm:"size:255" json:"street"`
	CityCode     string  `gorm:"size:10" json:"city_code"`
	CityName     string  `gorm:"size:100" json:"city_name"`
	DistrictCode string  `gorm:"size:10" json:"district_code"`
	DistrictName string  `gorm:"size:100" json:"district_name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`

	// Comma-separated subset of Mon..Sun. Informational only: the slot
	// generator does not filter days by it.
	AvailableDays string `gorm:"size:60" json:"available_days"`

	HoursStart string `gorm:"size:5" json:"hours_start"`
	HoursEnd   string `gorm:"size:5" json:"hours_end"`

	ConsultationFee float64 `json:"consultation_fee"`

	Status       string  `gorm:"size:20;default:'pending'" json:"status"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	TotalReviews int     `gorm:"default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
