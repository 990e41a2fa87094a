package dto

type AppointmentListDTO struct {
	ID             uint   `json:"id"`
	PublicID       string `json:"public_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
	DoctorName     string `json:"doctor_name"`
	Specialization string `json:"specialization"`
	ReviewRating   *int   `json:"review_rating"`
}

type BookedSlotDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
