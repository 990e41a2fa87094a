package appointment

import (
	"context"
	"time"

	"github.com/docpoint/doctor-scheduler/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	RecalculateDoctorRating(
		ctx context.Context,
		doctorID uint,
	) error

	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	HasDoctorSlot(
		ctx context.Context,
		doctorID uint,
		date time.Time,
		hm string,
	) (bool, error)

	HasUserSlot(
		ctx context.Context,
		userID uint,
		date time.Time,
		hm string,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentByPublicID(
		ctx context.Context,
		publicID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Review --------
	ClaimReview(
		ctx context.Context,
		appointmentID uint,
		rating int,
		comment string,
		now time.Time,
	) (bool, error)

	// -------- Availability / listings --------
	ListOccupiedForDoctor(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}
