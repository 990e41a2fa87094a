package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// RecalculateDoctorRating recomputes the aggregate from the appointment
// rows in one statement, so two concurrent reviews cannot lose an update.
func (r *AppointmentGormRepository) RecalculateDoctorRating(
	ctx context.Context,
	doctorID uint,
) error {

	return r.db.WithContext(ctx).Exec(`
        UPDATE doctors
        SET rating = sub.avg_rating,
            total_reviews = sub.review_count,
            updated_at = NOW()
        FROM (
            SELECT COALESCE(ROUND(AVG(review_rating)::numeric, 1), 0) AS avg_rating,
                   COUNT(review_rating) AS review_count
            FROM appointments
            WHERE doctor_id = ? AND review_rating IS NOT NULL
        ) AS sub
        WHERE doctors.id = ?
    `, doctorID, doctorID).Error
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case "ux_appointments_doctor_slot":
			return httperr.ErrBusiness("slot_taken")
		case "ux_appointments_user_slot":
			return httperr.ErrBusiness("user_double_booked")
		}
	}

	return err
}

func (r *AppointmentGormRepository) HasDoctorSlot(
	ctx context.Context,
	doctorID uint,
	date time.Time,
	hm string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND date = ? AND slot_time = ? AND status IN ?",
			doctorID,
			date.Format("2006-01-02"),
			hm,
			domain.OccupyingStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) HasUserSlot(
	ctx context.Context,
	userID uint,
	date time.Time,
	hm string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"user_id = ? AND date = ? AND slot_time = ? AND status IN ?",
			userID,
			date.Format("2006-01-02"),
			hm,
			domain.OccupyingStatuses(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("User").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByPublicID(
	ctx context.Context,
	publicID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("User").
		Where("public_id = ?", publicID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Review
// --------------------------------------------------

// ClaimReview attaches a review iff none exists yet. The conditional
// update is the once-per-appointment guard; false means somebody already
// reviewed.
func (r *AppointmentGormRepository) ClaimReview(
	ctx context.Context,
	appointmentID uint,
	rating int,
	comment string,
	now time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND review_rating IS NULL", appointmentID).
		Updates(map[string]any{
			"review_rating":  rating,
			"review_comment": comment,
			"reviewed_at":    now,
		})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Availability / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupiedForDoctor(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("date", "slot_time", "status").
		Where(
			"doctor_id = ? AND status IN ? AND date >= ? AND date <= ?",
			doctorID,
			domain.OccupyingStatuses(),
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
		).
		Order("date ASC, slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("date ASC, slot_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
