package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/notify"
	"github.com/docpoint/doctor-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID uint
	UserID   uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	notify notify.Publisher
	tz     string
}

func NewBookAppointment(
	repo domain.Repository,
	publisher notify.Publisher,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		notify: publisher,
		tz:     tz,
	}
}

// Execute reserves a slot. The slot-held and user-double-booked lookups
// are a fast path only; the partial unique indexes behind
// Repository.CreateAppointment are what actually decide a race, and the
// repository maps their violation back to the same business codes.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil || !timezone.ValidSlotLabel(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	taken, err := uc.repo.HasDoctorSlot(ctx, in.DoctorID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	busy, err := uc.repo.HasUserSlot(ctx, in.UserID, date, in.Time)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, httperr.ErrBusiness("user_double_booked")
	}

	doc, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil || doc.Status != models.DoctorStatusApproved {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	ap := &models.Appointment{
		PublicID: uuid.NewString(),
		DoctorID: doc.ID,
		UserID:   user.ID,
		Date:     date,
		Time:     in.Time,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Best effort; a failed or dropped dispatch never unwinds the booking.
	uc.notify.Dispatch(notify.Event{
		Kind:           notify.KindReviewRequest,
		Recipient:      user.Email,
		UserID:         user.ID,
		AppointmentID:  ap.ID,
		AppointmentRef: ap.PublicID,
		DoctorName:     doc.FullName,
	})

	return ap, nil
}
