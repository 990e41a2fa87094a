package appointment

import (
	"context"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/notify"
	"github.com/docpoint/doctor-scheduler/internal/timezone"
)

type UpdateStatus struct {
	repo   domain.Repository
	notify notify.Publisher
	tz     string
}

func NewUpdateStatus(
	repo domain.Repository,
	publisher notify.Publisher,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		notify: publisher,
		tz:     tz,
	}
}

// Execute applies an authorized status transition. Confirming dispatches
// the review request at most once per appointment; the delivery worker
// records the sent flag after the mail actually goes out, and a failed
// send never rolls the status back.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	newStatus domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)

	switch newStatus {
	case domain.StatusConfirmed:
		if err := domain.Confirm(ap, now); err != nil {
			return nil, err
		}

	case domain.StatusCancelled:
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}

	default:
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if newStatus == domain.StatusConfirmed && !ap.ReviewEmailSent {
		uc.notify.Dispatch(notify.Event{
			Kind:           notify.KindReviewRequest,
			Recipient:      ap.User.Email,
			UserID:         ap.UserID,
			AppointmentID:  ap.ID,
			AppointmentRef: ap.PublicID,
			DoctorName:     ap.Doctor.FullName,
			MarkSent:       true,
		})
	}

	return ap, nil
}
