package appointment

import (
	"context"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo domain.Repository
	tz   string
}

func NewCancelAppointment(repo domain.Repository, tz string) *CancelAppointment {
	return &CancelAppointment{repo: repo, tz: tz}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	actorRole string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Owners cancel their own; admins cancel anybody's.
	if ap.UserID != actorID && actorRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
