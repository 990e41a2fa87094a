package appointment

import (
	"context"
	"time"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
)

// DefaultRangeDays is how far ahead availability is offered when the
// caller gives no range: today through seven days out, inclusive.
const DefaultRangeDays = 7

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	from time.Time,
	days int,
) ([]domain.DayAvailability, error) {

	doc, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	if days <= 0 {
		days = DefaultRangeDays
	}

	rangeStart := time.Date(
		from.Year(), from.Month(), from.Day(),
		0, 0, 0, 0,
		from.Location(),
	)
	rangeEnd := rangeStart.AddDate(0, 0, days)

	taken, err := uc.repo.ListOccupiedForDoctor(ctx, doctorID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAvailability(
		domain.WorkingHours{Start: doc.HoursStart, End: doc.HoursEnd},
		taken,
		rangeStart,
		rangeEnd,
	), nil
}
