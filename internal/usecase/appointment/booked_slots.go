package appointment

import (
	"context"
	"time"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/dto"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
)

type ListBookedSlots struct {
	repo domain.Repository
}

func NewListBookedSlots(repo domain.Repository) *ListBookedSlots {
	return &ListBookedSlots{repo: repo}
}

// Execute returns the occupied (date, time) pairs for a doctor over the
// same default range the availability endpoint serves.
func (uc *ListBookedSlots) Execute(
	ctx context.Context,
	doctorID uint,
	from time.Time,
) ([]dto.BookedSlotDTO, error) {

	if _, err := uc.repo.GetDoctorByID(ctx, doctorID); err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	rangeStart := time.Date(
		from.Year(), from.Month(), from.Day(),
		0, 0, 0, 0,
		from.Location(),
	)
	rangeEnd := rangeStart.AddDate(0, 0, DefaultRangeDays)

	taken, err := uc.repo.ListOccupiedForDoctor(ctx, doctorID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookedSlotDTO, 0, len(taken))
	for _, ap := range taken {
		out = append(out, dto.BookedSlotDTO{
			Date: ap.Date.Format("2006-01-02"),
			Time: ap.Time,
		})
	}

	return out, nil
}
