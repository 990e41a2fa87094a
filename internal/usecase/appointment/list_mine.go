package appointment

import (
	"context"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID,
			PublicID:       ap.PublicID,
			Date:           ap.Date.Format("2006-01-02"),
			Time:           ap.Time,
			Status:         ap.Status,
			DoctorName:     ap.Doctor.FullName,
			Specialization: ap.Doctor.Specialization,
			ReviewRating:   ap.ReviewRating,
		})
	}

	return out, nil
}
