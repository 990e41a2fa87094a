package appointment

import (
	"context"
	"errors"
	"math"
	"time"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/models"
	"github.com/docpoint/doctor-scheduler/internal/notify"
)

// In-memory Repository standing in for Postgres. CreateAppointment applies
// the same occupancy rules the partial unique indexes enforce, so the
// check-then-act race surface behaves like production.
type fakeRepo struct {
	doctors      map[uint]*models.Doctor
	users        map[uint]*models.User
	appointments []*models.Appointment

	nextID    uint
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		doctors: map[uint]*models.Doctor{},
		users:   map[uint]*models.User{},
	}
}

func (r *fakeRepo) addDoctor(id uint, status string, hoursStart, hoursEnd string) *models.Doctor {
	doc := &models.Doctor{
		ID:         id,
		FullName:   "Doctor",
		Status:     status,
		HoursStart: hoursStart,
		HoursEnd:   hoursEnd,
	}
	r.doctors[id] = doc
	return doc
}

func (r *fakeRepo) addUser(id uint, email string) *models.User {
	u := &models.User{ID: id, Email: email}
	r.users[id] = u
	return u
}

func (r *fakeRepo) add(ap *models.Appointment) *models.Appointment {
	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, ap)
	return ap
}

func (r *fakeRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	doc, ok := r.doctors[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return doc, nil
}

func (r *fakeRepo) RecalculateDoctorRating(_ context.Context, doctorID uint) error {
	var sum, count int
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.ReviewRating != nil {
			sum += *ap.ReviewRating
			count++
		}
	}

	doc, ok := r.doctors[doctorID]
	if !ok {
		return errors.New("record not found")
	}

	if count == 0 {
		doc.Rating = 0
		doc.TotalReviews = 0
		return nil
	}

	doc.Rating = math.Round(float64(sum)/float64(count)*10) / 10
	doc.TotalReviews = count
	return nil
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(ap)
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func (r *fakeRepo) HasDoctorSlot(_ context.Context, doctorID uint, date time.Time, hm string) (bool, error) {
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && sameDay(ap.Date, date) && ap.Time == hm &&
			domain.Occupies(domain.Status(ap.Status)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) HasUserSlot(_ context.Context, userID uint, date time.Time, hm string) (bool, error) {
	for _, ap := range r.appointments {
		if ap.UserID == userID && sameDay(ap.Date, date) && ap.Time == hm &&
			domain.Occupies(domain.Status(ap.Status)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetAppointmentByPublicID(_ context.Context, publicID string) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.PublicID == publicID {
			return ap, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, cur := range r.appointments {
		if cur.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) ClaimReview(_ context.Context, appointmentID uint, rating int, comment string, now time.Time) (bool, error) {
	for _, ap := range r.appointments {
		if ap.ID != appointmentID {
			continue
		}
		if ap.ReviewRating != nil {
			return false, nil
		}
		rt := rating
		ap.ReviewRating = &rt
		ap.ReviewComment = comment
		ap.ReviewedAt = &now
		return true, nil
	}
	return false, errors.New("record not found")
}

func (r *fakeRepo) ListOccupiedForDoctor(_ context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID || !domain.Occupies(domain.Status(ap.Status)) {
			continue
		}
		if ap.Date.Before(start) || ap.Date.After(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// Recording notify.Publisher.
type fakePublisher struct {
	events []notify.Event
}

func (p *fakePublisher) Dispatch(ev notify.Event) {
	p.events = append(p.events, ev)
}
