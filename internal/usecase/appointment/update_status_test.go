package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/docpoint/doctor-scheduler/internal/domain/appointment"
	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
)

func seedAppointment(repo *fakeRepo, status domain.Status) *models.Appointment {
	doc := repo.addDoctor(1, models.DoctorStatusApproved, "09:00", "17:00")
	user := repo.addUser(10, "patient@example.com")

	return repo.add(&models.Appointment{
		PublicID: "ref-1",
		DoctorID: doc.ID,
		Doctor:   *doc,
		UserID:   user.ID,
		User:     *user,
		Date:     time.Now().AddDate(0, 0, 3),
		Time:     "10:00",
		Status:   string(status),
	})
}

func TestUpdateStatus_ConfirmDispatchesReviewRequest(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.StatusPending)

	pub := &fakePublisher{}
	uc := NewUpdateStatus(repo, pub, testTZ)

	got, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	require.NotNil(t, got.ConfirmedAt)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "patient@example.com", pub.events[0].Recipient)
	assert.Equal(t, "ref-1", pub.events[0].AppointmentRef)
	assert.True(t, pub.events[0].MarkSent)
}

func TestUpdateStatus_NoSecondReviewRequest(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.StatusPending)
	ap.ReviewEmailSent = true

	pub := &fakePublisher{}
	uc := NewUpdateStatus(repo, pub, testTZ)

	_, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Empty(t, pub.events)
}

func TestUpdateStatus_ConfirmTwiceRejected(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.StatusConfirmed)

	uc := NewUpdateStatus(repo, &fakePublisher{}, testTZ)

	_, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatus_Cancel(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.StatusPending)

	pub := &fakePublisher{}
	uc := NewUpdateStatus(repo, pub, testTZ)

	got, err := uc.Execute(context.Background(), ap.ID, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.Empty(t, pub.events)
}

func TestUpdateStatus_UnknownTarget(t *testing.T) {
	repo := newFakeRepo()
	ap := seedAppointment(repo, domain.StatusPending)

	uc := NewUpdateStatus(repo, &fakePublisher{}, testTZ)

	_, err := uc.Execute(context.Background(), ap.ID, domain.Status("completed"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatus_MissingAppointment(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, &fakePublisher{}, testTZ)

	_, err := uc.Execute(context.Background(), 404, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
