package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
)

func TestConfirm_FromPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Confirm(ap, now))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	now := time.Now()

	for _, status := range []Status{StatusConfirmed, StatusCancelled} {
		ap := &models.Appointment{Status: string(status)}
		err := Confirm(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "status %s", status)
		assert.Equal(t, string(status), ap.Status)
	}
}

func TestCancel_BeforeSlotInstant(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{
			Status: string(status),
			Date:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Time:   "10:00",
		}

		require.NoError(t, Cancel(ap, now), "status %s", status)
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
	}
}

func TestCancel_TooLateOncePassed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{
		Status: string(StatusPending),
		Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:   "11:30",
	}

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "too_late"))
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestCancel_RejectsCancelled(t *testing.T) {
	ap := &models.Appointment{
		Status: string(StatusCancelled),
		Date:   time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		Time:   "09:00",
	}

	err := Cancel(ap, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestSlotInstant(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	got := SlotInstant(date, "14:30", time.UTC)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC), got)

	// Garbage labels collapse to midnight rather than failing.
	got = SlotInstant(date, "not-a-time", time.UTC)
	assert.Equal(t, date, got)
}

func TestOccupies(t *testing.T) {
	assert.True(t, Occupies(StatusPending))
	assert.True(t, Occupies(StatusConfirmed))
	assert.False(t, Occupies(StatusCancelled))
}
