package appointment

import (
	"time"

	"github.com/docpoint/doctor-scheduler/internal/httperr"
	"github.com/docpoint/doctor-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

// Cancel is allowed for pending and confirmed appointments, but only while
// the appointment instant is still in the future.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if !SlotInstant(ap.Date, ap.Time, now.Location()).After(now) {
		return httperr.ErrBusiness("too_late")
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// SlotInstant combines a calendar date and an HH:MM label into a wall-clock
// instant in loc. An unparsable label collapses to midnight.
func SlotInstant(date time.Time, hm string, loc *time.Location) time.Time {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		t = time.Time{}
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	)
}
