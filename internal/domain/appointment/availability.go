package appointment

import (
	"time"

	"github.com/docpoint/doctor-scheduler/internal/models"
)

const dateLayout = "2006-01-02"

type DayAvailability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// ComputeAvailability walks every calendar day from rangeStart to rangeEnd
// inclusive and returns, per day, the free slots within the working-hours
// grid. Occupancy is decided per calendar date, so callers must hand in
// appointments already normalized to the range's location.
//
// Any appointment in taken occupies its slot regardless of status; callers
// choose the policy by pre-filtering, and the booking flow feeds both
// pending and confirmed here. Days with no free slot are omitted entirely.
func ComputeAvailability(
	hours WorkingHours,
	taken []models.Appointment,
	rangeStart time.Time,
	rangeEnd time.Time,
) []DayAvailability {

	occupiedByDay := make(map[string]map[string]struct{})
	for _, ap := range taken {
		day := ap.Date.Format(dateLayout)
		if occupiedByDay[day] == nil {
			occupiedByDay[day] = make(map[string]struct{})
		}
		occupiedByDay[day][ap.Time] = struct{}{}
	}

	first := startOfDay(rangeStart)
	last := startOfDay(rangeEnd)

	out := []DayAvailability{}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := d.Format(dateLayout)

		slots := GenerateSlots(
			hours.Start,
			hours.End,
			DefaultSlotInterval,
			occupiedByDay[day],
		)

		if len(slots) == 0 {
			continue
		}

		out = append(out, DayAvailability{
			Date:  day,
			Slots: slots,
		})
	}

	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
