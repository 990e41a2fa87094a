package appointment

import "time"

const (
	DefaultHoursStart = "09:00"
	DefaultHoursEnd   = "17:00"

	DefaultSlotInterval = 30 * time.Minute
)

// WorkingHours is a doctor's daily booking window, both bounds as HH:MM.
// Zero or malformed bounds fall back to the defaults above.
type WorkingHours struct {
	Start string
	End   string
}

// GenerateSlots produces the ascending HH:MM grid start + k*interval within
// [start, end), minus the occupied labels. start >= end yields an empty
// grid. Pure; safe to call repeatedly.
func GenerateSlots(
	start string,
	end string,
	interval time.Duration,
	occupied map[string]struct{},
) []string {

	if interval <= 0 {
		interval = DefaultSlotInterval
	}

	s := parseHM(start, DefaultHoursStart)
	e := parseHM(end, DefaultHoursEnd)

	slots := []string{}

	for cur := s; cur.Before(e); cur = cur.Add(interval) {
		label := cur.Format("15:04")
		if _, taken := occupied[label]; taken {
			continue
		}
		slots = append(slots, label)
	}

	return slots
}

// parseHM anchors an HH:MM label on a fixed reference date so labels can be
// compared and stepped as instants.
func parseHM(hm string, fallback string) time.Time {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		t, _ = time.Parse("15:04", fallback)
	}

	return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
}
