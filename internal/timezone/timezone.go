package timezone

import "time"

// Dates and slot labels are wall-clock values in the clinic's timezone;
// everything that compares them has to agree on one location.
const DefaultTimezone = "Europe/Istanbul"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate reads a YYYY-MM-DD value as midnight in tz.
func ParseDate(tz string, s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location(tz))
}

// ValidSlotLabel reports whether s is a well-formed HH:MM label.
func ValidSlotLabel(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
