package utils

import "time"

// Calendar dates travel through the API as "2006-01-02" strings; times of day
// never matter for trip planning.
const DateLayout = "2006-01-02"

func ParseCalendarDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	// Normalize to midnight UTC so day arithmetic is stable across zones.
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatCalendarDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Mon, 02 Jan 2006")
}

// TripLength returns the inclusive day count for a stay and the matching
// night count (one less than days, never negative). A same-day trip is one
// day and zero nights.
func TripLength(start, end time.Time) (days int, nights int) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return 0, 0
	}
	days = int(end.Sub(start).Hours()/24) + 1
	nights = days - 1
	if nights < 0 {
		nights = 0
	}
	return days, nights
}
