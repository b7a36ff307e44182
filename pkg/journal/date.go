package journal

import "time"

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// TimeLayout is the time-of-day wire format (24-hour).
const TimeLayout = "15:04"

// ParseDate parses a "2006-01-02" calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseTime parses a "15:04" time-of-day.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// Today returns the current UTC calendar date in wire format.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// Now returns the current UTC time-of-day in wire format.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// DaysBetween returns the whole-day difference between two calendar dates,
// later minus earlier. Both are truncated to midnight UTC first so the
// result is exact across month, year and DST boundaries.
func DaysBetween(earlier, later time.Time) int {
	e := midnightUTC(earlier)
	l := midnightUTC(later)
	return int(l.Sub(e).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
