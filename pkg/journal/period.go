package journal

import (
	"strconv"
	"strings"
)

// Period is the coarse time-of-day bucket attached to an entry.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// PeriodOf derives the period bucket from a "15:04" time string.
// Morning is 05:00-11:59 and afternoon is 12:00-16:59; everything else,
// including the 00:00-04:59 window, is evening. There is deliberately no
// separate "night" bucket. Strings that do not parse fall through to
// evening, keeping the function total.
func PeriodOf(hhmm string) Period {
	h, ok := hourOf(hhmm)
	switch {
	case ok && h >= 5 && h < 12:
		return PeriodMorning
	case ok && h >= 12 && h < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// PeriodOfHour buckets a clock hour (0-23) the same way as PeriodOf.
func PeriodOfHour(hour int) Period {
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

func hourOf(hhmm string) (int, bool) {
	h, _, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return 0, false
	}
	return n, true
}

// Valid reports whether p is one of the three known buckets.
func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}
