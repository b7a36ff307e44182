// Package streak derives the consecutive-day logging streak from a list of
// journal entries.
package streak

import (
	"sort"
	"time"

	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// Count returns the number of consecutive calendar days with at least one
// entry, counted backward from the most recent entry date. A day with
// multiple entries counts once. The walk stops at the first gap larger
// than one day. Entries whose date does not parse are skipped rather than
// aborting the computation.
//
// Count does not anchor the streak to today: a single entry from a month
// ago still yields 1. Use CountAsOf when the streak should reset once the
// user misses a day.
func Count(entries []journal.Entry) int {
	dates := distinctDatesDesc(entries)
	if len(dates) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(dates); i++ {
		if journal.DaysBetween(dates[i], dates[i-1]) != 1 {
			break
		}
		n++
	}
	return n
}

// CountAsOf is the recency-anchored variant: the streak is 0 unless the
// most recent entry falls on the given day or the day before it.
func CountAsOf(entries []journal.Entry, today string) int {
	dates := distinctDatesDesc(entries)
	if len(dates) == 0 {
		return 0
	}
	anchor, err := journal.ParseDate(today)
	if err != nil {
		return 0
	}
	if d := journal.DaysBetween(dates[0], anchor); d < 0 || d > 1 {
		return 0
	}
	return Count(entries)
}

// distinctDatesDesc extracts the set of parseable entry dates, most recent
// first.
func distinctDatesDesc(entries []journal.Entry) []time.Time {
	seen := make(map[string]struct{}, len(entries))
	var dates []time.Time
	for _, e := range entries {
		if _, dup := seen[e.Date]; dup {
			continue
		}
		seen[e.Date] = struct{}{}
		d, err := journal.ParseDate(e.Date)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
