// Package timeline arranges a flat entry list into the day-grouped,
// reverse-chronological shape the history view renders.
package timeline

import (
	"sort"

	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// Group is one calendar day of entries, most recent time-of-day first.
type Group struct {
	Date    string          `json:"date"`
	Entries []journal.Entry `json:"entries"`
}

// GroupByDate groups entries by exact date-string equality and orders
// groups descending by date and entries within a group descending by
// time. The date is treated as an opaque key; no timezone normalization
// happens here. The input slice is not mutated, so grouping the same
// list twice yields identical output.
func GroupByDate(entries []journal.Entry) []Group {
	byDate := make(map[string][]journal.Entry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	groups := make([]Group, 0, len(byDate))
	for date, es := range byDate {
		sort.SliceStable(es, func(i, j int) bool { return es[i].Time > es[j].Time })
		groups = append(groups, Group{Date: date, Entries: es})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

// LimitDays truncates the group list to the most recent n days. It is the
// display policy layered on top of grouping: n <= 0 means no limit.
func LimitDays(groups []Group, n int) []Group {
	if n <= 0 || len(groups) <= n {
		return groups
	}
	return groups[:n]
}
