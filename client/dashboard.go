package client

import (
	"context"

	"github.com/lucianoaf8/InnSight/pkg/streak"
	"github.com/lucianoaf8/InnSight/pkg/timeline"
)

// Dashboard is the derived view state a frontend renders: the logging
// streak, today's intention and the day-grouped history.
type Dashboard struct {
	Streak    int              `json:"streak"`
	Intention string           `json:"intention"`
	Days      []timeline.Group `json:"days"`
}

// Dashboard fetches the caller's history and intention and derives the
// dashboard locally. The streak always reflects the full history; days
// limits the groups shown unless showAll is set.
//
// A signed-out client gets the empty dashboard without a network call.
func (c *Client) Dashboard(ctx context.Context, days int, showAll bool) (*Dashboard, error) {
	if !c.Authenticated() {
		return &Dashboard{Days: []timeline.Group{}}, nil
	}

	entries, err := c.Entries(ctx)
	if err != nil {
		return nil, err
	}
	intention, err := c.TodayIntention(ctx)
	if err != nil {
		return nil, err
	}

	groups := timeline.GroupByDate(entries)
	if !showAll {
		groups = timeline.LimitDays(groups, days)
	}
	return &Dashboard{
		Streak:    streak.Count(entries),
		Intention: intention,
		Days:      groups,
	}, nil
}
