package services

import (
	"context"

	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/store"
	"github.com/lucianoaf8/InnSight/pkg/journal"
	"github.com/lucianoaf8/InnSight/pkg/streak"
	"github.com/lucianoaf8/InnSight/pkg/timeline"
)

// JournalService orchestrates mood-entry use cases: logging, listing and
// the derived dashboard view.
type JournalService struct {
	store store.Store
}

func NewJournalService(s store.Store) *JournalService {
	return &JournalService{store: s}
}

// LogMood persists a new entry. Date, time and period default to "now"
// values when the caller omits them; the period is always re-derivable
// from the time, so a missing period is filled rather than rejected.
func (s *JournalService) LogMood(ctx context.Context, req model.LogMoodRequest) (*journal.Entry, error) {
	e := &journal.Entry{
		UserID:  req.UserID,
		Date:    req.Date,
		Time:    req.Time,
		Period:  journal.Period(req.Period),
		Emojis:  req.Emojis,
		Journal: req.Journal,
	}
	if e.Date == "" {
		e.Date = journal.Today()
	}
	if e.Time == "" {
		e.Time = journal.Now()
	}
	if e.Period == "" {
		e.Period = journal.PeriodOf(e.Time)
	}
	return s.store.Entries().Create(ctx, e)
}

// ListEntries returns all entries for the user, newest first.
func (s *JournalService) ListEntries(ctx context.Context, userID string) ([]journal.Entry, error) {
	return s.store.Entries().ListByUser(ctx, userID)
}

// Dashboard fetches the user's entries once and derives both the streak
// and the day-grouped history from the same list. limitDays truncates the
// history to the most recent days unless showAll is set.
func (s *JournalService) Dashboard(ctx context.Context, userID string, limitDays int, showAll bool) (*model.DashboardSummary, error) {
	entries, err := s.store.Entries().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	days := timeline.GroupByDate(entries)
	if !showAll {
		days = timeline.LimitDays(days, limitDays)
	}
	return &model.DashboardSummary{
		Streak: streak.Count(entries),
		Days:   days,
	}, nil
}
