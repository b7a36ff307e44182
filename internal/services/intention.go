package services

import (
	"context"
	"errors"

	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/store"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// IntentionService manages the per-day intention.
type IntentionService struct {
	store store.Store
}

func NewIntentionService(s store.Store) *IntentionService {
	return &IntentionService{store: s}
}

// Today returns the intention for the current day, or the empty string
// when none has been saved yet.
func (s *IntentionService) Today(ctx context.Context, userID string) (string, error) {
	in, err := s.store.Intentions().GetForDate(ctx, userID, journal.Today())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return in.Intention, nil
}

// Save upserts the intention for the current day, overwriting any earlier
// value.
func (s *IntentionService) Save(ctx context.Context, userID, text string) error {
	_, err := s.store.Intentions().Upsert(ctx, &journal.Intention{
		UserID:    userID,
		Date:      journal.Today(),
		Intention: text,
	})
	return err
}
