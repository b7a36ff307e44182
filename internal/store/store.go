package store

import (
	"context"

	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (sqlite, postgres).
type Store interface {
	Entries() Entries
	Intentions() Intentions

	// Ping verifies connectivity for health reporting.
	Ping(ctx context.Context) error
	Close() error
}

type Entries interface {
	Create(ctx context.Context, e *journal.Entry) (*journal.Entry, error)
	ListByUser(ctx context.Context, userID string) ([]journal.Entry, error)
}

type Intentions interface {
	// Upsert writes the intention for (user, date), overwriting any
	// previous value for that day.
	Upsert(ctx context.Context, in *journal.Intention) (*journal.Intention, error)
	// GetForDate returns model.ErrNotFound when no intention exists.
	GetForDate(ctx context.Context, userID, date string) (*journal.Intention, error)
}
