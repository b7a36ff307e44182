package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "innsight.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &sqliteStore{db: db}
}

func TestEntriesCreateAndList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.Entries().Create(ctx, &journal.Entry{
		UserID:  "user-1",
		Date:    "2025-03-10",
		Time:    "09:30",
		Period:  journal.PeriodMorning,
		Emojis:  "😊,😎",
		Journal: "slept well",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.EntryID)
	require.False(t, created.CreationTime.IsZero())

	_, err = st.Entries().Create(ctx, &journal.Entry{
		UserID: "user-1", Date: "2025-03-10", Time: "21:00", Period: journal.PeriodEvening,
	})
	require.NoError(t, err)
	_, err = st.Entries().Create(ctx, &journal.Entry{
		UserID: "user-1", Date: "2025-03-11", Time: "08:00", Period: journal.PeriodMorning,
	})
	require.NoError(t, err)

	got, err := st.Entries().ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest date first, newest time first within a date
	require.Equal(t, "2025-03-11", got[0].Date)
	require.Equal(t, "21:00", got[1].Time)
	require.Equal(t, "09:30", got[2].Time)
	require.Equal(t, "😊,😎", got[2].Emojis)
	require.Equal(t, journal.PeriodMorning, got[2].Period)
}

func TestEntriesListIsolatesUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Entries().Create(ctx, &journal.Entry{UserID: "user-1", Date: "2025-03-10", Time: "09:00"})
	require.NoError(t, err)
	_, err = st.Entries().Create(ctx, &journal.Entry{UserID: "user-2", Date: "2025-03-10", Time: "10:00"})
	require.NoError(t, err)

	got, err := st.Entries().ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "user-1", got[0].UserID)
}

func TestEntriesListEmptyIsNotNil(t *testing.T) {
	st := newTestStore(t)

	got, err := st.Entries().ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestIntentionsUpsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Intentions().Upsert(ctx, &journal.Intention{
		UserID: "user-1", Date: "2025-03-10", Intention: "be present",
	})
	require.NoError(t, err)

	got, err := st.Intentions().GetForDate(ctx, "user-1", "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, "be present", got.Intention)

	// second save for the same day replaces, not duplicates
	_, err = st.Intentions().Upsert(ctx, &journal.Intention{
		UserID: "user-1", Date: "2025-03-10", Intention: "drink water",
	})
	require.NoError(t, err)

	got, err = st.Intentions().GetForDate(ctx, "user-1", "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, "drink water", got.Intention)
}

func TestIntentionsGetForDateNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Intentions().GetForDate(context.Background(), "user-1", "2025-03-10")
	require.True(t, errors.Is(err, model.ErrNotFound))
}

func TestPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
