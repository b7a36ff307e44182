package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/store"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// New opens a SQLite-backed store at the given path.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wires a store over an existing connection (used by tests and
// the factory).
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Entries() store.Entries       { return &entries{db: s.db} }
func (s *sqliteStore) Intentions() store.Intentions { return &intentions{db: s.db} }

func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *sqliteStore) Close() error                   { return s.db.Close() }

// --- Entries ---

type entries struct{ db *sql.DB }

func (e *entries) Create(ctx context.Context, in *journal.Entry) (*journal.Entry, error) {
	out := *in
	if out.EntryID == "" {
		out.EntryID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()

	_, err := e.db.ExecContext(ctx, `
        INSERT INTO mood_entries (entry_id, user_id, entry_date, entry_time, period, emojis, journal, creation_time)
        VALUES (?,?,?,?,?,?,?,?)
    `, out.EntryID, out.UserID, out.Date, out.Time, string(out.Period), out.Emojis, out.Journal, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *entries) ListByUser(ctx context.Context, userID string) ([]journal.Entry, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT entry_id, entry_date, entry_time, period, emojis, journal, creation_time
        FROM mood_entries WHERE user_id = ?
        ORDER BY entry_date DESC, entry_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		var en journal.Entry
		var period string
		en.UserID = userID
		if err := rows.Scan(&en.EntryID, &en.Date, &en.Time, &period, &en.Emojis, &en.Journal, &en.CreationTime); err != nil {
			return nil, err
		}
		en.Period = journal.Period(period)
		out = append(out, en)
	}
	return out, rows.Err()
}

// --- Intentions ---

type intentions struct{ db *sql.DB }

func (i *intentions) Upsert(ctx context.Context, in *journal.Intention) (*journal.Intention, error) {
	out := *in
	out.CreationTime = time.Now().UTC()

	_, err := i.db.ExecContext(ctx, `
        INSERT INTO daily_intentions (user_id, intention_date, intention, creation_time)
        VALUES (?,?,?,?)
        ON CONFLICT (user_id, intention_date) DO UPDATE SET intention = excluded.intention
    `, out.UserID, out.Date, out.Intention, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *intentions) GetForDate(ctx context.Context, userID, date string) (*journal.Intention, error) {
	var out journal.Intention
	out.UserID = userID
	row := i.db.QueryRowContext(ctx, `
        SELECT intention_date, intention, creation_time
        FROM daily_intentions WHERE user_id = ? AND intention_date = ?
    `, userID, date)
	if err := row.Scan(&out.Date, &out.Intention, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
