package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lucianoaf8/InnSight/internal/model"
	"github.com/lucianoaf8/InnSight/internal/store"
	"github.com/lucianoaf8/InnSight/pkg/journal"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

// Bootstrap applies the schema so a fresh database is immediately usable.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Entries() store.Entries       { return &entries{db: s.db} }
func (s *pgStore) Intentions() store.Intentions { return &intentions{db: s.db} }

func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
func (s *pgStore) Close() error                   { return s.db.Close() }

// --- Entries ---

type entries struct{ db *sql.DB }

func (e *entries) Create(ctx context.Context, in *journal.Entry) (*journal.Entry, error) {
	out := *in
	if out.EntryID == "" {
		out.EntryID = uuid.New().String()
	}
	var created time.Time
	row := e.db.QueryRowContext(ctx, `
        INSERT INTO mood_entries (entry_id, user_id, entry_date, entry_time, period, emojis, journal)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING creation_time
    `, out.EntryID, out.UserID, out.Date, out.Time, string(out.Period), out.Emojis, out.Journal)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (e *entries) ListByUser(ctx context.Context, userID string) ([]journal.Entry, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT entry_id, entry_date, entry_time, period, emojis, journal, creation_time
        FROM mood_entries WHERE user_id = $1
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
	var created time.Time
	row := i.db.QueryRowContext(ctx, `
        INSERT INTO daily_intentions (user_id, intention_date, intention)
        VALUES ($1,$2,$3)
        ON CONFLICT (user_id, intention_date) DO UPDATE SET intention = EXCLUDED.intention
        RETURNING creation_time
    `, out.UserID, out.Date, out.Intention)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (i *intentions) GetForDate(ctx context.Context, userID, date string) (*journal.Intention, error) {
	var out journal.Intention
	out.UserID = userID
	row := i.db.QueryRowContext(ctx, `
        SELECT intention_date, intention, creation_time
        FROM daily_intentions WHERE user_id = $1 AND intention_date = $2
    `, userID, date)
	if err := row.Scan(&out.Date, &out.Intention, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS mood_entries (
    entry_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    entry_date    TEXT NOT NULL,
    entry_time    TEXT NOT NULL,
    period        TEXT NOT NULL,
    emojis        TEXT NOT NULL DEFAULT '',
    journal       TEXT NOT NULL DEFAULT '',
    creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_mood_entries_user_date
    ON mood_entries(user_id, entry_date);

CREATE TABLE IF NOT EXISTS daily_intentions (
    user_id        TEXT NOT NULL,
    intention_date TEXT NOT NULL,
    intention      TEXT NOT NULL DEFAULT '',
    creation_time  TIMESTAMPTZ NOT NULL DEFAULT now(),

    PRIMARY KEY (user_id, intention_date)
);
`
