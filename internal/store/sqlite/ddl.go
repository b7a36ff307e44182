package sqlite

const schema = `
CREATE TABLE IF NOT EXISTS mood_entries (
    entry_id      TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    entry_date    TEXT NOT NULL,
    entry_time    TEXT NOT NULL,
    period        TEXT NOT NULL,
    emojis        TEXT NOT NULL DEFAULT '',
    journal       TEXT NOT NULL DEFAULT '',
    creation_time TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_mood_entries_user_date
    ON mood_entries(user_id, entry_date);

CREATE TABLE IF NOT EXISTS daily_intentions (
    user_id        TEXT NOT NULL,
    intention_date TEXT NOT NULL,
    intention      TEXT NOT NULL DEFAULT '',
    creation_time  TIMESTAMP NOT NULL,

    PRIMARY KEY (user_id, intention_date)
);
`
