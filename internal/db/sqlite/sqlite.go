package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = time.RFC3339Nano

// Open opens the SQLite database at path and creates the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	if err := CreateSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS polls (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    channel_id TEXT NOT NULL,
    date TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    posted_at TEXT NOT NULL,
    secondary_timestamp TEXT,
    choice TEXT,
    decided_at TEXT,
    reminded_at TEXT,
    created_at TEXT NOT NULL,
    UNIQUE (channel_id, date)
);

CREATE TABLE IF NOT EXISTS identity_mappings (
    ledger_member_id TEXT PRIMARY KEY,
    chat_user_id TEXT NOT NULL,
    comment TEXT,
    created_at TEXT NOT NULL
);
`

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored time %q: %w", value, err)
	}
	return t, nil
}

func parseNullTime(value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := parseTime(value.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
