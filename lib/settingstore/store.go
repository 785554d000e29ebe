package settingstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

const Schema = `
CREATE TABLE IF NOT EXISTS keyval (
	key TEXT NOT NULL PRIMARY KEY,
	value TEXT NOT NULL
);
`

const settingsKey = "vexscout:settings"

// Store persists the one Settings document under a single namespaced
// key. there is no locking and no version token: concurrent writers
// (multiple processes on the same file) race and the last save wins.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	_, err := db.Exec(Schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: db}, nil
}

// Load never fails: a missing row, an unreadable db or an unparseable
// document all degrade to the default document.
func (s Store) Load(ctx context.Context) Settings {
	var raw string
	err := s.db.QueryRowContext(
		ctx,
		"SELECT value FROM keyval WHERE key = ?",
		settingsKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return DefaultSettings()
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to read settings, using defaults", "err", err)
		return DefaultSettings()
	}

	var settings Settings
	err = json.Unmarshal([]byte(raw), &settings)
	if err != nil {
		slog.WarnContext(ctx, "stored settings are corrupt, using defaults", "err", err)
		return DefaultSettings()
	}
	settings.normalize()
	return settings
}

// Save is best-effort, failures are logged and swallowed so a full
// quota or a readonly db never takes down the caller.
func (s Store) Save(ctx context.Context, settings Settings) {
	raw, err := json.Marshal(settings)
	if err != nil {
		slog.WarnContext(ctx, "failed to marshal settings", "err", err)
		return
	}
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO keyval (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		settingsKey, string(raw),
	)
	if err != nil {
		slog.WarnContext(ctx, "failed to save settings", "err", err)
	}
}

// Mutate runs one load-mutate-save unit and returns the saved document.
func (s Store) Mutate(ctx context.Context, fn func(*Settings)) Settings {
	settings := s.Load(ctx)
	fn(&settings)
	settings.normalize()
	s.Save(ctx, settings)
	return settings
}

// credential-presence policy lives here so every fetcher asks the same
// question the same way.
func (s Store) HasCredential(ctx context.Context) bool {
	return s.Credential(ctx) != ""
}

func (s Store) Credential(ctx context.Context) string {
	return s.Load(ctx).ApiToken
}
