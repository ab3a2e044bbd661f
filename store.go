package main

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// ---------------------------------------------------------------------------
// Local state store: editor drafts and recently opened models
// ---------------------------------------------------------------------------

const storeSchemaVersion = 1

const storeSchemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS drafts (
	model_id   TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	saved_at   TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS recents (
	model_id   TEXT PRIMARY KEY,
	model_type TEXT NOT NULL,
	opened_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_recents_opened ON recents(opened_at);
`

// openStore opens (creating if needed) the local sqlite store.
func openStore(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(storeSchemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	var version int
	err = db.QueryRow(`SELECT version FROM schema_meta LIMIT 1`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, storeSchemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema version: %w", err)
		}
	case err != nil:
		db.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	case version > storeSchemaVersion:
		db.Close()
		return nil, fmt.Errorf("store schema version %d is newer than supported %d", version, storeSchemaVersion)
	}
	return db, nil
}

func saveDraft(db *sql.DB, modelID, content string) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`
		INSERT INTO drafts (model_id, content, saved_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(model_id) DO UPDATE SET content = excluded.content, saved_at = excluded.saved_at
	`, modelID, content)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func loadDraft(db *sql.DB, modelID string) (string, bool, error) {
	if db == nil {
		return "", false, nil
	}
	var content string
	err := db.QueryRow(`SELECT content FROM drafts WHERE model_id = ?`, modelID).Scan(&content)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load draft: %w", err)
	}
	return content, true, nil
}

func deleteDraft(db *sql.DB, modelID string) error {
	if db == nil {
		return nil
	}
	if _, err := db.Exec(`DELETE FROM drafts WHERE model_id = ?`, modelID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// recentModel is one row of the recently-opened list.
type recentModel struct {
	ModelID   string
	ModelType string
	OpenedAt  string
}

func recordRecent(db *sql.DB, modelID, modelType string) error {
	if db == nil {
		return nil
	}
	_, err := db.Exec(`
		INSERT INTO recents (model_id, model_type, opened_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(model_id) DO UPDATE SET model_type = excluded.model_type, opened_at = excluded.opened_at
	`, modelID, modelType)
	if err != nil {
		return fmt.Errorf("record recent: %w", err)
	}
	return nil
}

func listRecents(db *sql.DB, limit int) ([]recentModel, error) {
	if db == nil {
		return nil, nil
	}
	rows, err := db.Query(`
		SELECT model_id, model_type, opened_at FROM recents
		ORDER BY opened_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recents: %w", err)
	}
	defer rows.Close()
	var entries []recentModel
	for rows.Next() {
		var r recentModel
		if err := rows.Scan(&r.ModelID, &r.ModelType, &r.OpenedAt); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		entries = append(entries, r)
	}
	return entries, rows.Err()
}
