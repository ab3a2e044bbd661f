package main

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDraftRoundTrip(t *testing.T) {
	db := testStore(t)
	id := "com.acme.Sensor:1.0.0"

	if _, ok, err := loadDraft(db, id); err != nil || ok {
		t.Fatalf("loadDraft before save: ok=%v err=%v", ok, err)
	}
	if err := saveDraft(db, id, "v1"); err != nil {
		t.Fatalf("saveDraft: %v", err)
	}
	content, ok, err := loadDraft(db, id)
	if err != nil || !ok || content != "v1" {
		t.Fatalf("loadDraft = %q, %v, %v", content, ok, err)
	}

	// saving again overwrites
	if err := saveDraft(db, id, "v2"); err != nil {
		t.Fatalf("saveDraft overwrite: %v", err)
	}
	content, _, _ = loadDraft(db, id)
	if content != "v2" {
		t.Fatalf("content after overwrite = %q, want v2", content)
	}

	if err := deleteDraft(db, id); err != nil {
		t.Fatalf("deleteDraft: %v", err)
	}
	if _, ok, _ := loadDraft(db, id); ok {
		t.Fatal("draft survived delete")
	}
}

func TestRecentsDeduplicate(t *testing.T) {
	db := testStore(t)
	if err := recordRecent(db, "com.acme.Sensor:1.0.0", "Functionblock"); err != nil {
		t.Fatalf("recordRecent: %v", err)
	}
	if err := recordRecent(db, "com.acme.Sensor:1.0.0", "Functionblock"); err != nil {
		t.Fatalf("recordRecent again: %v", err)
	}
	entries, err := listRecents(db, 10)
	if err != nil {
		t.Fatalf("listRecents: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 after duplicate opens", len(entries))
	}
}

func TestRecentsOrderedByLastOpened(t *testing.T) {
	db := testStore(t)
	for _, id := range []string{"a:A:1", "b:B:1", "c:C:1"} {
		if err := recordRecent(db, id, "Datatype"); err != nil {
			t.Fatalf("recordRecent: %v", err)
		}
	}
	// force distinct timestamps; datetime('now') has second granularity
	for i, id := range []string{"a:A:1", "b:B:1", "c:C:1"} {
		if _, err := db.Exec(`UPDATE recents SET opened_at = ? WHERE model_id = ?`,
			fmt.Sprintf("2026-01-0%d", i+1), id); err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}
	entries, err := listRecents(db, 2)
	if err != nil {
		t.Fatalf("listRecents: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want limit 2", len(entries))
	}
	if entries[0].ModelID != "c:C:1" || entries[1].ModelID != "b:B:1" {
		t.Fatalf("order = %q, %q; want most recent first", entries[0].ModelID, entries[1].ModelID)
	}
}

func TestStoreHelpersTolerateNilDB(t *testing.T) {
	if err := saveDraft(nil, "x", "y"); err != nil {
		t.Fatalf("saveDraft(nil): %v", err)
	}
	if _, ok, err := loadDraft(nil, "x"); ok || err != nil {
		t.Fatalf("loadDraft(nil): ok=%v err=%v", ok, err)
	}
	if err := deleteDraft(nil, "x"); err != nil {
		t.Fatalf("deleteDraft(nil): %v", err)
	}
	if err := recordRecent(nil, "x", "y"); err != nil {
		t.Fatalf("recordRecent(nil): %v", err)
	}
	if entries, err := listRecents(nil, 5); entries != nil || err != nil {
		t.Fatalf("listRecents(nil): %v %v", entries, err)
	}
}

func TestStoreRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	db, err := openStore(path)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if _, err := db.Exec(`UPDATE schema_meta SET version = ?`, storeSchemaVersion+1); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	if _, err := openStore(path); err == nil {
		t.Fatal("openStore accepted a newer schema version")
	}
}
