package history

import (
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordFillsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)

	entry := &Entry{Command: "spawn_actor", Status: "ok", DurationMs: 12}
	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if !strings.HasPrefix(entry.ID, "cmd_") {
		t.Errorf("ID = %q, want cmd_ prefix", entry.ID)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt not filled in")
	}
}

func TestStore_RecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().Add(-time.Minute)
	commands := []string{"create_blueprint", "compile_blueprint", "spawn_blueprint_actor"}
	for i, cmd := range commands {
		entry := &Entry{
			Command:   cmd,
			Status:    "ok",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record(%s) error = %v", cmd, err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent() returned %d entries, want 3", len(entries))
	}
	if entries[0].Command != "spawn_blueprint_actor" {
		t.Errorf("entries[0] = %s, want newest first", entries[0].Command)
	}
	if entries[2].Command != "create_blueprint" {
		t.Errorf("entries[2] = %s, want oldest last", entries[2].Command)
	}

	t.Run("limit respected", func(t *testing.T) {
		entries, err := store.Recent(2)
		if err != nil {
			t.Fatalf("Recent(2) error = %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("Recent(2) returned %d entries", len(entries))
		}
	})

	t.Run("non-positive limit defaults", func(t *testing.T) {
		entries, err := store.Recent(0)
		if err != nil {
			t.Fatalf("Recent(0) error = %v", err)
		}
		if len(entries) != 3 {
			t.Errorf("Recent(0) returned %d entries, want all 3 under default limit", len(entries))
		}
	})
}

func TestStore_Counts(t *testing.T) {
	store := newTestStore(t)

	for _, status := range []string{"ok", "ok", "error"} {
		entry := &Entry{Command: "delete_actor", Status: status}
		if status == "error" {
			entry.Error = "actor not found"
		}
		if err := store.Record(entry); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	total, failed, err := store.Counts()
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestStore_CountsEmpty(t *testing.T) {
	store := newTestStore(t)

	total, failed, err := store.Counts()
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if total != 0 || failed != 0 {
		t.Errorf("Counts() = %d/%d on empty store, want 0/0", total, failed)
	}
}

func TestStore_Prune(t *testing.T) {
	store := newTestStore(t)

	old := &Entry{Command: "get_actors_in_level", Status: "ok", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := &Entry{Command: "get_project_info", Status: "ok"}
	for _, e := range []*Entry{old, fresh} {
		if err := store.Record(e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	removed, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune() removed %d entries, want 1", removed)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Command != "get_project_info" {
		t.Errorf("surviving entries = %v, want only the fresh one", entries)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if err := store.Record(&Entry{Command: "create_umg_widget_blueprint", Status: "ok"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore() reopen error = %v", err)
	}
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Command != "create_umg_widget_blueprint" {
		t.Errorf("entries after reopen = %v, want the recorded command", entries)
	}
}
