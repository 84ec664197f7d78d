package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"connection": {"port": 50001}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var reloaded *LoadedConfig
	w := NewWatcher(path, func(cfg *LoadedConfig) {
		reloaded = cfg
	})

	t.Run("unchanged file", func(t *testing.T) {
		changed, err := w.Changed()
		if err != nil {
			t.Fatalf("Changed() error = %v", err)
		}
		if changed {
			t.Error("Changed() = true for untouched file")
		}
	})

	t.Run("modified file detected and reloaded", func(t *testing.T) {
		if err := os.WriteFile(path, []byte(`{"connection": {"port": 50002}}`), 0o644); err != nil {
			t.Fatal(err)
		}
		// Push the mtime forward in case the filesystem clock is coarse
		future := time.Now().Add(2 * time.Second)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatal(err)
		}

		changed, err := w.Changed()
		if err != nil {
			t.Fatalf("Changed() error = %v", err)
		}
		if !changed {
			t.Fatal("Changed() = false after modification")
		}

		w.check()
		if reloaded == nil {
			t.Fatal("reload callback not invoked")
		}
		if reloaded.Connection.Port != 50002 {
			t.Errorf("reloaded port = %d, want 50002", reloaded.Connection.Port)
		}

		// The reload consumed the change
		changed, _ = w.Changed()
		if changed {
			t.Error("Changed() = true after reload")
		}
	})

	t.Run("broken config keeps previous", func(t *testing.T) {
		if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
			t.Fatal(err)
		}
		future := time.Now().Add(4 * time.Second)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatal(err)
		}

		before := reloaded
		w.check()
		if reloaded != before {
			t.Error("reload callback invoked for unparseable config")
		}
	})
}
