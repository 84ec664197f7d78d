package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/unrealmcp/unrealmcp/internal/logger"
)

// ReloadFunc is called with the freshly loaded config when the file changes
type ReloadFunc func(*LoadedConfig)

// Watcher periodically checks the config file for modification and reloads it.
// Covers the development hot-reload workflow; disabled by default.
type Watcher struct {
	path     string
	onReload ReloadFunc

	cron    *cron.Cron
	mu      sync.Mutex
	modTime time.Time
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, onReload ReloadFunc) *Watcher {
	w := &Watcher{
		path:     path,
		onReload: onReload,
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
	}
	return w
}

// Start begins polling the config file every interval
func (w *Watcher) Start(interval time.Duration) error {
	if w.cron != nil {
		return fmt.Errorf("watcher already started")
	}

	w.cron = cron.New()
	spec := fmt.Sprintf("@every %s", interval)
	if _, err := w.cron.AddFunc(spec, w.check); err != nil {
		w.cron = nil
		return fmt.Errorf("failed to schedule config watcher: %w", err)
	}
	w.cron.Start()
	logger.Info("Config watcher started (path=%s, interval=%s)", w.path, interval)
	return nil
}

// Stop halts polling; in-flight reloads complete first
func (w *Watcher) Stop() {
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
		w.cron = nil
	}
}

// Changed reports whether the file has been modified since the last reload
// without triggering a reload. Backs the check_config_changes tool.
func (w *Watcher) Changed() (bool, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		return false, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return info.ModTime().After(w.modTime), nil
}

// check is the cron callback: stat, compare, reload
func (w *Watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		logger.Warn("Config watcher: cannot stat %s: %v", w.path, err)
		return
	}

	w.mu.Lock()
	changed := info.ModTime().After(w.modTime)
	if changed {
		w.modTime = info.ModTime()
	}
	w.mu.Unlock()

	if !changed {
		return
	}

	cfg, err := Load(w.path)
	if err != nil {
		logger.Error("Config watcher: reload failed, keeping previous config: %v", err)
		return
	}

	logger.Info("Config reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
