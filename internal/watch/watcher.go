package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

// DefaultDebounce coalesces bursts of filesystem events into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Trigger reasons reported to the metrics recorder.
const (
	ReasonConfig  = "config"
	ReasonContent = "content"
)

// RebuildFunc regenerates the site from cfg.
type RebuildFunc func(ctx context.Context, cfg *config.Config) error

// Watcher monitors the configuration file and the auto-sidebar directories
// and calls the rebuild function once changes settle.
type Watcher struct {
	configPath string
	debounce   time.Duration
	recorder   metrics.Recorder
	rebuild    RebuildFunc
	fs         *fsnotify.Watcher

	mu             sync.Mutex
	cfg            *config.Config
	snapshot       string
	contentRoots   []string
	timer          *time.Timer
	configPending  bool
	contentPending bool

	runMu    sync.Mutex // serializes rebuilds
	stopChan chan struct{}
	stopOnce sync.Once
	started  bool
	done     chan struct{}
}

// New creates a watcher for the configuration at configPath, currently
// loaded as cfg.
func New(configPath string, cfg *config.Config, rebuild RebuildFunc) (*Watcher, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		configPath: abs,
		debounce:   DefaultDebounce,
		recorder:   metrics.NoopRecorder{},
		rebuild:    rebuild,
		fs:         fw,
		cfg:        cfg,
		snapshot:   cfg.Snapshot(),
		stopChan:   make(chan struct{}),
		done:       make(chan struct{}),
	}, nil
}

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithRecorder injects a metrics recorder. A nil recorder restores the noop one.
func (w *Watcher) WithRecorder(r metrics.Recorder) *Watcher {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	w.recorder = r
	return w
}

// Start begins watching. It returns once the watches are in place; events
// are processed in the background until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the directory, not the file: editors replace files on save.
	configDir := filepath.Dir(w.configPath)
	if err := w.fs.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}
	w.watchContent(w.cfg)

	w.mu.Lock()
	w.started = true
	w.mu.Unlock()
	slog.Info("Watching for changes", logfields.Path(w.configPath), logfields.Count(len(w.contentRoots)))
	go w.watchLoop(ctx)
	return nil
}

// Stop ends watching and waits for a running rebuild to finish. It is safe
// to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		started := w.started
		w.mu.Unlock()
		err = w.fs.Close()
		if started {
			<-w.done
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()
		slog.Info("Stopped watching")
	})
	return err
}

// watchContent adds the auto-sidebar directories of cfg, recursively.
// Directories that do not exist are skipped.
func (w *Watcher) watchContent(cfg *config.Config) {
	if cfg == nil {
		return
	}
	for _, a := range cfg.Sidebar.Auto {
		root, err := filepath.Abs(a.Dir)
		if err != nil {
			continue
		}
		if err := addDirsRecursive(w.fs, root); err != nil {
			slog.Warn("Cannot watch sidebar directory", logfields.Path(root), logfields.Error(err))
			continue
		}
		w.mu.Lock()
		if !slices.Contains(w.contentRoots, root) {
			w.contentRoots = append(w.contentRoots, root)
		}
		w.mu.Unlock()
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod || shouldIgnoreEvent(ev.Name) {
		return
	}
	name := filepath.Clean(ev.Name)
	if name == w.configPath {
		if ev.Has(fsnotify.Remove) {
			slog.Warn("Config file removed", logfields.File(name))
			return
		}
		slog.Debug("Config file change detected", logfields.File(name), slog.String("op", ev.Op.String()))
		w.trigger(ctx, true)
		return
	}
	if !w.isContent(name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(name); err == nil && fi.IsDir() {
			if err := addDirsRecursive(w.fs, name); err != nil {
				slog.Warn("Cannot watch new directory", logfields.Path(name), logfields.Error(err))
			}
		}
	}
	slog.Debug("Content change detected", logfields.File(name), slog.String("op", ev.Op.String()))
	w.trigger(ctx, false)
}

func (w *Watcher) isContent(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, root := range w.contentRoots {
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// trigger (re)starts the debounce timer.
func (w *Watcher) trigger(ctx context.Context, configChanged bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if configChanged {
		w.configPending = true
	} else {
		w.contentPending = true
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(ctx) })
}

// fire reloads the configuration when it changed and runs the rebuild.
// An unreadable or unchanged configuration does not rebuild unless
// content changed as well.
func (w *Watcher) fire(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()
	select {
	case <-w.stopChan:
		return
	default:
	}
	if ctx.Err() != nil {
		return
	}

	w.mu.Lock()
	reloadConfig, contentChanged := w.configPending, w.contentPending
	w.configPending, w.contentPending = false, false
	cfg := w.cfg
	w.mu.Unlock()

	reason := ReasonContent
	if reloadConfig {
		next, changed, err := w.reload()
		switch {
		case err != nil:
			slog.Error("Failed to reload configuration, keeping the previous one", logfields.Path(w.configPath), logfields.Error(err))
		case changed:
			cfg = next
			reason = ReasonConfig
			w.watchContent(next)
		default:
			slog.Debug("Configuration unchanged", logfields.Path(w.configPath))
		}
		if reason != ReasonConfig && !contentChanged {
			return
		}
	}

	w.recorder.IncWatchTrigger(reason)
	slog.Info("Change detected, regenerating", slog.String("reason", reason))
	if err := w.rebuild(ctx, cfg); err != nil {
		slog.Error("Regeneration failed", logfields.Error(err))
	}
}

// reload loads the configuration file and adopts it when its snapshot differs.
func (w *Watcher) reload() (*config.Config, bool, error) {
	next, err := config.Load(w.configPath)
	if err != nil {
		return nil, false, err
	}
	snap := next.Snapshot()
	w.mu.Lock()
	defer w.mu.Unlock()
	if snap == w.snapshot {
		return nil, false, nil
	}
	w.cfg, w.snapshot = next, snap
	return next, true, nil
}

func addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// shouldIgnoreEvent reports events on hidden, editor temp and OS metadata files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."):
		return true
	case strings.HasSuffix(base, "~"), strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, ".swx"):
		return true
	case strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	case base == "Thumbs.db":
		return true
	}
	return false
}

