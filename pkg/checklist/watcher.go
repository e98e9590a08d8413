package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a checklist file for changes and reloads it into a Store.
// Reloads are debounced to prevent reload storms from editors that write in
// multiple bursts. A reload that fails validation is logged and discarded;
// the previously active registry keeps serving.
type Watcher struct {
	path     string
	store    *Store
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// WatcherConfig contains configuration for the checklist watcher.
type WatcherConfig struct {
	// Path is the checklist file to watch.
	Path string

	// DebounceInterval is the quiet period required after the last file
	// event before a reload is attempted (default: 100ms).
	DebounceInterval time.Duration
}

// NewWatcher creates a watcher that reloads path into store on change.
func NewWatcher(cfg WatcherConfig, store *Store, logger *slog.Logger) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watcher path cannot be empty")
	}
	if store == nil {
		return nil, fmt.Errorf("watcher store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	debounce := cfg.DebounceInterval
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		path:     cfg.Path,
		store:    store,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Watch blocks, processing file events until the context is cancelled.
// It watches the file's directory rather than the file itself so that
// atomic-rename saves (the common editor and deploy pattern) are observed.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w.logger.Info("checklist watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("checklist watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("checklist file event",
				"path", event.Name,
				"op", event.Op.String(),
			)

			// Restart the debounce window on every relevant event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("checklist watcher error", "error", err)
		}
	}
}

// shouldProcessEvent filters events down to writes of the watched file.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// reload loads the checklist file and swaps it in if valid.
func (w *Watcher) reload() {
	reg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Error("checklist reload failed, keeping active registry",
			"path", w.path,
			"error", err,
		)
		return
	}

	previous := w.store.Active()
	w.store.Swap(reg)

	w.logger.Info("checklist reloaded",
		"path", w.path,
		"rules", reg.Len(),
		"version", reg.Version(),
		"previous_version", previous.Version(),
	)
}
