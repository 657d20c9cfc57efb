package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/specwave/spec-core/internal/spec"
)

// defaultDebounce batches rapid filesystem events (editor save sequences,
// rsync runs) into a single reload.
const defaultDebounce = 500 * time.Millisecond

// Watcher observes spec directories and invokes a callback when YAML
// documents change, so the discovery loader can be re-run. Re-running
// discovery is idempotent, which makes over-triggering safe.
type Watcher struct {
	fw       *fsnotify.Watcher
	dirs     []string
	debounce time.Duration
	onChange func()
	logger   spec.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// NewWatcher creates a watcher over the given spec directories. onChange is
// invoked after filesystem activity settles.
func NewWatcher(dirs []string, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		dirs:     dirs,
		debounce: defaultDebounce,
		onChange: onChange,
		logger:   spec.NopLogger(),
	}, nil
}

// SetLogger sets the logger for the watcher.
func (w *Watcher) SetLogger(logger spec.Logger) {
	w.logger = logger
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	for _, dir := range w.dirs {
		if err := w.fw.Add(dir); err != nil {
			w.logger.Warn("cannot watch spec directory", "dir", dir, "error", err)
			continue
		}
		w.logger.Debug("watching spec directory", "dir", dir)
	}

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !isSpecDocument(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("spec file event", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Info("spec directory changed, triggering reload")
			w.onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("spec watcher error", "error", err)
		}
	}
}

// Stop halts watching and releases the filesystem watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	w.cancel()
	return w.fw.Close()
}

// isSpecDocument reports whether a path looks like a YAML spec document.
func isSpecDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
