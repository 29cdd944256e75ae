package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/glintedit/glint/internal/event"
	"github.com/glintedit/glint/internal/log"
)

// Sentinel errors for the watcher.
var (
	ErrWatcherClosed = errors.New("theme watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// Watcher reloads theme files when they change on disk. Rapid successive
// writes to the same file coalesce into one reload. Reloaded themes are
// registered (replacing any previous version) and announced on the bus.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	registry *Registry
	bus      *event.Bus
	logger   *log.Logger
	debounce time.Duration

	pending map[string]*time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that reloads into the given registry.
// The bus may be nil. Debounce defaults to 100ms when non-positive.
func NewWatcher(registry *Registry, bus *event.Bus, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}

	w := &Watcher{
		watcher:  fsw,
		registry: registry,
		bus:      bus,
		logger:   log.Get().WithComponent("theme.watcher"),
		debounce: debounce,
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a theme file or directory of theme files.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	return w.watcher.Add(absPath)
}

// Close stops watching and waits for the event loop to drain.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// processLoop consumes fsnotify events until closed.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isThemePath(evt.Name) {
				continue
			}
			w.scheduleReload(evt.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}

// scheduleReload arms (or re-arms) the debounce timer for a path.
func (w *Watcher) scheduleReload(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()
		if !closed {
			w.reload(path)
		}
	})
}

// reload loads a changed theme file and registers the result.
func (w *Watcher) reload(path string) {
	t, err := Load(path)
	if err != nil {
		w.logger.Warn("reload %s failed: %v", path, err)
		return
	}
	if t == nil {
		// Deleted between the event and the reload.
		return
	}
	if err := w.registry.Register(t); err != nil {
		w.logger.Warn("registering %s failed: %v", path, err)
		return
	}
	w.logger.Info("reloaded theme %q from %s", t.Name, path)

	if w.bus != nil {
		evt := event.New(event.TopicThemeReloaded, event.ThemeReloaded{
			Name: t.Name,
			Path: path,
		}, "theme.watcher")
		_ = w.bus.PublishSync(context.Background(), evt)
	}
}

// isThemePath reports whether a path has a loadable theme extension.
func isThemePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".json", ".yaml", ".yml", ".lua":
		return true
	default:
		return false
	}
}
