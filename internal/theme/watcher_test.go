package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glintedit/glint/internal/event"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcherReloadsChangedTheme(t *testing.T) {
	dir := t.TempDir()
	bus := event.NewBus()
	registry := NewRegistry(bus)

	var reloaded atomic.Int32
	if _, err := bus.Subscribe(event.TopicThemeReloaded,
		event.HandlerFunc(func(_ context.Context, _ any) error {
			reloaded.Add(1)
			return nil
		})); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	w, err := NewWatcher(registry, bus, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	path := filepath.Join(dir, "live.toml")
	if err := os.WriteFile(path, []byte("name = \"Live\"\n"), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	ok := waitFor(t, 3*time.Second, func() bool {
		_, err := registry.Get("Live")
		return err == nil
	})
	if !ok {
		t.Fatal("theme was not reloaded from disk")
	}
	if reloaded.Load() == 0 {
		t.Error("no reload event published")
	}
}

func TestWatcherIgnoresNonThemeFiles(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry(nil)

	w, err := NewWatcher(registry, nil, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(dir); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("name = \"Nope\"\n"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if _, err := registry.Get("Nope"); err == nil {
		t.Error("non-theme file was loaded")
	}
}

func TestWatcherWatchMissingPath(t *testing.T) {
	w, err := NewWatcher(NewRegistry(nil), nil, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	err = w.Watch(filepath.Join(t.TempDir(), "gone"))
	if !errors.Is(err, ErrPathNotExist) {
		t.Errorf("err = %v, want ErrPathNotExist", err)
	}
}

func TestWatcherClosedRejectsWatch(t *testing.T) {
	w, err := NewWatcher(NewRegistry(nil), nil, 0)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op.
	if err := w.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	if err := w.Watch(t.TempDir()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("err = %v, want ErrWatcherClosed", err)
	}
}
