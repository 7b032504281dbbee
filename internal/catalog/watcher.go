package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/davidpaquet/archive-browser/internal/logging"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher signals when catalog files in a directory are rewritten.
// Bursts of writes are collapsed into a single reload signal.
type Watcher struct {
	fs       *fsnotify.Watcher
	names    map[string]bool
	debounce time.Duration
	reloads  chan struct{}
	done     chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches dir for changes to the named files
func NewWatcher(dir string, files ...string) (*Watcher, error) {
	return newWatcher(dir, defaultDebounce, files...)
}

func newWatcher(dir string, debounce time.Duration, files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	names := make(map[string]bool, len(files))
	for _, f := range files {
		names[filepath.Base(f)] = true
	}

	w := &Watcher{
		fs:       fw,
		names:    names,
		debounce: debounce,
		reloads:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Reloads delivers one value per settled burst of changes
func (w *Watcher) Reloads() <-chan struct{} {
	return w.reloads
}

// Close stops the watcher
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.fs.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(ev.Name)] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("Catalog file changed", "file", ev.Name, "op", ev.Op.String())
			w.schedule()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Warn("Catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
		case w.reloads <- struct{}{}:
		default:
			// a reload is already pending
		}
	})
}
