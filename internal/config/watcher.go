package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("config watcher is closed")

// debounceWindow coalesces editor save bursts into one reload.
const debounceWindow = 100 * time.Millisecond

// ReloadHandler receives the new configuration after a successful reload.
// Load or validation failures keep the previous configuration and are
// reported through the error handler instead.
type ReloadHandler func(Config)

// ErrorHandler receives reload failures.
type ErrorHandler func(error)

// Watcher reloads the configuration file when it changes on disk.
type Watcher struct {
	mu sync.Mutex

	path     string
	fsw      *fsnotify.Watcher
	onReload ReloadHandler
	onError  ErrorHandler

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher starts watching path. The containing directory is watched so
// atomic save (write temp, rename over) is observed.
func NewWatcher(path string, onReload ReloadHandler, onError ErrorHandler) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		fsw:      fsw,
		onReload: onReload,
		onError:  onError,
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerCh = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
