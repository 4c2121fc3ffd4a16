// Package watcher reloads a tree file when it changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events most editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a single tree file and invokes a callback after each
// debounced change.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onEvent func()

	ctx    context.Context
	cancel context.CancelFunc

	lastEvent time.Time
	debounce  time.Duration
}

// New creates a watcher for the given file. onEvent fires on the watch
// goroutine after each debounced write, so it must be safe to call from
// there; with bubbletea, Program.Send is.
func New(path string, onEvent func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		path:     path,
		watcher:  fw,
		onEvent:  onEvent,
		ctx:      ctx,
		cancel:   cancel,
		debounce: DefaultDebounce,
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself so atomic save strategies (write temp, rename over) keep
// working.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	go w.watchLoop()
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.cancel()
	w.watcher.Close()
}

// watchLoop processes file system events until Stop.
func (w *Watcher) watchLoop() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			now := time.Now()
			if now.Sub(w.lastEvent) < w.debounce {
				continue
			}
			w.lastEvent = now

			w.onEvent()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Logged but does not stop the watcher
			log.Printf("warning: watch error on %s: %v", w.path, err)
		}
	}
}
