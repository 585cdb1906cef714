// SPDX-License-Identifier: LGPL-3.0-or-later

package compute

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"caco/logger"
)

const debounceDuration = 500 * time.Millisecond

// Watcher reloads the ledger's bootstrap jobs file whenever it changes on
// disk. A watch failure (missing directory, fsnotify init error) is logged
// and non-fatal — the ledger keeps serving whatever was loaded at startup.
type Watcher struct {
	ledger   *Ledger
	path     string
	log      logger.Logger
	fsw      *fsnotify.Watcher
	stopChan chan struct{}
}

// WatchBootstrapFile starts watching path's containing directory and
// reloads the ledger whenever path is written. Returns nil, nil if path is
// empty (nothing to watch).
func WatchBootstrapFile(ledger *Ledger, path string, log logger.Logger) (*Watcher, error) {
	if path == "" {
		return nil, nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("bootstrap file watcher unavailable", "error", err)
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		log.Warn("cannot watch bootstrap jobs directory", "dir", dir, "error", err)
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		ledger:   ledger,
		path:     filepath.Clean(path),
		log:      log,
		fsw:      fsw,
		stopChan: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.stopChan)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var lastReload time.Time

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastReload) < debounceDuration {
				continue
			}
			lastReload = time.Now()

			if err := w.ledger.LoadFile(w.path); err != nil {
				w.log.Warn("failed to reload bootstrap jobs file", "path", w.path, "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("bootstrap file watcher error", "error", err)
		}
	}
}
