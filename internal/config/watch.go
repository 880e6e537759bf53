package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Next after Close.
var ErrWatcherClosed = errors.New("config watcher closed")

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
}

// Watch starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, fsw: fsw}, nil
}

// Next blocks until the file is written or recreated and returns the
// reloaded config.
func (w *Watcher) Next() (Config, error) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				return Load(w.path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return Config{}, ErrWatcherClosed
			}
			return Config{}, fmt.Errorf("watch config: %w", err)
		}
	}
}

// Close stops the watcher; a blocked Next returns ErrWatcherClosed.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
