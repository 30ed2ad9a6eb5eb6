package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written. Reloaded configs are
// delivered on Updates; the consumer applies them on its own goroutine.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	updates chan *Config
	errs    chan error
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts watching path. The parent directory is watched so that
// editors replacing the file by rename are still seen.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fs:      fsw,
		updates: make(chan *Config, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Updates delivers successfully reloaded configs
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Errors delivers reload and watch failures
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if !e.Has(fsnotify.Create) && !e.Has(fsnotify.Write) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(cfg, nil)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		}
	}
}

// send keeps only the newest pending value so a slow consumer never blocks the watcher
func (w *Watcher) send(cfg *Config, err error) {
	if err != nil {
		select {
		case w.errs <- err:
		default:
		}
		return
	}
	for {
		select {
		case w.updates <- cfg:
			return
		case <-w.updates:
		case <-w.done:
			return
		}
	}
}

// ErrWatcherClosed is returned by Drain after Close
var ErrWatcherClosed = errors.New("config watcher closed")

// Drain returns the newest pending config without blocking, or nil
func (w *Watcher) Drain() (*Config, error) {
	select {
	case <-w.done:
		return nil, ErrWatcherClosed
	default:
	}
	select {
	case cfg := <-w.updates:
		return cfg, nil
	case err := <-w.errs:
		return nil, err
	default:
		return nil, nil
	}
}
