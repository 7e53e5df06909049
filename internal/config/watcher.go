// internal/config/watcher.go
package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk. Parsed configs
// are delivered through a one-slot mailbox so the game loop can poll without
// blocking; an unread config is replaced by a newer one.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan *Config
	done    chan struct{}
}

// Watch starts watching the directory that holds path. Watching the directory
// rather than the file survives editors that save by rename.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		path:    filepath.Clean(path),
		fsw:     fsw,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				log.Printf("Config: reload failed, keeping current values: %v", err)
				continue
			}
			w.publish(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Config: watcher error: %v", err)
		}
	}
}

func (w *Watcher) publish(cfg *Config) {
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}

// Poll returns the newest reloaded config, if any arrived since the last call.
func (w *Watcher) Poll() (*Config, bool) {
	select {
	case cfg := <-w.updates:
		return cfg, true
	default:
		return nil, false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
