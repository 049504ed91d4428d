/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package watch reloads a cipher configuration file when it changes.
//
// A Watcher observes the directory holding the file, so saves that replace
// the file through a rename are seen as well. Each burst of events is
// debounced into a single reload, which parses the file with settings.Load
// and hands the result to a Reconfigurer. A file that fails to load or
// validate is logged and the previous configuration stays active.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"dirpx.dev/dxvig/dxcore/model"
	"dirpx.dev/dxvig/dxcore/model/settings"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
)

// DefaultDebounceInterval is the quiet period used when none is configured.
const DefaultDebounceInterval = 100 * time.Millisecond

// ErrAlreadyRunning is returned by Watch when the watcher is already
// running or has been stopped.
var ErrAlreadyRunning = errors.New("watch: watcher already running or stopped")

// Reconfigurer applies a configuration. *vigenere.Engine implements it.
type Reconfigurer interface {
	Reconfigure(cfg settings.Config) error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithDebounceInterval sets the quiet period between the last event of a
// burst and the reload. Non-positive values keep the default.
func WithDebounceInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// Watcher reloads one configuration file into a Reconfigurer.
type Watcher struct {
	path     string
	target   Reconfigurer
	logger   *slog.Logger
	interval time.Duration

	watcher  *fsnotify.Watcher
	debounce *Debouncer

	mu      sync.Mutex
	started bool
	errs    error

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New returns a Watcher for the configuration file at path. The file does
// not need to exist yet, but its directory does once Watch is called.
func New(path string, target Reconfigurer, opts ...Option) (*Watcher, error) {
	if target == nil {
		return nil, errors.New("watch: nil Reconfigurer")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		target:   target,
		logger:   slog.Default(),
		interval: DefaultDebounceInterval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	w.watcher = fw
	w.debounce = NewDebouncer(w.interval)

	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Reload loads the file and applies it. On failure the target is left
// untouched and the error is returned.
func (w *Watcher) Reload() error {
	cfg, err := settings.Load(w.path)
	if err != nil {
		w.logger.Error("config reload failed", "path", w.path, "error", err)
		return err
	}
	if err := w.target.Reconfigure(cfg); err != nil {
		w.logger.Error("config reload rejected", "path", w.path, "error", err)
		return err
	}
	w.logger.Info("config reloaded", "path", w.path, "config", model.SafeString(&cfg, false))
	return nil
}

// Watch blocks, reloading the file on change, until ctx is done or Stop is
// called. A Watcher runs at most once.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	select {
	case <-w.stopCh:
		w.mu.Unlock()
		return ErrAlreadyRunning
	default:
	}
	w.started = true
	w.mu.Unlock()

	defer close(w.doneCh)

	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}

	w.logger.Info("config watcher started",
		"path", w.path,
		"debounce_ms", w.interval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.debounce.Stop()
			w.logger.Info("config watcher stopped", "reason", ctx.Err())
			return nil

		case <-w.stopCh:
			w.logger.Info("config watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watch: events channel closed")
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("config file event", "path", event.Name, "op", event.Op.String())
			w.debounce.Trigger(func() {
				_ = w.Reload()
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watch: errors channel closed")
			}
			w.logger.Error("config watcher error", "error", err)
			w.mu.Lock()
			w.errs = multierr.Append(w.errs, err)
			w.mu.Unlock()
		}
	}
}

// Stop ends Watch, cancels a pending reload and releases the fsnotify
// watcher. It returns the watcher errors seen while running combined with
// any close error. Stop is idempotent; later calls return nil.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.mu.Lock()
		close(w.stopCh)
		started := w.started
		w.mu.Unlock()

		if started {
			<-w.doneCh
		}
		w.debounce.Stop()

		w.mu.Lock()
		err = multierr.Append(w.errs, w.watcher.Close())
		w.mu.Unlock()
	})
	return err
}

// relevant reports whether event concerns the watched file and may have
// changed its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
