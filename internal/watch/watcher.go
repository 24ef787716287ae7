// Copyright 2026 Spatial Networks, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch rebuilds the certification package whenever one of the
// input files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/fulcrumapp/certkit/internal/log"
)

// DefaultDebounce coalesces the burst of events editors emit for a
// single save.
const DefaultDebounce = 250 * time.Millisecond

// Builder runs one rebuild. runID identifies the rebuild in logs.
type Builder func(ctx context.Context, runID string) error

// Watcher triggers a Builder when any of the watched files changes.
type Watcher struct {
	paths    map[string]bool // absolute paths of the watched files
	build    Builder
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the given files. The parent
// directories are watched rather than the files themselves, so
// replace-by-rename saves (the common editor behavior) are still seen.
func NewWatcher(paths []string, build Builder, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		paths:    make(map[string]bool, len(paths)),
		build:    build,
		debounce: DefaultDebounce,
		watcher:  fsw,
		logger:   log.WithComponent(logger, "watcher"),
	}

	dirs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", path, err)
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// SetDebounce overrides the quiet period before a rebuild. Values of
// zero or less are ignored.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 {
		w.debounce = d
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run performs an initial build and then blocks, rebuilding after each
// change until the context is canceled. Build failures are logged and
// the loop keeps running; only watcher failures end it.
func (w *Watcher) Run(ctx context.Context) error {
	w.rebuild(ctx)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if !w.paths[event.Name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("input changed",
				slog.String(log.InputKey, event.Name),
				slog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.rebuild(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	runID := uuid.NewString()
	logger := log.WithRunID(w.logger, runID)

	start := time.Now()
	if err := w.build(ctx, runID); err != nil {
		logger.Error("rebuild failed", log.Error(err))
		return
	}
	logger.Info("rebuild complete", slog.Duration("elapsed", time.Since(start)))
}
