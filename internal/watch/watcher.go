// Copyright Ricardo Oliveira 2025.
// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs the progress report whenever the route file changes
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	apperrors "github.com/routeconv/routeconv/internal/errors"
)

// ReportFunc produces one report for the file at path
type ReportFunc func(ctx context.Context, path string) error

// Watcher reports on a file once at start and again after every settled change
type Watcher struct {
	path     string
	debounce time.Duration
	report   ReportFunc
}

// New creates a watcher for path. Changes closer together than debounce are reported once.
func New(path string, debounce time.Duration, report ReportFunc) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		report:   report,
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// Report errors are logged and do not stop the loop, so a file that is
// briefly missing while an editor saves it is picked up again.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeWatchError, "failed to create file watcher")
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Error().Err(err).Str("file", w.path).Msg("Failed to close watcher")
		}
	}()

	// Watch the directory: editors and atomic writers replace the file by rename.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return apperrors.Wrap(err, apperrors.CodeWatchError, fmt.Sprintf("failed to watch %s", dir)).
			WithContext("path", w.path)
	}

	log.Info().Str("file", w.path).Dur("debounce", w.debounce).Msg("File watcher started")
	w.runReport(ctx)

	debounceTimer := time.NewTimer(w.debounce)
	defer debounceTimer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("file", w.path).Msg("File watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				log.Debug().Str("file", w.path).Str("op", event.Op.String()).Msg("Change detected")
				pending = true
				debounceTimer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Str("file", w.path).Msg("File watcher error")

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.runReport(ctx)
			}
		}
	}
}

func (w *Watcher) runReport(ctx context.Context) {
	if err := w.report(ctx, w.path); err != nil {
		log.Warn().Err(err).Str("file", w.path).Msg("Report failed")
	}
}
