// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch calls a function whenever any of a set of files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Lag is the time to wait after a change before calling the function,
// so that a burst of events from a single save results in one call.
var Lag = 100 * time.Millisecond

// Run watches the given files, calling fn after each change until
// ctx is done. The directories of the files are watched rather than
// the files themselves, so that editors that save by renaming a new
// file into place are handled. Errors from fn are logged and do not
// stop watching. Run returns nil when ctx is done.
func Run(ctx context.Context, files []string, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		dirs[dir] = true
	}

	timer := time.NewTimer(Lag)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || !Relevant(ev) {
				continue
			}
			slog.Debug("watch: change", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(Lag)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch: watcher error", "err", err)
		case <-timer.C:
			if err := fn(); err != nil {
				slog.Error("watch: " + err.Error())
			}
		}
	}
}

// Relevant returns true if the event changes the content of a file.
func Relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}
