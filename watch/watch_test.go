// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	assert.True(t, Relevant(fsnotify.Event{Name: "a", Op: fsnotify.Write}))
	assert.True(t, Relevant(fsnotify.Event{Name: "a", Op: fsnotify.Create | fsnotify.Chmod}))
	assert.False(t, Relevant(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}))
	assert.False(t, Relevant(fsnotify.Event{Name: "a", Op: fsnotify.Remove}))
}

func TestRun(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	code := filepath.Join(dir, "code.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(code, []byte("x"), 0o644))

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- Run(ctx, []string{code}, func() error {
			calls.Add(1)
			return nil
		})
	}()

	// give the watcher time to start
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("y"), 0o644))
	time.Sleep(3 * Lag)
	assert.Equal(t, int32(0), calls.Load())

	require.NoError(t, os.WriteFile(code, []byte("x y"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunMissingDir(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "no", "such", "file.txt")}, func() error { return nil })
	assert.Error(t, err)
}
