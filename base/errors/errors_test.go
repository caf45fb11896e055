// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(old)

	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("bad symbol file")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "bad symbol file")
	assert.Contains(t, buf.String(), "errors_test.go")

	buf.Reset()
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Contains(t, buf.String(), "invalid syntax")
	assert.Equal(t, 7, Log1(strconv.Atoi("7")))

	assert.True(t, Is(fmt.Errorf("reading code: %w", err), err))
}
