// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cmd, args, err := Split(`wc -l "out/tokens file.txt"`)
	assert.NoError(t, err)
	assert.Equal(t, "wc", cmd)
	assert.Equal(t, []string{"-l", "out/tokens file.txt"}, args)

	_, _, err = Split("   ")
	assert.Error(t, err)

	_, _, err = Split(`echo "unterminated`)
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs echo")
	}
	var echo, out bytes.Buffer
	c := &Config{Echo: &echo}
	c.Out = &out
	s, err := c.Output("echo", "scanned")
	assert.NoError(t, err)
	assert.Equal(t, "scanned", s)
	assert.Equal(t, "scanned\n", out.String())
	assert.Equal(t, "echo scanned\n", echo.String())

	out.Reset()
	assert.NoError(t, c.RunLine(`echo "a  b"`))
	assert.Equal(t, "a  b\n", out.String())

	assert.Error(t, Silent().Run("lexscan-no-such-command"))
}
