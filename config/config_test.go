// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, "%v", c.Format())
	assert.Equal(t, "", c.Prompt())
	assert.Equal(t, os.Stdout, c.Output())
	assert.Equal(t, os.Stderr, c.ErrOutput())
	assert.False(t, c.Debug("trace"))
}

func TestSetters(t *testing.T) {
	var c Config
	var out, errOut bytes.Buffer

	c.SetFormat("%.3f")
	c.SetPrompt("> ")
	c.SetOutput(&out)
	c.SetErrOutput(&errOut)
	c.SetDebug("tokens", true)

	assert.Equal(t, "%.3f", c.Format())
	assert.Equal(t, "> ", c.Prompt())
	assert.Equal(t, &out, c.Output())
	assert.Equal(t, &errOut, c.ErrOutput())
	assert.True(t, c.Debug("tokens"))
	assert.False(t, c.Debug("postfix"))

	c.SetDebug("tokens", false)
	assert.False(t, c.Debug("tokens"))
}
