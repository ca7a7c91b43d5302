// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by the evaluation pipeline
// and its front ends: output writers, the prompt, the result format,
// and the debug categories that enable trace output.
package config

import (
	"io"
	"os"
)

// A Config is read-only during evaluation, so concurrent evaluations
// may share one. The zero value is ready to use.
type Config struct {
	prompt    string
	format    string
	debug     map[string]bool
	output    io.Writer
	errOutput io.Writer
}

// Format returns the format string used to print results.
func (c *Config) Format() string {
	if c.format == "" {
		return "%v"
	}
	return c.format
}

// SetFormat sets the format string for printing results.
func (c *Config) SetFormat(s string) {
	c.format = s
}

// Debug reports whether the named debug category is enabled.
// Categories are "tokens", "postfix", and "trace".
func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

// SetDebug enables or disables the named debug category.
func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// Prompt returns the interactive input prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

// SetPrompt sets the interactive input prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer for results and trace output.
// The default is os.Stdout.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

// SetOutput sets the writer for results and trace output.
func (c *Config) SetOutput(w io.Writer) {
	c.output = w
}

// ErrOutput returns the writer for error messages.
// The default is os.Stderr.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

// SetErrOutput sets the writer for error messages.
func (c *Config) SetErrOutput(w io.Writer) {
	c.errOutput = w
}
