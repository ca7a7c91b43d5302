// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pemdas.io/calc/config"
)

func typeString(m Model, s string) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(Model)
}

func pressKey(m Model, key tea.KeyType) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func submitLine(m Model, line string) Model {
	m = typeString(m, line)
	m, _ = pressKey(m, tea.KeyEnter)
	return m
}

func TestSubmitExpression(t *testing.T) {
	var conf config.Config
	m := submitLine(New(&conf), "2+3*4")

	require.NotEmpty(t, m.transcript)
	assert.Contains(t, m.View(), "Answer: 14")
	assert.Empty(t, m.input.Value(), "input not cleared after submit")
}

func TestSubmitError(t *testing.T) {
	var conf config.Config
	m := submitLine(New(&conf), "5/0")
	assert.Contains(t, m.View(), "Error: division by zero")

	// The session survives the error.
	m = submitLine(m, "1+2")
	assert.Contains(t, m.View(), "Answer: 3")
}

func TestSubmitEmptyLine(t *testing.T) {
	var conf config.Config
	m := New(&conf)
	m, _ = pressKey(m, tea.KeyEnter)
	assert.Empty(t, m.transcript)
}

func TestCommands(t *testing.T) {
	var conf config.Config
	m := submitLine(New(&conf), "help")
	assert.Contains(t, m.View(), "Type 'exit' to close program.")

	m = typeString(m, "exit")
	m, cmd := pressKey(m, tea.KeyEnter)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd, "exit must quit the program")
}

func TestHistoryRecall(t *testing.T) {
	var conf config.Config
	m := submitLine(New(&conf), "1+1")
	m = submitLine(m, "2+2")

	m, _ = pressKey(m, tea.KeyUp)
	assert.Equal(t, "2+2", m.input.Value())
	m, _ = pressKey(m, tea.KeyUp)
	assert.Equal(t, "1+1", m.input.Value())
	m, _ = pressKey(m, tea.KeyDown)
	assert.Equal(t, "2+2", m.input.Value())
	m, _ = pressKey(m, tea.KeyDown)
	assert.Equal(t, "", m.input.Value())
}

func TestDebugOutputInTranscript(t *testing.T) {
	var conf config.Config
	conf.SetDebug("trace", true)
	m := submitLine(New(&conf), "2+3")
	view := m.View()
	assert.Contains(t, view, "Push 2 onto stack")
	assert.Contains(t, view, "Answer: 5")
}

func TestQuitKeys(t *testing.T) {
	var conf config.Config
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc} {
		m, cmd := pressKey(New(&conf), key)
		assert.True(t, m.quitting)
		assert.NotNil(t, cmd)
	}
}
