// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui provides the full-screen terminal front end: a prompt
// with input history above a scrolling transcript of answers and
// errors. It drives the same pipeline as the plain loop in run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pemdas.io/calc/config"
	"pemdas.io/calc/run"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	inputLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)

// Model is the bubbletea model for the calculator session.
type Model struct {
	conf       *config.Config
	input      textinput.Model
	transcript []string // rendered lines, oldest first
	history    []string // entered expressions for up/down recall
	histPos    int      // index into history; len(history) means "new line"
	pending    string   // saved partial input while browsing history
	width      int
	height     int
	quitting   bool
}

// New returns a session model using conf for evaluation settings.
// Debug output, if enabled, appears in the transcript.
func New(conf *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = run.DefaultPrompt
	ti.Placeholder = "2 + 3 * 4"
	ti.Focus()
	return Model{
		conf:  conf,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line and appends the exchange to
// the transcript. The "exit" and "help" commands are handled here and
// never reach the pipeline.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.history = append(m.history, line)
	m.histPos = len(m.history)
	m.pending = ""
	m.input.SetValue("")

	m.transcript = append(m.transcript, inputLineStyle.Render(run.DefaultPrompt+line))
	switch line {
	case "exit":
		m.transcript = append(m.transcript, run.Goodbye)
		m.quitting = true
		return m, tea.Quit
	case "help":
		m.transcript = append(m.transcript, run.HelpText)
		return m, nil
	}

	// Route any enabled debug output into the transcript rather than
	// letting it race the renderer on stdout.
	var debug strings.Builder
	m.conf.SetOutput(&debug)
	value, err := run.Evaluate(m.conf, line)
	if s := strings.TrimRight(debug.String(), "\n"); s != "" {
		m.transcript = append(m.transcript, strings.Split(s, "\n")...)
	}
	if err != nil {
		m.transcript = append(m.transcript, errorStyle.Render(fmt.Sprintf("Error: %s", err)))
		return m, nil
	}
	answer := fmt.Sprintf("Answer: "+m.conf.Format(), value)
	m.transcript = append(m.transcript, answerStyle.Render(answer))
	return m, nil
}

// recall moves through the input history; dir is -1 for older, 1 for
// newer. The partially typed line is preserved and restored when the
// cursor returns past the newest entry.
func (m *Model) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.histPos + dir
	if pos < 0 || pos > len(m.history) {
		return
	}
	if m.histPos == len(m.history) {
		m.pending = m.input.Value()
	}
	m.histPos = pos
	if pos == len(m.history) {
		m.input.SetValue(m.pending)
	} else {
		m.input.SetValue(m.history[pos])
	}
	m.input.CursorEnd()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(bannerStyle.Render(run.Greeting))
	b.WriteString("\n\n")
	for _, line := range m.visibleTranscript() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("up/down: history • ctrl+c: quit"))
	return b.String()
}

// visibleTranscript returns the transcript tail that fits above the
// input line, once the window size is known.
func (m Model) visibleTranscript() []string {
	if m.height == 0 {
		return m.transcript
	}
	// Banner, blank line, input line, and hint line take fixed rows.
	avail := m.height - strings.Count(run.Greeting, "\n") - 5
	if avail < 0 {
		avail = 0
	}
	if len(m.transcript) <= avail {
		return m.transcript
	}
	return m.transcript[len(m.transcript)-avail:]
}

// Run starts the interactive session and blocks until it ends.
func Run(conf *config.Config) error {
	p := tea.NewProgram(New(conf), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
