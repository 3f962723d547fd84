// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import tea "github.com/charmbracelet/bubbletea"

// titleHandler keeps the window title as "<base><delimiter><current>" and
// only emits a command when the text changes.
type titleHandler struct {
	base      string
	delimiter string
	current   string
}

func newTitleHandler(base, delimiter string) *titleHandler {
	return &titleHandler{base: base, delimiter: delimiter}
}

func (t *titleHandler) String() string {
	if t.current != "" {
		return t.base + t.delimiter + t.current
	}
	return t.base
}

func (t *titleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.String())
}

func (t *titleHandler) Set(current string) tea.Cmd {
	if t.current == current {
		return nil
	}
	t.current = current
	return tea.SetWindowTitle(t.String())
}
