// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import tea "github.com/charmbracelet/bubbletea"

// DefaultSize is used until the terminal reports its real size.
var DefaultSize = Size{Width: 80, Height: 24}

// Size is the area available to a view, in cells.
type Size struct {
	Width  int
	Height int
}

// Update takes the size from a tea.WindowSizeMsg and reports whether msg was
// one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// OrDefault returns s, or DefaultSize when s has no area.
func (s Size) OrDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}
