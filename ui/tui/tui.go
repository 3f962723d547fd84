// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/ui/render"
)

// Run shows v in the alternate screen until the user quits. Extra options are
// applied after the defaults.
func Run(v render.Variant, s *counter.State, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(New(v, s), opts...).Run(); err != nil {
		return fmt.Errorf("run %s screen: %w", v, err)
	}
	return nil
}
