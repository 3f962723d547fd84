// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tally/buildvars"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/core/input"
	"github.com/toeirei/tally/internal/logging"
	"github.com/toeirei/tally/ui/render"
	"github.com/toeirei/tally/ui/tui/util"
)

const title string = "Tally"

// Model shows one screen variant and applies its key map to the state.
type Model struct {
	variant  render.Variant
	state    *counter.State
	keyMap   input.KeyMap
	renderer *render.Renderer
	size     util.Size
	title    *titleHandler
}

// New creates the model for v operating on s.
func New(v render.Variant, s *counter.State) *Model {
	return &Model{
		variant:  v,
		state:    s,
		keyMap:   v.KeyMap(),
		renderer: render.New(nil),
		title:    newTitleHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}
}

func (m *Model) Init() tea.Cmd {
	m.state.RecomputeStatus()
	m.title.Set(m.statusLabel())
	return m.title.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		return m, nil
	}

	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		ev := FromKeyMsg(msg)
		if action := input.Apply(m.state, m.keyMap, ev); action != input.ActionNone {
			logging.Debugf("%s -> %s", ev, action)
		}
		m.state.RecomputeStatus()

		if m.state.ShouldExit() {
			return m, tea.Quit
		}
		// the title mirrors the status message
		return m, m.title.Set(m.statusLabel())
	}
	return m, nil
}

func (m *Model) statusLabel() string {
	if m.variant != render.Counter {
		return ""
	}
	return render.StatusLabel(m.state.Status())
}

func (m *Model) View() string {
	return m.renderer.View(m.variant, m.state.Snapshot(), m.size)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// FromKeyMsg converts a bubbletea key message. Bubbletea only reports key
// presses, and its key strings are the names used by input.KeyMap.
func FromKeyMsg(msg tea.KeyMsg) input.Event {
	return input.KeyPress(msg.String())
}
