// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Action is the state transition bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionIncrement
	ActionDecrement
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionIncrement:
		return "increment"
	case ActionDecrement:
		return "decrement"
	default:
		return "none"
	}
}

// KeyMap binds key names to counter actions. Help descriptions are i18n
// message IDs and get translated by the renderers.
type KeyMap struct {
	Decrement key.Binding
	Increment key.Binding
	Quit      key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Decrement, km.Increment, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Decrement, km.Increment}, {km.Quit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// Action returns what pressing k does. Disabled bindings never match.
func (km KeyMap) Action(k string) Action {
	switch {
	case matches(km.Quit, k):
		return ActionQuit
	case matches(km.Increment, k):
		return ActionIncrement
	case matches(km.Decrement, k):
		return ActionDecrement
	}
	return ActionNone
}

func matches(b key.Binding, k string) bool {
	return b.Enabled() && slices.Contains(b.Keys(), k)
}

var quitBinding = key.NewBinding(
	key.WithKeys("q", "ctrl+c"),
	key.WithHelp("<Q>", "key.quit"),
)

// CounterKeyMap moves the counter with the arrow keys.
var CounterKeyMap = KeyMap{
	Decrement: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("<Left>", "key.decrement"),
	),
	Increment: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("<Right>", "key.increment"),
	),
	Quit: quitBinding,
}

// PlaceholderKeyMap only knows how to quit.
var PlaceholderKeyMap = KeyMap{
	Quit: quitBinding,
}
