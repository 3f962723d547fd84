// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package render

import "github.com/toeirei/tally/core/input"

// Variant selects which screen is shown.
type Variant int

const (
	Counter Variant = iota
	Placeholder
)

func (v Variant) String() string {
	if v == Placeholder {
		return "placeholder"
	}
	return "counter"
}

// KeyMap returns the bindings the screen reacts to.
func (v Variant) KeyMap() input.KeyMap {
	if v == Placeholder {
		return input.PlaceholderKeyMap
	}
	return input.CounterKeyMap
}

func (v Variant) titleID() string {
	if v == Placeholder {
		return "placeholder.title"
	}
	return "counter.title"
}
