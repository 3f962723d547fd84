// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import "github.com/toeirei/tally/core/counter"

// Apply performs the transition bound to ev. Anything but a key press is
// ignored. The status is not recomputed here; callers do that once per
// processed event.
func Apply(s *counter.State, km KeyMap, ev Event) Action {
	if ev.Kind != KindKeyPress {
		return ActionNone
	}

	action := km.Action(ev.Key)
	switch action {
	case ActionQuit:
		s.RequestExit()
	case ActionIncrement:
		s.Increment()
	case ActionDecrement:
		s.Decrement()
	}
	return action
}
