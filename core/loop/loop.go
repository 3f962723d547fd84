// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package loop runs the render / read / apply cycle against a Terminal.
package loop

import (
	"errors"
	"fmt"

	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/core/input"
	"github.com/toeirei/tally/internal/logging"
)

// ErrEventSourceClosed is returned by terminals whose event source went away
// without a more specific error.
var ErrEventSourceClosed = errors.New("event source closed")

// Terminal is the collaborator that owns the screen. Setup and restoration
// happen outside of Run, in the driver that created the Terminal.
type Terminal interface {
	// Draw renders the snapshot into the visible area.
	Draw(counter.Snapshot) error
	// ReadEvent blocks until the next input event is available.
	ReadEvent() (input.Event, error)
}

// Run loops until a quit key is pressed or the terminal fails. The exit flag
// is checked at the top of each iteration, so a quit takes effect after the
// render that preceded it.
func Run(term Terminal, s *counter.State, km input.KeyMap) error {
	s.RecomputeStatus()

	for !s.ShouldExit() {
		if err := term.Draw(s.Snapshot()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		ev, err := term.ReadEvent()
		if err != nil {
			return fmt.Errorf("read input event: %w", err)
		}

		if action := input.Apply(s, km, ev); action != input.ActionNone {
			logging.Debugf("%s -> %s", ev, action)
		}
		s.RecomputeStatus()
	}
	return nil
}
