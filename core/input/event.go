// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import "fmt"

// Kind classifies an Event.
type Kind int

const (
	KindOther Kind = iota
	KindKeyPress
	KindKeyRelease
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindKeyPress:
		return "key-press"
	case KindKeyRelease:
		return "key-release"
	case KindResize:
		return "resize"
	default:
		return "other"
	}
}

// Event is a single input event read from a terminal.
// Key is only set for key events, Width and Height only for resizes.
type Event struct {
	Kind   Kind
	Key    string
	Width  int
	Height int
}

// KeyPress is a press of the named key.
func KeyPress(key string) Event {
	return Event{Kind: KindKeyPress, Key: key}
}

// Resize reports a new terminal size.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKeyPress, KindKeyRelease:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case KindResize:
		return fmt.Sprintf("%s(%dx%d)", e.Kind, e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}
