// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cells drives a screen through tcell. It implements loop.Terminal
// on top of a tcell.Screen: PollEvent is the blocking read, and the rendered
// panel is copied into screen cells.
package cells

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/core/input"
	"github.com/toeirei/tally/core/loop"
	"github.com/toeirei/tally/ui/render"
	"github.com/toeirei/tally/ui/tui/util"
)

// Terminal is a loop.Terminal backed by a tcell.Screen.
type Terminal struct {
	screen   tcell.Screen
	variant  render.Variant
	renderer *render.Renderer
	style    tcell.Style
}

// Open initializes screen. Close must be called to restore the terminal.
func Open(screen tcell.Screen, v render.Variant) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Terminal{
		screen:  screen,
		variant: v,
		// cells carry their own style, so render without escape codes
		renderer: render.New(lipgloss.NewRenderer(io.Discard)),
		style:    tcell.StyleDefault,
	}, nil
}

// Close finalizes the screen and restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Draw copies the rendered panel into the screen cells.
func (t *Terminal) Draw(s counter.Snapshot) error {
	w, h := t.screen.Size()
	t.screen.Clear()

	out := t.renderer.View(t.variant, s, util.Size{Width: w, Height: h})
	for y, line := range strings.Split(out, "\n") {
		x := 0
		for _, r := range line {
			t.screen.SetContent(x, y, r, nil, t.style)
			x++
		}
	}
	t.screen.Show()
	return nil
}

// ReadEvent blocks in PollEvent. A nil event means the screen was finalized.
func (t *Terminal) ReadEvent() (input.Event, error) {
	switch ev := t.screen.PollEvent().(type) {
	case nil:
		return input.Event{}, loop.ErrEventSourceClosed
	case *tcell.EventKey:
		return input.KeyPress(KeyName(ev)), nil
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := ev.Size()
		return input.Resize(w, h), nil
	default:
		return input.Event{Kind: input.KindOther}, nil
	}
}

// *Terminal implements loop.Terminal
var _ loop.Terminal = (*Terminal)(nil)

// KeyName maps a tcell key event onto the bubbletea key vocabulary.
func KeyName(ev *tcell.EventKey) string {
	var prefix string
	if ev.Modifiers()&tcell.ModAlt != 0 {
		prefix = "alt+"
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		return prefix + "left"
	case tcell.KeyRight:
		return prefix + "right"
	case tcell.KeyUp:
		return prefix + "up"
	case tcell.KeyDown:
		return prefix + "down"
	case tcell.KeyEnter:
		return prefix + "enter"
	case tcell.KeyEscape:
		return prefix + "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return "ctrl+" + strings.ToLower(string(ev.Rune()))
		}
		return prefix + string(ev.Rune())
	}
	return strings.ToLower(ev.Name())
}

// Run opens a tcell screen, runs the loop and restores the terminal on every
// exit path.
func Run(v render.Variant, s *counter.State) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	return RunScreen(screen, v, s)
}

// RunScreen is Run on an existing, not yet initialized screen.
func RunScreen(screen tcell.Screen, v render.Variant, s *counter.State) error {
	t, err := Open(screen, v)
	if err != nil {
		return err
	}
	defer t.Close()

	return loop.Run(t, s, v.KeyMap())
}
