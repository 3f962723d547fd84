// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package rawterm drives a screen without a TUI framework: golang.org/x/term
// puts the input into raw mode and termenv handles the alternate screen and
// the cursor. It implements loop.Terminal over any reader and writer, which
// keeps it usable on pipes.
package rawterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/core/input"
	"github.com/toeirei/tally/core/loop"
	"github.com/toeirei/tally/internal/logging"
	"github.com/toeirei/tally/ui/render"
	"github.com/toeirei/tally/ui/tui/util"
	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// Terminal is a loop.Terminal on a plain reader and writer.
type Terminal struct {
	dec      *Decoder
	out      *termenv.Output
	outFd    int
	variant  render.Variant
	renderer *render.Renderer
	restore  func() error
}

// Open prepares in and out. Raw mode is only entered when in is a terminal.
// Close must be called to undo everything Open did.
func Open(in io.Reader, out io.Writer, v render.Variant) (*Terminal, error) {
	t := &Terminal{
		out:      termenv.NewOutput(out),
		outFd:    -1,
		variant:  v,
		renderer: render.New(lipgloss.NewRenderer(out)),
		restore:  func() error { return nil },
	}

	if f, ok := in.(fder); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		t.restore = func() error { return term.Restore(fd, state) }
	} else {
		logging.Debugf("input is not a terminal, staying in cooked mode")
	}
	if f, ok := out.(fder); ok && term.IsTerminal(int(f.Fd())) {
		t.outFd = int(f.Fd())
	}
	// the decoder starts reading right away, so only after raw mode is set
	t.dec = NewDecoder(in)

	t.out.AltScreen()
	t.out.HideCursor()
	t.out.ClearScreen()
	return t, nil
}

// Close shows the cursor, leaves the alternate screen and restores the
// terminal mode.
func (t *Terminal) Close() error {
	t.out.ShowCursor()
	t.out.ExitAltScreen()
	if err := t.restore(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (t *Terminal) size() util.Size {
	if t.outFd < 0 {
		return util.DefaultSize
	}
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return util.DefaultSize
	}
	return util.Size{Width: w, Height: h}
}

// Draw repaints the whole screen.
func (t *Terminal) Draw(s counter.Snapshot) error {
	view := t.renderer.View(t.variant, s, t.size())

	t.out.ClearScreen()
	// raw mode does not translate \n into \r\n
	if _, err := io.WriteString(t.out, strings.ReplaceAll(view, "\n", "\r\n")); err != nil {
		return err
	}
	return nil
}

// ReadEvent reports the next decoded key as a key press. The raw byte stream
// carries no release events.
func (t *Terminal) ReadEvent() (input.Event, error) {
	k, err := t.dec.Next()
	if err != nil {
		return input.Event{}, err
	}
	return input.KeyPress(k), nil
}

// *Terminal implements loop.Terminal
var _ loop.Terminal = (*Terminal)(nil)

// Run drives v on stdin and stdout.
func Run(v render.Variant, s *counter.State) error {
	return RunOn(os.Stdin, os.Stdout, v, s)
}

// RunOn runs the loop on in and out and restores the terminal on every exit
// path. A restore failure is only reported when the loop itself succeeded.
func RunOn(in io.Reader, out io.Writer, v render.Variant, s *counter.State) (err error) {
	t, err := Open(in, out, v)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := t.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return loop.Run(t, s, v.KeyMap())
}
