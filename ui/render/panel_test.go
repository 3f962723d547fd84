// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/internal/i18n"
	"github.com/toeirei/tally/ui/tui/util"
)

// plain renders without escape codes since io.Discard is not a terminal.
func plain() *Renderer {
	return New(lipgloss.NewRenderer(io.Discard))
}

func snapshot(value int) counter.Snapshot {
	s := counter.New(counter.WithValue(value))
	s.RecomputeStatus()
	return s.Snapshot()
}

func TestView_CounterLayout(t *testing.T) {
	i18n.Init("en")
	out := plain().View(Counter, snapshot(0), util.Size{Width: 60, Height: 10})
	lines := strings.Split(out, "\n")

	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 60 {
			t.Fatalf("line %d width mismatch: want=60 got=%d line=%q", i, w, line)
		}
	}
	if !strings.HasPrefix(lines[0], "┏") || !strings.Contains(lines[0], " Counter App ") {
		t.Fatalf("unexpected top border %q", lines[0])
	}
	if !strings.Contains(lines[1], "Value: 0") {
		t.Fatalf("expected value on the first body row, got %q", lines[1])
	}
	if !strings.Contains(lines[7], " Decrement <Left> Increment <Right> Quit <Q> ") {
		t.Fatalf("unexpected bottom border %q", lines[7])
	}
	if !strings.Contains(strings.Join(lines[8:], "\n"), "Minimum") {
		t.Fatalf("expected Minimum in the status region:\n%s", out)
	}
}

func TestView_CounterStatus(t *testing.T) {
	i18n.Init("en")
	r := plain()
	size := util.Size{Width: 60, Height: 10}

	if out := r.View(Counter, snapshot(255), size); !strings.Contains(out, "Maximum") {
		t.Fatalf("expected Maximum at 255:\n%s", out)
	}
	out := r.View(Counter, snapshot(42), size)
	if strings.Contains(out, "Maximum") || strings.Contains(out, "Minimum") {
		t.Fatalf("expected no status at 42:\n%s", out)
	}
	if !strings.Contains(out, "Value: 42") {
		t.Fatalf("expected value 42:\n%s", out)
	}
}

func TestView_Placeholder(t *testing.T) {
	i18n.Init("en")
	out := plain().View(Placeholder, snapshot(0), util.Size{Width: 40, Height: 10})

	for _, want := range []string{" TextArea Test ", "Yo", " Quit <Q> "} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in placeholder view:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"Decrement", "Minimum", "Value"} {
		if strings.Contains(out, unwanted) {
			t.Fatalf("unexpected %q in placeholder view:\n%s", unwanted, out)
		}
	}
}

func TestView_DefaultSize(t *testing.T) {
	i18n.Init("en")
	out := plain().View(Counter, snapshot(3), util.Size{})
	if got := len(strings.Split(out, "\n")); got != util.DefaultSize.Height {
		t.Fatalf("expected %d lines for an unknown size, got %d", util.DefaultSize.Height, got)
	}
}

func TestView_NarrowTerminalTruncates(t *testing.T) {
	i18n.Init("en")
	out := plain().View(Counter, snapshot(3), util.Size{Width: 12, Height: 5})
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 12 {
			t.Fatalf("line %d width mismatch: want=12 got=%d line=%q", i, w, line)
		}
	}
}

func TestView_German(t *testing.T) {
	i18n.Init("de")
	defer i18n.Init("en")
	out := plain().View(Counter, snapshot(7), util.Size{Width: 70, Height: 10})
	for _, want := range []string{" Zähler ", "Wert: 7", "Beenden"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in german view:\n%s", want, out)
		}
	}
}

func TestVariant_KeyMap(t *testing.T) {
	if Placeholder.KeyMap().Increment.Enabled() {
		t.Fatalf("placeholder must not bind increment")
	}
	if !Counter.KeyMap().Increment.Enabled() {
		t.Fatalf("counter must bind increment")
	}
	if Counter.String() != "counter" || Placeholder.String() != "placeholder" {
		t.Fatalf("unexpected variant names")
	}
}
