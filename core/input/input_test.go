// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package input

import (
	"testing"

	"github.com/toeirei/tally/core/counter"
)

func TestCounterKeyMap_Actions(t *testing.T) {
	cases := map[string]Action{
		"right":  ActionIncrement,
		"left":   ActionDecrement,
		"q":      ActionQuit,
		"ctrl+c": ActionQuit,
		"up":     ActionNone,
		"x":      ActionNone,
		"":       ActionNone,
	}
	for k, want := range cases {
		if got := CounterKeyMap.Action(k); got != want {
			t.Fatalf("key %q: expected %s, got %s", k, want, got)
		}
	}
}

func TestPlaceholderKeyMap_OnlyQuits(t *testing.T) {
	for _, k := range []string{"left", "right"} {
		if got := PlaceholderKeyMap.Action(k); got != ActionNone {
			t.Fatalf("placeholder key %q: expected none, got %s", k, got)
		}
	}
	if got := PlaceholderKeyMap.Action("q"); got != ActionQuit {
		t.Fatalf("placeholder q: expected quit, got %s", got)
	}
	for _, b := range PlaceholderKeyMap.ShortHelp() {
		if b.Enabled() && b.Help().Key != "<Q>" {
			t.Fatalf("unexpected enabled binding in placeholder help: %q", b.Help().Key)
		}
	}
}

func TestApply_Transitions(t *testing.T) {
	s := counter.New()

	if a := Apply(s, CounterKeyMap, KeyPress("right")); a != ActionIncrement || s.Value() != 1 {
		t.Fatalf("expected increment to 1, got action=%s value=%d", a, s.Value())
	}
	if a := Apply(s, CounterKeyMap, KeyPress("left")); a != ActionDecrement || s.Value() != 0 {
		t.Fatalf("expected decrement to 0, got action=%s value=%d", a, s.Value())
	}
	if a := Apply(s, CounterKeyMap, KeyPress("z")); a != ActionNone || s.Value() != 0 {
		t.Fatalf("expected no-op, got action=%s value=%d", a, s.Value())
	}
	if a := Apply(s, CounterKeyMap, KeyPress("q")); a != ActionQuit || !s.ShouldExit() {
		t.Fatalf("expected quit to set shouldExit, got action=%s", a)
	}
}

func TestApply_IgnoresNonPressEvents(t *testing.T) {
	s := counter.New(counter.WithValue(5))
	events := []Event{
		{Kind: KindKeyRelease, Key: "right"},
		Resize(80, 24),
		{Kind: KindOther, Key: "right"},
	}
	for _, ev := range events {
		if a := Apply(s, CounterKeyMap, ev); a != ActionNone {
			t.Fatalf("%s: expected no action, got %s", ev, a)
		}
	}
	if s.Value() != 5 {
		t.Fatalf("expected value to stay 5, got %d", s.Value())
	}
}

func TestEvent_String(t *testing.T) {
	if got := KeyPress("left").String(); got != "key-press(left)" {
		t.Fatalf("unexpected key press string %q", got)
	}
	if got := Resize(10, 3).String(); got != "resize(10x3)" {
		t.Fatalf("unexpected resize string %q", got)
	}
}
