// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package rawterm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/internal/i18n"
	"github.com/toeirei/tally/ui/render"
)

func TestRunOn_IncrementAndQuit(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	s := counter.New()

	if err := RunOn(strings.NewReader("\x1b[C\x1b[Cq"), &out, render.Counter, s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.Value() != 2 {
		t.Fatalf("expected value 2, got %d", s.Value())
	}

	o := out.String()
	for _, want := range []string{"Counter App", "Value: 0", "Value: 2", "Minimum", "?1049l", "?25h"} {
		if !strings.Contains(o, want) {
			t.Fatalf("missing %q in output:\n%q", want, o)
		}
	}
}

func TestRunOn_ByteAtATimeInput(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	s := counter.New()

	if err := RunOn(iotest.OneByteReader(strings.NewReader("\x1b[Cq")), &out, render.Counter, s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.Value() != 1 {
		t.Fatalf("expected value 1, got %d", s.Value())
	}
}

func TestRunOn_ReadFailureRestoresTerminal(t *testing.T) {
	var out bytes.Buffer
	s := counter.New()

	err := RunOn(strings.NewReader("\x1b[C"), &out, render.Counter, s)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF to propagate, got %v", err)
	}
	if s.Value() != 1 {
		t.Fatalf("expected the event before EOF to apply, got %d", s.Value())
	}
	if !strings.Contains(out.String(), "?1049l") {
		t.Fatalf("expected alt screen to be exited after failure")
	}
}

func TestRunOn_Placeholder(t *testing.T) {
	i18n.Init("en")
	var out bytes.Buffer
	s := counter.New()

	if err := RunOn(strings.NewReader("\x1b[C\x03"), &out, render.Placeholder, s); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.Value() != 0 {
		t.Fatalf("placeholder must not change the counter, got %d", s.Value())
	}
	if !strings.Contains(out.String(), "TextArea Test") {
		t.Fatalf("expected placeholder title in output")
	}
}
