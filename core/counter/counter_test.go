// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package counter

import "testing"

func TestNew_Defaults(t *testing.T) {
	s := New()
	if s.Value() != 0 {
		t.Fatalf("expected value 0, got %d", s.Value())
	}
	if s.Status() != StatusNone {
		t.Fatalf("expected empty status before first recompute, got %q", s.Status())
	}
	if s.ShouldExit() {
		t.Fatalf("expected shouldExit false on a fresh state")
	}
	if b := s.Bounds(); b.Min != 0 || b.Max != 255 {
		t.Fatalf("unexpected default bounds: %+v", b)
	}
}

func TestNew_ValueIsClamped(t *testing.T) {
	if v := New(WithValue(300)).Value(); v != 255 {
		t.Fatalf("expected 300 to clamp to 255, got %d", v)
	}
	if v := New(WithValue(-4)).Value(); v != 0 {
		t.Fatalf("expected -4 to clamp to 0, got %d", v)
	}
	if v := New(WithBounds(20, 10), WithValue(0)).Value(); v != 10 {
		t.Fatalf("expected swapped bounds [10,20] to clamp 0 to 10, got %d", v)
	}
	if v := New(WithBounds(10, 20)).Value(); v != 10 {
		t.Fatalf("expected default value at the lower bound, got %d", v)
	}
}

// TestRecomputeStatus_FullDomain walks every value of the 8-bit domain.
func TestRecomputeStatus_FullDomain(t *testing.T) {
	for v := 0; v <= 255; v++ {
		s := New(WithValue(v))
		s.RecomputeStatus()

		want := StatusNone
		switch v {
		case 0:
			want = StatusMinimum
		case 255:
			want = StatusMaximum
		}
		if s.Status() != want {
			t.Fatalf("value %d: expected status %q, got %q", v, want, s.Status())
		}

		// idempotent
		s.RecomputeStatus()
		if s.Status() != want {
			t.Fatalf("value %d: second recompute changed status to %q", v, s.Status())
		}
	}
}

func TestIncrement_SaturatesAtMax(t *testing.T) {
	s := New(WithValue(255))
	s.Increment()
	if s.Value() != 255 {
		t.Fatalf("expected 255 after increment at max, got %d", s.Value())
	}
}

func TestDecrement_SaturatesAtMin(t *testing.T) {
	s := New()
	s.Decrement()
	if s.Value() != 0 {
		t.Fatalf("expected 0 after decrement at min, got %d", s.Value())
	}
}

func TestIncrement_Sequence(t *testing.T) {
	for _, n := range []int{0, 1, 17, 254, 255, 256, 300} {
		s := New()
		for i := 0; i < n; i++ {
			s.Increment()
		}
		want := min(n, 255)
		if s.Value() != want {
			t.Fatalf("after %d increments expected %d, got %d", n, want, s.Value())
		}
	}
}

func TestRequestExit_Idempotent(t *testing.T) {
	s := New()
	s.RequestExit()
	if !s.ShouldExit() {
		t.Fatalf("expected shouldExit after first request")
	}
	s.RequestExit()
	if !s.ShouldExit() {
		t.Fatalf("expected shouldExit to stay true after second request")
	}
}

func TestCustomBounds(t *testing.T) {
	s := New(WithBounds(-2, 2))
	s.RecomputeStatus()
	if s.Value() != -2 || s.Status() != StatusMinimum {
		t.Fatalf("expected (-2, Minimum), got (%d, %q)", s.Value(), s.Status())
	}
	for i := 0; i < 10; i++ {
		s.Increment()
	}
	s.RecomputeStatus()
	if s.Value() != 2 || s.Status() != StatusMaximum {
		t.Fatalf("expected (2, Maximum), got (%d, %q)", s.Value(), s.Status())
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New(WithValue(7))
	s.RecomputeStatus()
	snap := s.Snapshot()
	s.Increment()
	if snap.Value != 7 {
		t.Fatalf("snapshot changed with the state: %d", snap.Value)
	}
	if snap.Bounds != s.Bounds() {
		t.Fatalf("snapshot bounds mismatch: %+v", snap.Bounds)
	}
}
