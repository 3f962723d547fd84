// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package counter holds the application state shared by every screen: a
// saturating integer counter, its derived status message and the exit flag.
package counter

const (
	// DefaultMin and DefaultMax are the bounds of the 8-bit counter.
	DefaultMin = 0
	DefaultMax = 255
)

// Status is the message derived from the counter value.
type Status string

const (
	StatusNone    Status = ""
	StatusMinimum Status = "Minimum"
	StatusMaximum Status = "Maximum"
)

// StatusFor derives the status for value within [lo, hi].
func StatusFor(value, lo, hi int) Status {
	switch value {
	case lo:
		return StatusMinimum
	case hi:
		return StatusMaximum
	default:
		return StatusNone
	}
}

// Bounds is the inclusive value range of a State.
type Bounds struct {
	Min int
	Max int
}

// State is mutated only by the input loop. Renderers get a Snapshot.
type State struct {
	bounds     Bounds
	value      int
	status     Status
	shouldExit bool
}

type options struct {
	bounds  Bounds
	initial *int
}

// Option configures New.
type Option func(*options)

// WithBounds sets the inclusive range. Inverted bounds are swapped.
func WithBounds(lo, hi int) Option {
	return func(o *options) {
		if lo > hi {
			lo, hi = hi, lo
		}
		o.bounds = Bounds{Min: lo, Max: hi}
	}
}

// WithValue sets the starting value. It is clamped into the bounds.
func WithValue(v int) Option {
	return func(o *options) {
		o.initial = &v
	}
}

// New returns a State at the lower bound with an empty status. The status
// becomes consistent with the value on the first RecomputeStatus.
func New(opts ...Option) *State {
	o := options{bounds: Bounds{Min: DefaultMin, Max: DefaultMax}}
	for _, opt := range opts {
		opt(&o)
	}

	value := o.bounds.Min
	if o.initial != nil {
		value = min(max(o.bounds.Min, *o.initial), o.bounds.Max)
	}
	return &State{bounds: o.bounds, value: value}
}

// Increment adds one unless the value sits at the upper bound.
func (s *State) Increment() {
	if s.value < s.bounds.Max {
		s.value++
	}
}

// Decrement subtracts one unless the value sits at the lower bound.
func (s *State) Decrement() {
	if s.value > s.bounds.Min {
		s.value--
	}
}

// RecomputeStatus derives the status from the current value.
func (s *State) RecomputeStatus() {
	s.status = StatusFor(s.value, s.bounds.Min, s.bounds.Max)
}

// RequestExit marks the state for exit. It cannot be undone.
func (s *State) RequestExit() {
	s.shouldExit = true
}

// Value returns the current counter value.
func (s *State) Value() int { return s.value }

// Status returns the status cached by the last RecomputeStatus.
func (s *State) Status() Status { return s.status }

// ShouldExit reports whether a quit was requested.
func (s *State) ShouldExit() bool { return s.shouldExit }

// Bounds returns the inclusive value range.
func (s *State) Bounds() Bounds { return s.bounds }

// Snapshot copies the state for rendering.
func (s *State) Snapshot() Snapshot { return Snapshot{s.value, s.status, s.shouldExit, s.bounds} }

// Snapshot is a read-only copy of a State taken for rendering.
type Snapshot struct {
	Value      int
	Status     Status
	ShouldExit bool
	Bounds     Bounds
}
