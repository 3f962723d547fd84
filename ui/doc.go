// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user-facing layers of Tally.
//
// The CLI lives in ui/cli; screens are rendered by ui/render and shown by one
// of three drivers: ui/tui (bubbletea), ui/cells (tcell) and ui/rawterm
// (x/term + termenv).
package ui
