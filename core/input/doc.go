// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input is the terminal-independent event model. Drivers translate
// their native events into Event values named with bubbletea key strings
// ("left", "right", "q", "ctrl+c", ...) and Apply dispatches them onto a
// counter.State through a KeyMap.
package input
