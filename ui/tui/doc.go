// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs a screen as a bubbletea program. Bubbletea owns terminal
// setup and restoration; the model only translates key messages into
// input events and renders through package render.
package tui
