// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Tally using Cobra.
// It loads configuration, sets up logging and i18n, and hands the terminal
// to the configured driver. Screen logic lives in `core` and `ui`.
package cli
