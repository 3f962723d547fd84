// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Tally.
//
// Usage:
//
//	go run . [flags]
//	./tally [flags]
//
// This launches the counter screen. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/tally/ui/cli"
)

func main() {
	// the driver has restored the terminal by the time Execute returns
	if err := cli.Execute(); err != nil {
		log.Printf("tally: %v", err)
		os.Exit(1)
	}
}
