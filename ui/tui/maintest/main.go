// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// maintest runs a screen with the bubbletea driver and no config, logging or
// CLI around it: `go run ./ui/tui/maintest [placeholder]`.
package main

import (
	"fmt"
	"os"

	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/ui/render"
	tui "github.com/toeirei/tally/ui/tui"
)

func main() {
	v := render.Counter
	if len(os.Args) > 1 && os.Args[1] == render.Placeholder.String() {
		v = render.Placeholder
	}

	s := counter.New()
	if err := tui.Run(v, s); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("%s closed at %d\n", v, s.Value())
}
