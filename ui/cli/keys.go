// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/toeirei/tally/internal/i18n"
	"github.com/toeirei/tally/ui/render"
	"golang.org/x/term"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the key bindings of every screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printKeys(cmd.OutOrStdout())
		},
	}
}

// KeysMarkdown lists the bindings of both screens as markdown tables.
func KeysMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", i18n.T("keys.heading"))

	for _, v := range []render.Variant{render.Counter, render.Placeholder} {
		fmt.Fprintf(&b, "\n## %s\n\n", i18n.T("keys.screen."+v.String()))
		fmt.Fprintf(&b, "| %s | %s |\n|---|---|\n", i18n.T("keys.column.key"), i18n.T("keys.column.action"))
		for _, binding := range slices.Filter(v.KeyMap().ShortHelp(), key.Binding.Enabled) {
			keys := slices.Map(binding.Keys(), func(k string) string { return "`" + k + "`" })
			fmt.Fprintf(&b, "| %s | %s |\n", strings.Join(keys, ", "), i18n.T(binding.Help().Desc))
		}
	}
	return b.String()
}

// printKeys styles the markdown with glamour when w is a terminal and
// writes it verbatim otherwise.
func printKeys(w io.Writer) error {
	md := KeysMarkdown()

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render key bindings: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
