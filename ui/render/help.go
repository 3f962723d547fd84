// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

package render

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tally/internal/i18n"
)

// shortHelpView renders the enabled bindings as "Desc <Key>" pairs with
// m's short help styles. help.Model.ShortHelpView puts the key first, which
// does not fit a panel border. When m.Width is set, bindings that do not fit
// are replaced by the ellipsis.
func shortHelpView(m help.Model, bindings []key.Binding) string {
	items := slices.Map(slices.Filter(bindings, key.Binding.Enabled), func(kb key.Binding) string {
		return m.Styles.ShortDesc.Inline(true).Render(i18n.T(kb.Help().Desc)) + " " +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)
	})

	var b strings.Builder
	var usedWidth int
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	for i, item := range items {
		sep := ""
		if i > 0 {
			sep = separator
		}
		itemLen := lipgloss.Width(sep + item)

		// when not last, keep room for the tail
		var reserve int
		if i < len(items)-1 {
			reserve = lipgloss.Width(separator + tail)
		}
		if m.Width > 0 && usedWidth+itemLen+reserve > m.Width {
			if usedWidth+lipgloss.Width(sep+tail) <= m.Width {
				b.WriteString(sep + tail)
			}
			break
		}
		usedWidth += itemLen
		b.WriteString(sep + item)
	}
	return b.String()
}
