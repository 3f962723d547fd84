// Copyright (c) 2026 Keymaster Team
// Tally - bounded counter terminal app
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render draws a screen into a string: a thick bordered panel in the
// upper 80% of the area with a centered title, the key instructions in the
// bottom border, and the status message centered in the remaining 20%.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tally/core/counter"
	"github.com/toeirei/tally/internal/i18n"
	"github.com/toeirei/tally/ui/tui/util"
)

const panelPercent = 80

// colorPalette defines the colors used by the panel.
const (
	colorKey     = lipgloss.Color("12") // blue
	colorValue   = lipgloss.Color("11") // yellow
	colorSpecial = lipgloss.Color("208")
)

// Renderer holds styles bound to one lipgloss renderer, so that drivers that
// cannot interpret escape codes can ask for plain output.
type Renderer struct {
	border      lipgloss.Border
	title       lipgloss.Style
	value       lipgloss.Style
	status      lipgloss.Style
	borderStyle lipgloss.Style
	help        help.Model
}

// New creates a Renderer. A nil r uses lipgloss' default renderer.
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	keyStyle := r.NewStyle().Foreground(colorKey).Bold(true)

	h := help.New()
	h.ShortSeparator = " "
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = r.NewStyle()
	h.Styles.ShortSeparator = r.NewStyle()
	h.Styles.Ellipsis = r.NewStyle()

	return &Renderer{
		border:      lipgloss.ThickBorder(),
		title:       r.NewStyle().Bold(true),
		value:       r.NewStyle().Foreground(colorValue),
		status:      r.NewStyle().Foreground(colorSpecial).Bold(true),
		borderStyle: r.NewStyle(),
		help:        h,
	}
}

// View renders variant v for snap into an area of size.
func (r *Renderer) View(v Variant, snap counter.Snapshot, size util.Size) string {
	size = size.OrDefault()
	width := max(size.Width, 2)
	panelHeight := util.Clamp(2, util.Percent(size.Height, panelPercent), max(size.Height, 2))
	statusHeight := max(size.Height-panelHeight, 0)

	panel := r.panel(width, panelHeight, r.title.Render(i18n.T(v.titleID())), r.body(v, snap), r.instructions(v, width-2))
	if statusHeight == 0 {
		return panel
	}

	var status string
	if v == Counter && snap.Status != counter.StatusNone {
		status = r.status.Render(StatusLabel(snap.Status))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		panel,
		lipgloss.Place(width, statusHeight, lipgloss.Center, lipgloss.Center, status),
	)
}

// StatusLabel is the translated display text of a status.
func StatusLabel(s counter.Status) string {
	if s == counter.StatusNone {
		return ""
	}
	return i18n.T("status." + string(s))
}

func (r *Renderer) body(v Variant, snap counter.Snapshot) string {
	if v == Placeholder {
		return i18n.T("placeholder.body")
	}
	return i18n.TData("counter.value", map[string]any{
		"Value": r.value.Render(strconv.Itoa(snap.Value)),
	})
}

// instructions lists the enabled bindings of v, padded by one space on each
// side so they sit inside the bottom border.
func (r *Renderer) instructions(v Variant, width int) string {
	m := r.help
	m.Width = max(width-2, 0)
	return " " + shortHelpView(m, v.KeyMap().ShortHelp()) + " "
}

func (r *Renderer) panel(width, height int, title, body, footer string) string {
	inner := width - 2
	bd := r.border

	lines := make([]string, 0, height)
	lines = append(lines, r.borderStyle.Render(bd.TopLeft)+r.rule(title, inner, bd.Top)+r.borderStyle.Render(bd.TopRight))

	rows := strings.Split(body, "\n")
	for i := 0; i < height-2; i++ {
		var row string
		if i < len(rows) {
			row = rows[i]
		}
		lines = append(lines, r.borderStyle.Render(bd.Left)+
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, truncate(row, inner))+
			r.borderStyle.Render(bd.Right))
	}

	lines = append(lines, r.borderStyle.Render(bd.BottomLeft)+r.rule(footer, inner, bd.Bottom)+r.borderStyle.Render(bd.BottomRight))
	return strings.Join(lines, "\n")
}

// rule centers text in a border line of the given width.
func (r *Renderer) rule(text string, width int, fill string) string {
	text = truncate(text, width)
	pad := width - lipgloss.Width(text)
	left := pad / 2
	return r.borderStyle.Render(strings.Repeat(fill, left)) + text + r.borderStyle.Render(strings.Repeat(fill, pad-left))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
