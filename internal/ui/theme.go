package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/kanban/internal/model"
)

// Theme bundles palette, borders and priority glyphs.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Warn lipgloss.Style
	Selected                                   lipgloss.Style

	Border         lipgloss.Border
	BorderColor    lipgloss.TerminalColor
	ActiveColor    lipgloss.TerminalColor
	PriorityColors map[model.Priority]lipgloss.TerminalColor
	PriorityGlyphs map[model.Priority]string
}

var current = newTheme("classic")

// SetTheme switches the theme used by every renderer. Unknown names select classic.
func SetTheme(name string) { current = newTheme(name) }

// Current returns the active theme.
func Current() Theme { return current }

// Themes lists the available theme names.
func Themes() []string { return []string{"classic", "neon", "mono"} }

func newTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")),
			Border:   lipgloss.RoundedBorder(),

			BorderColor: lipgloss.Color("5"),
			ActiveColor: lipgloss.Color("14"),
			PriorityColors: map[model.Priority]lipgloss.TerminalColor{
				model.PriorityUrgent: lipgloss.Color("9"),
				model.PriorityHigh:   lipgloss.Color("11"),
				model.PriorityMedium: lipgloss.Color("14"),
				model.PriorityLow:    lipgloss.Color("10"),
				model.PriorityNone:   lipgloss.Color("8"),
			},
			PriorityGlyphs: defaultGlyphs(),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:     "mono",
			Title:    plain.Bold(true),
			Muted:    plain,
			Accent:   plain,
			Success:  plain,
			Error:    plain.Bold(true),
			Warn:     plain,
			Selected: plain.Reverse(true),
			Border:   lipgloss.NormalBorder(),

			BorderColor:    lipgloss.NoColor{},
			ActiveColor:    lipgloss.NoColor{},
			PriorityColors: map[model.Priority]lipgloss.TerminalColor{},
			PriorityGlyphs: map[model.Priority]string{
				model.PriorityUrgent: "!!",
				model.PriorityHigh:   "^",
				model.PriorityMedium: "=",
				model.PriorityLow:    "v",
				model.PriorityNone:   "-",
			},
		}
	default: // classic
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Border:   lipgloss.RoundedBorder(),

			BorderColor: lipgloss.Color("8"),
			ActiveColor: lipgloss.Color("12"),
			PriorityColors: map[model.Priority]lipgloss.TerminalColor{
				model.PriorityUrgent: lipgloss.Color("196"),
				model.PriorityHigh:   lipgloss.Color("214"),
				model.PriorityMedium: lipgloss.Color("39"),
				model.PriorityLow:    lipgloss.Color("42"),
				model.PriorityNone:   lipgloss.Color("245"),
			},
			PriorityGlyphs: defaultGlyphs(),
		}
	}
}

func defaultGlyphs() map[model.Priority]string {
	return map[model.Priority]string{
		model.PriorityUrgent: "⚠",
		model.PriorityHigh:   "▲",
		model.PriorityMedium: "■",
		model.PriorityLow:    "▼",
		model.PriorityNone:   "…",
	}
}

// PriorityBadge renders glyph and label for p, e.g. "▲ High".
func (t Theme) PriorityBadge(p model.Priority) string {
	glyph, ok := t.PriorityGlyphs[p]
	if !ok {
		glyph = "?"
	}
	style := lipgloss.NewStyle()
	if c, ok := t.PriorityColors[p]; ok {
		style = style.Foreground(c)
	}
	return style.Render(glyph + " " + p.Label())
}
