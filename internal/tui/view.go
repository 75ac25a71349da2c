package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/kanban/internal/ui"
)

// rows used by header, status line and footer
const chromeHeight = 6

func (m Model) View() string {
	t := ui.Current()

	var sections []string
	sections = append(sections, m.headerView())
	if m.state.MenuOpen {
		sections = append(sections, m.menuView())
	}
	if m.err != nil {
		sections = append(sections, t.Error.Render(ui.Clip("✖ could not load tickets: "+m.err.Error(), m.width)))
	}

	switch {
	case m.loading:
		sections = append(sections, m.spinner.View()+" loading tickets…")
	default:
		sections = append(sections, m.boardView())
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView() string {
	t := ui.Current()
	button := "[ Display ▾ ]"
	if m.state.MenuOpen {
		button = t.Selected.Render("[ Display ▴ ]")
	}
	summary := t.Muted.Render(fmt.Sprintf("grouped by %s · ordered by %s · %d tickets",
		m.state.Grouping, m.state.Ordering, m.view.Len()))
	return ui.Clip(button+"  "+t.Title.Render("Kanban Board")+"  "+summary, m.width)
}

func (m Model) menuView() string {
	t := ui.Current()
	var lines []string
	section := ""
	for i, e := range m.menu {
		if e.section != section {
			if section != "" {
				lines = append(lines, "")
			}
			section = e.section
			lines = append(lines, t.Title.Render(section))
		}
		mark := "  "
		if e.active(m.state) {
			mark = t.Success.Render("● ")
		}
		label := e.label
		if i == m.menuCursor {
			label = t.Selected.Render(label)
		}
		lines = append(lines, mark+label)
	}
	return ui.Panel(lines)
}

func (m Model) boardView() string {
	if len(m.view.Columns) == 0 {
		return ui.Current().Muted.Render("no tickets")
	}
	visibleCols := m.visibleColumns()
	visibleCards := m.visibleCards()
	end := min(len(m.view.Columns), m.colOffset+visibleCols)

	cols := make([]string, 0, end-m.colOffset)
	for ci := m.colOffset; ci < end; ci++ {
		c := m.view.Columns[ci]
		focused := ci == m.col

		top := 0
		if focused {
			top = m.cardTop
		}
		last := min(len(c.Items), top+visibleCards)
		cards := make([]string, 0, last-top+2)
		if top > 0 {
			cards = append(cards, ui.Current().Muted.Render(fmt.Sprintf("… %d above", top)))
		}
		for i := top; i < last; i++ {
			cards = append(cards, ui.Card(c.Items[i], m.colWidth, focused && i == m.card))
		}
		if rest := len(c.Items) - last; rest > 0 {
			cards = append(cards, ui.Current().Muted.Render(fmt.Sprintf("… %d more", rest)))
		}
		cols = append(cols, ui.Column(c.Title, len(c.Items), m.colWidth, focused, cards))
	}

	out := ui.Board(cols)
	if hidden := len(m.view.Columns) - visibleCols; hidden > 0 {
		out += "\n" + ui.Current().Muted.Render(fmt.Sprintf("columns %d-%d of %d", m.colOffset+1, end, len(m.view.Columns)))
	}
	return out
}

func (m Model) visibleColumns() int {
	return max(1, (m.width+1)/(m.colWidth+1))
}

func (m Model) visibleCards() int {
	avail := m.height - chromeHeight
	if m.state.MenuOpen {
		avail -= len(m.menu) + 4
	}
	return max(1, avail/ui.CardHeight)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
