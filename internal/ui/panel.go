package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/kanban/internal/model"
)

// Panel draws a framed box around lines using the current theme.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Clip shortens s to w cells, ANSI-aware.
func Clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}

// Card renders one ticket at the given outer width.
func Card(it model.WorkItem, width int, selected bool) string {
	t := Current()
	inner := width - 4
	title := it.Title
	if title == "" {
		title = "(untitled)"
	}
	lines := []string{
		t.Title.Render(Clip(title, inner)),
		t.Muted.Render(Clip(string(it.ID), inner)),
		Clip("Status: "+it.Status, inner),
		Clip("Assigned to: "+string(it.UserID), inner),
		Clip("Priority: "+t.PriorityBadge(it.Priority), inner),
	}
	border := t.BorderColor
	if selected {
		border = t.ActiveColor
	}
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2)
	if selected {
		style = style.Bold(true)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// CardHeight is the number of rows a Card occupies.
const CardHeight = 7

// Column stacks a header and pre-rendered cards.
func Column(title string, count, width int, focused bool, cards []string) string {
	t := Current()
	head := t.Accent
	if focused {
		head = t.Selected
	}
	header := head.Render(Clip(title, width-6)) + " " + t.Muted.Render(fmt.Sprintf("%d", count))
	body := cards
	if len(body) == 0 {
		body = []string{t.Muted.Render("(empty)")}
	}
	return lipgloss.NewStyle().Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, body...)...),
	)
}

// Board lays columns side by side.
func Board(columns []string) string {
	if len(columns) == 0 {
		return Current().Muted.Render("no tickets")
	}
	spaced := make([]string, 0, len(columns)*2)
	for i, c := range columns {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}
