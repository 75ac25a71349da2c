package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
	"github.com/idilsaglam/kanban/internal/ui"
)

func newListCmd(e *env) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print the board once and exit",
		Example: `  kanban ls
  kanban ls --group user --order title
  kanban ls --flat --file ./tickets.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := e.load(cmd.Context())
			if err != nil {
				return err
			}
			lines := []string{headerLine(view), ""}
			if flat {
				lines = append(lines, flatLines(view.Ordered)...)
			} else {
				lines = append(lines, boardLines(view, e.cfg.UI.ColumnWidth)...)
			}
			lines = append(lines, "", ui.Current().Muted.Render("Tip: `kanban` opens the interactive board"))
			fmt.Fprintln(e.stdout, ui.Panel(lines))
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "print one ordered list instead of columns")
	return cmd
}

// load performs the single fetch and derives the view. A malformed payload
// is logged and treated as an empty board.
func (e *env) load(ctx context.Context) (board.View, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	items, err := e.newSource().Fetch(ctx)
	switch {
	case model.Recoverable(err):
		e.log.Warn("ticket payload malformed, showing remaining tickets", zap.Error(err), zap.Int("kept", len(items)))
	case err != nil:
		e.log.Error("error fetching tickets", zap.Error(err))
		return board.View{}, err
	}
	e.log.Debug("tickets loaded", zap.Int("count", len(items)))
	return board.Derive(items, e.initialState(), e.cfg.Board.Language()), nil
}

// priority counts, most urgent first
func stats(items []model.WorkItem) []int {
	counts := make([]int, int(model.PriorityUrgent)+2)
	for _, it := range items {
		p := int(it.Priority)
		if p < 0 || p > int(model.PriorityUrgent) {
			counts[len(counts)-1]++
			continue
		}
		counts[int(model.PriorityUrgent)-p]++
	}
	return counts
}

func headerLine(v board.View) string {
	t := ui.Current()
	line := t.Title.Render("Kanban Board")
	counts := stats(v.Ordered)
	for i, n := range counts[:len(counts)-1] {
		if n == 0 {
			continue
		}
		p := model.PriorityUrgent - model.Priority(i)
		line += fmt.Sprintf("  %s %d", t.PriorityBadge(p), n)
	}
	if unknown := counts[len(counts)-1]; unknown > 0 {
		line += fmt.Sprintf("  %s %d", t.Muted.Render("Unknown"), unknown)
	}
	line += fmt.Sprintf("  %s %d", t.Accent.Render("Total"), v.Len())
	line += "\n" + t.Muted.Render(fmt.Sprintf("grouped by %s · ordered by %s", v.Grouping, v.Ordering))
	return line
}

func flatLines(items []model.WorkItem) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no tickets")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		title := ui.Clip(it.Title, 80)
		out = append(out, fmt.Sprintf("%s %s %s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			t.PriorityBadge(it.Priority),
			t.Accent.Render(string(it.ID)),
			title,
			t.Muted.Render(fmt.Sprintf("(%s, %s)", it.Status, it.UserID)),
		))
	}
	return out
}

func boardLines(v board.View, width int) []string {
	cols := make([]string, 0, len(v.Columns))
	for _, c := range v.Columns {
		cards := make([]string, 0, len(c.Items))
		for _, it := range c.Items {
			cards = append(cards, ui.Card(it, width, false))
		}
		cols = append(cols, ui.Column(c.Title, len(c.Items), width, false, cards))
	}
	return []string{ui.Board(cols)}
}
