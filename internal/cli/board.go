package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/tui"
)

func newBoardCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd.Context(), e)
		},
	}
}

func runBoard(ctx context.Context, e *env) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return tui.Run(ctx, tui.Options{
		Source:      e.newSource(),
		State:       e.initialState(),
		Language:    e.cfg.Board.Language(),
		ColumnWidth: e.cfg.UI.ColumnWidth,
		Log:         e.log,
	})
}

func (e *env) initialState() board.ViewState {
	return board.ViewState{
		Grouping: e.cfg.Board.GroupKey(),
		Ordering: e.cfg.Board.SortMode(),
	}
}
