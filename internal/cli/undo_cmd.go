package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/spf13/cobra"
)

func newUndoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last change to projects or schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			if _, err := app.Planner.Undo(ctx); err != nil {
				if errors.Is(err, engine.ErrNothingToUndo) {
					fmt.Fprintln(w, "Nothing to undo.")
					return nil
				}
				return err
			}
			depth, err := app.Planner.HistoryDepth(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Undone. %d more step(s) available.\n", depth)
			return nil
		},
	}
}
