package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/spf13/cobra"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Edit a project's checklist (not recorded for undo)",
	}

	cmd.AddCommand(
		newChecklistOpCmd(app, "add <project> <text>", "Add a checklist item", engine.ChecklistAdd, 2),
		newChecklistOpCmd(app, "toggle <project> <item>", "Toggle an item done or not done", engine.ChecklistToggle, 2),
		newChecklistOpCmd(app, "edit <project> <item> <text>", "Change an item's text", engine.ChecklistEdit, 3),
		newChecklistOpCmd(app, "rm <project> <item>", "Remove an item", engine.ChecklistDelete, 2),
	)

	return cmd
}

// newChecklistOpCmd builds one checklist subcommand. Items are referenced by
// 1-based position or ID prefix; trailing words form the text.
func newChecklistOpCmd(app *App, use, short string, kind engine.ChecklistOpKind, minArgs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(minArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}

			op := engine.ChecklistOp{Kind: kind}
			rest := args[1:]
			if kind != engine.ChecklistAdd {
				if op.ItemID, err = resolveChecklistItem(p, rest[0]); err != nil {
					return err
				}
				rest = rest[1:]
			}
			op.Text = strings.Join(rest, " ")

			out, err := app.Planner.MutateChecklist(ctx, p.ID, op)
			if err != nil {
				return err
			}
			done, total := out.ChecklistProgress()
			fmt.Fprintf(cmd.OutOrStdout(), "%s checklist %d/%d\n", out.Name, done, total)
			writeChecklist(cmd, out.Checklist)
			return nil
		},
	}
}

func writeChecklist(cmd *cobra.Command, items []domain.ChecklistItem) {
	w := cmd.OutOrStdout()
	for i, c := range items {
		mark := "[ ]"
		if c.IsCompleted {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %d. %s %s\n", i+1, mark, c.Text)
	}
}
