package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"s"},
		Short:   "Place projects on the calendar",
	}

	cmd.AddCommand(
		newScheduleSetCmd(app),
		newScheduleClearCmd(app),
		newScheduleNoteCmd(app),
		newScheduleListCmd(app),
	)

	return cmd
}

func newScheduleSetCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "set <project> <YYYY-MM-DD>",
		Short: "Schedule a project, moving it if already scheduled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			date, err := domain.ParseDate(args[1])
			if err != nil {
				return err
			}
			item, err := app.Planner.Schedule(ctx, p.ID, date)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("note") {
				if err := app.Planner.SetScheduleNote(ctx, item.ID, note); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s on %s\n", p.Name, domain.FormatDate(item.Date))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Note for the calendar entry")
	return cmd
}

// scheduledItem returns the schedule entry of the referenced project.
func (a *App) scheduledItem(ctx context.Context, ref string) (domain.Project, domain.ScheduleItem, error) {
	p, err := a.resolveProject(ctx, ref)
	if err != nil {
		return p, domain.ScheduleItem{}, err
	}
	state, err := a.Planner.State(ctx)
	if err != nil {
		return p, domain.ScheduleItem{}, err
	}
	item, ok := state.ScheduleFor(p.ID)
	if !ok {
		return p, item, fmt.Errorf("%s is not scheduled: %w", p.Name, engine.ErrScheduleNotFound)
	}
	return p, item, nil
}

func newScheduleClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <project>",
		Short: "Remove a project from the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, item, err := app.scheduledItem(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.Unschedule(ctx, item.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unscheduled %s\n", p.Name)
			return nil
		},
	}
}

func newScheduleNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note <project> <text>",
		Short: "Set the note on a project's calendar entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, item, err := app.scheduledItem(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.SetScheduleNote(ctx, item.ID, strings.Join(args[1:], " ")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note for %s\n", p.Name)
			return nil
		},
	}
}

func newScheduleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List calendar entries in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Planner.ScheduleEntries(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([]formatter.ScheduleRow, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, formatter.ScheduleRow{
					ScheduleID:  e.Item.ID,
					Date:        domain.FormatDate(e.Item.Date),
					ProjectName: e.Project.Name,
					Note:        e.Item.Note,
				})
			}
			sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScheduleList(rows))
			return nil
		},
	}
}

func newDropCmd(app *App) *cobra.Command {
	var fromCalendar, yes bool

	cmd := &cobra.Command{
		Use:   "drop <project> <target>",
		Short: "Apply a drag-and-drop move: date:YYYY-MM-DD, status:ID or trash",
		Long: `Apply a drag-and-drop move to a project.

Targets:
  date:YYYY-MM-DD  schedule or reschedule the project
  status:ID        move the project to a status column
  trash            delete the project, or with --calendar remove only its
                   calendar entry`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target, err := engine.ParseTarget(args[1])
			if err != nil {
				return err
			}
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}

			in := engine.Intent{Source: engine.Source{ProjectID: p.ID}, Target: target}
			if fromCalendar {
				_, item, err := app.scheduledItem(ctx, p.ID)
				if err != nil {
					return err
				}
				in.Source.ScheduleID = item.ID
			}
			if target.Kind == engine.TargetTrash && !fromCalendar {
				ok, err := app.confirm(yes, fmt.Sprintf("Delete %q?", p.Name))
				if err != nil || !ok {
					return err
				}
			}

			if _, err := app.Planner.ApplyIntent(ctx, in); err != nil {
				if errors.Is(err, engine.ErrInvalidStatus) {
					return fmt.Errorf("%w (see 'cadence settings show')", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", p.Name, args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromCalendar, "calendar", false, "The project was dragged from its calendar entry")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation when trashing a project")
	return cmd
}
