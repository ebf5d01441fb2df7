package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month, today time.Time
	var static bool

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month calendar (interactive on a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			day := app.today(today)
			start := day
			if !month.IsZero() {
				start = month
			}

			if static || !app.interactive() {
				m, err := app.Planner.Month(ctx, start.Year(), start.Month(), day, app.WeekStart)
				if err != nil {
					return err
				}
				sv, err := app.Planner.Settings(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(m, sv.Categories))
				return nil
			}

			p := tea.NewProgram(
				newCalendarModel(ctx, app, start, day),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
			)
			_, err := p.Run()
			return err
		},
	}

	monthFlag(cmd.Flags(), &month)
	todayFlag(cmd.Flags(), &today)
	cmd.Flags().BoolVar(&static, "print", false, "Print the month instead of opening the interactive view")
	return cmd
}
