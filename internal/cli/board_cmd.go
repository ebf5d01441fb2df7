package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var sortMode, locale string
	var today time.Time

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the pipeline and published projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewBoardRequest()
			now := app.today(today)
			req.Now = &now
			req.Sort = domain.SortMode(sortMode)
			req.Locale = locale

			resp, err := app.Planner.Board(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sortMode, "sort", "s", "", "Sort mode: default, alpha, category, priority, date (default: settings)")
	cmd.Flags().StringVar(&locale, "locale", "", "Collation locale for name ordering (e.g. de, sv)")
	todayFlag(cmd.Flags(), &today)

	return cmd
}

func newAlertsCmd(app *App) *cobra.Command {
	var today time.Time

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List projects with approaching or missed deadlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.today(today)
			resp, err := app.Planner.Alerts(cmd.Context(), contract.AlertsRequest{Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlerts(resp))
			return nil
		},
	}

	todayFlag(cmd.Flags(), &today)
	return cmd
}
