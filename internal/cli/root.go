package cli

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

// App holds the planner service and the terminal hooks used by CLI commands.
type App struct {
	Planner service.PlannerService

	// Now defaults to time.Now. Tests pin it.
	Now func() time.Time

	// WeekStart is the first column of the calendar grid.
	WeekStart time.Weekday

	// IsInteractive reports whether stdin is a terminal. When nil or false,
	// prompts are skipped and destructive commands require --yes.
	IsInteractive func() bool

	// Confirm overrides the interactive yes/no prompt.
	Confirm func(title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// today returns the override when set, else the current local day.
func (a *App) today(override time.Time) time.Time {
	if !override.IsZero() {
		return domain.StartOfDay(override)
	}
	return domain.StartOfDay(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadence",
		Short:         "Content publishing planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBoardCmd(app),
		newAlertsCmd(app),
		newProjectCmd(app),
		newScheduleCmd(app),
		newDropCmd(app),
		newChecklistCmd(app),
		newUndoCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSettingsCmd(app),
		newCalendarCmd(app),
	)

	return root
}
