package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/cadence/internal/importer"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write projects, schedule and settings as JSON (stdout when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Planner.Export(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			if len(args) == 0 || args[0] == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects and %d schedule entries to %s\n",
				len(doc.Projects), len(doc.Schedule), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all projects, schedule and settings with an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.LoadDocument(args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(yes, "Replace all projects and schedule entries?")
			if err != nil || !ok {
				return err
			}

			res, err := app.Planner.Import(cmd.Context(), doc)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Imported %d projects and %d schedule entries\n", res.ProjectCount, res.ScheduleCount)
			if fixes := describeRepairs(res.Repairs); fixes != "" {
				fmt.Fprintf(w, "Repaired: %s\n", fixes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func describeRepairs(r importer.RepairReport) string {
	var parts []string
	add := func(n int, what string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, what))
		}
	}
	add(r.DroppedProjects, "projects dropped")
	add(r.FixedTypes, "categories reset")
	add(r.FixedStatuses, "statuses reset")
	add(r.FixedPriorities, "priorities cleared")
	add(r.DroppedSchedule, "orphan schedule entries dropped")
	add(r.DuplicateSchedule, "duplicate schedule entries dropped")
	return strings.Join(parts, ", ")
}
