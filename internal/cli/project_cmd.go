package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectShowCmd(app),
		newProjectEditCmd(app),
		newProjectStatusCmd(app),
		newProjectArchiveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, category, priority, status, desc string
	var tags, checklist []string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a new project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("project name is required")
				}
				sv, err := app.Planner.Settings(ctx)
				if err != nil {
					return err
				}
				if err := projectForm(&name, &category, &priority, sv.Settings.CategoryOrder).Run(); err != nil {
					return err
				}
			}

			p := domain.Project{
				Name:        name,
				Description: desc,
				Tags:        tags,
				Status:      status,
				Type:        strings.ToUpper(category),
				Priority:    domain.Priority(priority),
			}
			for _, text := range checklist {
				p.Checklist = append(p.Checklist, domain.ChecklistItem{Text: text})
			}

			created, err := app.Planner.AddProject(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", created.Name, created.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVarP(&category, "type", "t", "", "Category key (e.g. VIDEO, BLOG)")
	priorityFlag(cmd.Flags(), &priority)
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default: first status)")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable or comma-separated)")
	cmd.Flags().StringArrayVar(&checklist, "check", nil, "Checklist item (repeatable)")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show a project with its schedule and checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			v, err := app.Planner.ProjectView(ctx, p.ID, app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(v, p.Checklist))
			return nil
		},
	}
}

func newProjectEditCmd(app *App) *cobra.Command {
	var name, category, priority, desc string
	var tags []string

	cmd := &cobra.Command{
		Use:   "edit <project>",
		Short: "Change a project's name, description, category, priority or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("desc") {
				p.Description = desc
			}
			if flags.Changed("type") {
				p.Type = strings.ToUpper(category)
			}
			if flags.Changed("priority") {
				p.Priority = domain.Priority(priority)
			}
			if flags.Changed("tag") {
				p.Tags = tags
			}

			if err := app.Planner.UpdateProject(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s\n", p.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&category, "type", "t", "", "New category key")
	priorityFlag(cmd.Flags(), &priority)
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace tags (repeatable or comma-separated)")

	return cmd
}

func newProjectStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <project> <status>",
		Short: "Move a project to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Planner.ChangeStatus(ctx, p.ID, args[1]); err != nil {
				return err
			}
			updated, err := app.Planner.ResolveProject(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", p.Name, updated.Status)
			return nil
		},
	}
}

func newProjectArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <project>",
		Short: "Archive a project, or restore it if already archived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			out, err := app.Planner.ToggleArchive(ctx, p.ID)
			if err != nil {
				return err
			}
			if domain.IsArchivedStatus(out.Status) {
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %s\n", out.Name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Restored %s as %s\n", out.Name, out.Status)
			}
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <project>",
		Aliases: []string{"delete"},
		Short:   "Delete a project and its schedule entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.resolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(yes, fmt.Sprintf("Delete %q?", p.Name))
			if err != nil || !ok {
				return err
			}
			if err := app.Planner.DeleteProject(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}
