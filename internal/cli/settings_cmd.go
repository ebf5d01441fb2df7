package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change alert thresholds, statuses, sort and categories",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsCategoryCmd(app),
	)

	return cmd
}

func printSettings(cmd *cobra.Command, sv *service.SettingsView) {
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(sv.Settings, sv.Categories, sv.Warnings))
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			sv, err := app.Planner.Settings(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd, sv)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting.

Keys:
  warning_days     days before a scheduled date that raise a warning
  critical_days    days before a scheduled date that raise a critical alert
  default_sort     DEFAULT, ALPHA, CATEGORY, PRIORITY or DATE
  status_mode      DEFAULT or CUSTOM
  statuses         custom statuses as ID:Label[:done],... (ARCHIVED is added)
  category_order   comma-separated category keys`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := strings.ToLower(args[0]), args[1]
			sv, err := app.Planner.UpdateSettings(cmd.Context(), func(s *domain.AppSettings) error {
				return applySetting(s, key, value)
			})
			if err != nil {
				return err
			}
			printSettings(cmd, sv)
			return nil
		},
	}
}

func applySetting(s *domain.AppSettings, key, value string) error {
	switch key {
	case "warning_days", "critical_days":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		if key == "warning_days" {
			s.WarningDays = n
		} else {
			s.CriticalDays = n
		}
	case "default_sort":
		mode := domain.SortMode(strings.ToUpper(value))
		if !domain.ValidSortModes[mode] {
			return fmt.Errorf("unknown sort mode %q", value)
		}
		s.DefaultSort = mode
	case "status_mode":
		mode := domain.StatusMode(strings.ToUpper(value))
		if mode != domain.StatusModeDefault && mode != domain.StatusModeCustom {
			return fmt.Errorf("status_mode must be DEFAULT or CUSTOM, got %q", value)
		}
		s.StatusMode = mode
	case "statuses":
		defs, err := parseStatuses(value)
		if err != nil {
			return err
		}
		s.CustomStatuses = defs
	case "category_order":
		s.CategoryOrder = splitList(value, true)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// parseStatuses reads "ID:Label[:done],..." into status definitions.
func parseStatuses(value string) ([]domain.StatusDefinition, error) {
	var defs []domain.StatusDefinition
	for _, entry := range splitList(value, false) {
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
			return nil, fmt.Errorf("status %q must look like ID:Label or ID:Label:done", entry)
		}
		d := domain.StatusDefinition{ID: strings.ToUpper(parts[0]), Label: parts[1]}
		if len(parts) == 3 {
			if !strings.EqualFold(parts[2], "done") {
				return nil, fmt.Errorf("status %q: third field must be \"done\"", entry)
			}
			d.IsCompleted = true
		}
		defs = append(defs, d)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("at least one status is required")
	}
	return defs, nil
}

func splitList(value string, upper bool) []string {
	var out []string
	for _, f := range strings.Split(value, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if upper {
			f = strings.ToUpper(f)
		}
		out = append(out, f)
	}
	return out
}

func newSettingsCategoryCmd(app *App) *cobra.Command {
	var label, color, icon string

	cmd := &cobra.Command{
		Use:   "category <KEY>",
		Short: "Add or change a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sv, err := app.Planner.Settings(ctx)
			if err != nil {
				return err
			}
			c := sv.Categories[strings.ToUpper(args[0])]
			flags := cmd.Flags()
			if flags.Changed("label") {
				c.Label = label
			}
			if flags.Changed("color") {
				c.Color = color
			}
			if flags.Changed("icon") {
				c.Icon = icon
			}
			if c.Label == "" {
				return fmt.Errorf("new category %s needs --label", strings.ToUpper(args[0]))
			}

			sv, err = app.Planner.SetCategory(ctx, args[0], c)
			if err != nil {
				return err
			}
			printSettings(cmd, sv)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Display label")
	cmd.Flags().StringVar(&color, "color", "", "Hex color, e.g. #83a598")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon glyph")
	return cmd
}
