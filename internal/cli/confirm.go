package cli

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cadenceHuhTheme returns a huh theme matching the formatter palette.
func cadenceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirm asks before a destructive command. --yes skips the prompt;
// without a terminal the command refuses instead of blocking.
func (a *App) confirm(yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if a.Confirm != nil {
		return a.Confirm(title)
	}
	if !a.interactive() {
		return false, fmt.Errorf("%s: not a terminal, pass --yes to confirm", title)
	}
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false).Run()
	return ok, err
}

// projectForm collects the fields of a new project interactively.
func projectForm(name, category, priority *string, categories []string) *huh.Form {
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c, c))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(name).
				Validate(validateRequired("name")),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", "HIGH"),
					huh.NewOption("Medium", "MEDIUM"),
					huh.NewOption("Low", "LOW"),
				).
				Value(priority),
		),
	).WithTheme(cadenceHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if len(s) == 0 {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
