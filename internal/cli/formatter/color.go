package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// AlertColor returns the style for an alert level.
func AlertColor(level domain.AlertLevel) lipgloss.Style {
	switch level {
	case domain.AlertCritical:
		return StyleRed
	case domain.AlertWarning:
		return StyleYellow
	default:
		return StyleDim
	}
}

// AlertIndicator returns a colored marker such as "● CRITICAL". NONE renders
// as an empty string so quiet rows stay quiet.
func AlertIndicator(level domain.AlertLevel) string {
	switch level {
	case domain.AlertCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.AlertWarning:
		return StyleYellow.Render("● WARNING")
	default:
		return ""
	}
}

// PriorityBadge renders HIGH/MEDIUM/LOW; an absent priority renders as a dim
// MEDIUM since it weighs the same.
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ high")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ low")
	case domain.PriorityMedium:
		return StyleFg.Render("◆ medium")
	default:
		return StyleDim.Render("◆ medium")
	}
}

// CategoryBadge renders the category icon and label in the category color.
func CategoryBadge(icon, label, color string) string {
	text := strings.TrimSpace(icon + " " + label)
	if color == "" {
		return StyleFg.Render(text)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

// StatusPill renders a status label with a marker for the archived and
// completed states.
func StatusPill(label string, completed, archived bool) string {
	switch {
	case archived:
		return StyleDim.Render("✖ " + label)
	case completed:
		return StyleGreen.Render("✔ " + label)
	default:
		return StylePurple.Render("● " + label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
