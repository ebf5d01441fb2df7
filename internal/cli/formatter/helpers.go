package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Panel frames body in a rounded border whose color follows the alert
// level, with the title upper-cased on the first line.
func Panel(title string, level domain.AlertLevel, body string) string {
	border := ColorDim
	switch level {
	case domain.AlertCritical:
		border = ColorRed
	case domain.AlertWarning:
		border = ColorYellow
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2)
	if title == "" {
		return frame.Render(strings.TrimRight(body, "\n"))
	}
	heading := StyleHeader.Render(strings.ToUpper(title))
	return frame.Render(heading + "\n\n" + strings.TrimRight(body, "\n"))
}

// DaysLeftLabel describes a day difference relative to today.
func DaysLeftLabel(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}

// Truncate shortens s to at most n visible cells, ending in an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// ChecklistProgress renders "done/total", or an empty string for an empty
// checklist.
func ChecklistProgress(done, total int) string {
	if total == 0 {
		return ""
	}
	s := fmt.Sprintf("%d/%d", done, total)
	if done == total {
		return StyleGreen.Render(s)
	}
	return StyleFg.Render(s)
}
