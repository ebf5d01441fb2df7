package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	calendarCellWidth  = 14
	calendarMaxEntries = 3
)

// FormatMonth renders a month grid. Each cell lists up to three scheduled
// projects and a "+n" overflow marker.
func FormatMonth(m calendar.Month, categories domain.CategoryConfig) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s %d", m.Month, m.Year)) + "\n\n")

	if len(m.Weeks) > 0 {
		names := make([]string, 7)
		for i, d := range m.Weeks[0] {
			names[i] = lipgloss.NewStyle().Width(calendarCellWidth).Render(StyleDim.Render(d.Date.Weekday().String()[:3]))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, names...) + "\n")
	}

	for _, week := range m.Weeks {
		height := 1
		for _, d := range week {
			height = max(height, 1+min(len(d.Entries), calendarMaxEntries+1))
		}
		cells := make([]string, 7)
		for i, d := range week {
			cells[i] = lipgloss.NewStyle().
				Width(calendarCellWidth).
				Height(height).
				Render(dayCell(d, categories))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	return b.String()
}

func dayCell(d calendar.Day, categories domain.CategoryConfig) string {
	num := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.IsToday:
		num = StyleHeader.Render(num + " •")
	case !d.InMonth:
		num = StyleDim.Render(num)
	default:
		num = StyleFg.Render(num)
	}

	lines := []string{num}
	for i, e := range d.Entries {
		if i == calendarMaxEntries {
			lines = append(lines, Dim(fmt.Sprintf("+%d more", len(d.Entries)-calendarMaxEntries)))
			break
		}
		cat := categories[e.Project.Type]
		text := Truncate(strings.TrimSpace(cat.Icon+" "+e.Project.Name), calendarCellWidth-1)
		style := StyleFg
		if cat.Color != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color))
		}
		if !d.InMonth {
			style = StyleDim
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}
