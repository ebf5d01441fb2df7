package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatProjectDetail renders one project with its schedule entry and
// checklist.
func FormatProjectDetail(v *contract.ProjectView, checklist []domain.ChecklistItem) string {
	var b strings.Builder

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value))
	}

	field("ID", v.ProjectID)
	field("Category", CategoryBadge(v.CategoryIcon, v.CategoryLabel, v.CategoryColor))
	field("Status", StatusPill(v.StatusLabel, v.IsCompleted, v.IsArchived))
	field("Priority", PriorityBadge(v.Priority))
	field("Bucket", string(v.Bucket))
	field("Date", scheduleCell(*v))
	if v.Alert != domain.AlertNone {
		field("Alert", AlertIndicator(v.Alert))
	}
	if v.Note != "" {
		field("Note", v.Note)
	}
	if len(v.Tags) > 0 {
		field("Tags", strings.Join(v.Tags, ", "))
	}
	if v.Description != "" {
		b.WriteString("\n" + v.Description + "\n")
	}

	if len(checklist) > 0 {
		b.WriteString("\n" + Header(fmt.Sprintf("Checklist %d/%d", v.ChecklistDone, v.ChecklistTotal)) + "\n")
		for _, c := range checklist {
			mark := StyleDim.Render("[ ]")
			text := StyleFg.Render(c.Text)
			if c.IsCompleted {
				mark = StyleGreen.Render("[x]")
				text = StyleDim.Render(c.Text)
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n", mark, text, Dim(shortID(c.ID))))
		}
	}

	return Panel(v.Name, v.Alert, b.String())
}

// FormatScheduleList renders schedule entries in date order.
func FormatScheduleList(entries []ScheduleRow) string {
	if len(entries) == 0 {
		return Dim("Nothing scheduled.") + "\n"
	}
	headers := []string{"ID", "DATE", "PROJECT", "NOTE"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(shortID(e.ScheduleID)),
			StyleFg.Render(e.Date),
			Bold(e.ProjectName),
			Dim(Truncate(e.Note, 40)),
		})
	}
	return RenderTable(headers, rows)
}

// ScheduleRow is one line of FormatScheduleList.
type ScheduleRow struct {
	ScheduleID  string
	Date        string
	ProjectName string
	Note        string
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
