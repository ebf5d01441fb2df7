package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/contract"
)

// FormatBoard renders the pipeline and published buckets as two tables.
func FormatBoard(resp *contract.BoardResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Pipeline (%d)", len(resp.Pipeline))) + "\n")
	if len(resp.Pipeline) == 0 {
		b.WriteString(Dim("  Nothing in the pipeline.") + "\n")
	} else {
		b.WriteString(projectTable(resp.Pipeline))
	}
	b.WriteString(Dim("  sorted by "+strings.ToLower(string(resp.Sort))) + "\n\n")

	b.WriteString(Header(fmt.Sprintf("Published (%d)", len(resp.Published))) + "\n")
	if len(resp.Published) == 0 {
		b.WriteString(Dim("  Nothing published yet.") + "\n")
	} else {
		b.WriteString(projectTable(resp.Published))
	}

	writeWarnings(&b, resp.Warnings)
	return b.String()
}

func projectTable(views []contract.ProjectView) string {
	headers := []string{"ID", "NAME", "CATEGORY", "PRIORITY", "STATUS", "DATE", "ALERT", "TASKS"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			Dim(v.DisplayID),
			Bold(Truncate(v.Name, 32)),
			CategoryBadge(v.CategoryIcon, v.CategoryLabel, v.CategoryColor),
			PriorityBadge(v.Priority),
			StatusPill(v.StatusLabel, v.IsCompleted, v.IsArchived),
			scheduleCell(v),
			AlertIndicator(v.Alert),
			ChecklistProgress(v.ChecklistDone, v.ChecklistTotal),
		})
	}
	return RenderTable(headers, rows)
}

func scheduleCell(v contract.ProjectView) string {
	if v.ScheduledDate == nil {
		return Dim("--")
	}
	if v.DaysLeft == nil {
		return StyleFg.Render(*v.ScheduledDate)
	}
	return AlertColor(v.Alert).Render(fmt.Sprintf("%s (%s)", *v.ScheduledDate, DaysLeftLabel(*v.DaysLeft)))
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  WARNING: "+w) + "\n")
	}
}

// FormatAlerts renders the projects that need attention, most urgent first.
func FormatAlerts(resp *contract.AlertsResponse) string {
	if len(resp.Alerts) == 0 {
		return StyleGreen.Render("No deadlines need attention.") + "\n"
	}

	headers := []string{"ALERT", "DATE", "NAME", "STATUS"}
	rows := make([][]string, 0, len(resp.Alerts))
	for _, v := range resp.Alerts {
		rows = append(rows, []string{
			AlertIndicator(v.Alert),
			scheduleCell(v),
			Bold(v.Name),
			StatusPill(v.StatusLabel, v.IsCompleted, v.IsArchived),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, %s\n",
		StyleRed.Render(fmt.Sprintf("%d Critical", resp.CountCritical)),
		StyleYellow.Render(fmt.Sprintf("%d Warning", resp.CountWarning)),
	))
	return b.String()
}
