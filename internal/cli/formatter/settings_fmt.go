package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// FormatSettings renders app settings, the status set in effect and the
// category configuration.
func FormatSettings(s domain.AppSettings, categories domain.CategoryConfig, warnings []string) string {
	var b strings.Builder

	rows := [][]string{
		{"warning_days", fmt.Sprint(s.WarningDays)},
		{"critical_days", fmt.Sprint(s.CriticalDays)},
		{"status_mode", string(s.StatusMode)},
		{"default_sort", string(s.DefaultSort)},
		{"category_order", strings.Join(s.CategoryOrder, ", ")},
	}
	b.WriteString(RenderTable([]string{"SETTING", "VALUE"}, rows))

	b.WriteString("\n" + Header("Statuses") + "\n")
	for _, d := range s.ActiveStatuses() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			StatusPill(d.Label, d.IsCompleted, domain.IsArchivedStatus(d.ID)),
			Dim(d.ID)))
	}

	b.WriteString("\n" + Header("Categories") + "\n")
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c := categories[k]
		b.WriteString(fmt.Sprintf("  %-12s %s\n", k, CategoryBadge(c.Icon, c.Label, c.Color)))
	}

	writeWarnings(&b, warnings)
	return b.String()
}
