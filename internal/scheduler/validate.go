package scheduler

import (
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ValidateSettings reports configuration problems that make the derived
// views behave unexpectedly. Nothing is corrected; callers surface the
// messages to the user.
func ValidateSettings(s domain.AppSettings, categories domain.CategoryConfig) []string {
	var warnings []string

	if s.WarningDays < 0 {
		warnings = append(warnings, fmt.Sprintf("warningDays (%d) must not be negative", s.WarningDays))
	}
	if s.CriticalDays < 0 {
		warnings = append(warnings, fmt.Sprintf("criticalDays (%d) must not be negative", s.CriticalDays))
	}
	if s.CriticalDays > s.WarningDays {
		warnings = append(warnings, fmt.Sprintf(
			"criticalDays (%d) is greater than warningDays (%d): projects %d-%d days out are critical and WARNING never shows",
			s.CriticalDays, s.WarningDays, s.WarningDays+1, s.CriticalDays))
	}

	if s.StatusMode == domain.StatusModeCustom {
		completed := 0
		for _, d := range s.CustomStatuses {
			if d.IsCompleted {
				completed++
			}
		}
		if completed != 1 {
			warnings = append(warnings, fmt.Sprintf("custom status set has %d completed statuses, expected exactly 1", completed))
		}
	}

	for _, k := range s.CategoryOrder {
		if _, ok := categories[k]; !ok {
			warnings = append(warnings, fmt.Sprintf("categoryOrder lists unknown category %q", k))
		}
	}
	return warnings
}
