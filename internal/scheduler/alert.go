package scheduler

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type AlertInput struct {
	Project       domain.Project
	ScheduledDate *time.Time
	Settings      domain.AppSettings
	Today         time.Time
}

type AlertResult struct {
	Level domain.AlertLevel
	// DaysLeft is nil when no alert applies because the project is unscheduled
	// or finished.
	DaysLeft *int
}

// ComputeAlert classifies deadline urgency for a scheduled, unfinished
// project. Overdue projects are always critical. criticalDays is checked
// before warningDays; a misconfigured criticalDays > warningDays is left as is
// (see ValidateSettings).
func ComputeAlert(input AlertInput) AlertResult {
	if input.ScheduledDate == nil {
		return AlertResult{Level: domain.AlertNone}
	}
	if input.Settings.IsCompletedStatus(input.Project.Status) || domain.IsArchivedStatus(input.Project.Status) {
		return AlertResult{Level: domain.AlertNone}
	}

	diff := domain.DaysBetween(*input.ScheduledDate, input.Today)
	result := AlertResult{DaysLeft: &diff}

	switch {
	case diff <= input.Settings.CriticalDays:
		result.Level = domain.AlertCritical
	case diff <= input.Settings.WarningDays:
		result.Level = domain.AlertWarning
	default:
		result.Level = domain.AlertNone
	}
	return result
}

// EvaluateAlert is ComputeAlert reduced to the level.
func EvaluateAlert(p domain.Project, scheduledDate *time.Time, settings domain.AppSettings, today time.Time) domain.AlertLevel {
	return ComputeAlert(AlertInput{
		Project:       p,
		ScheduledDate: scheduledDate,
		Settings:      settings,
		Today:         today,
	}).Level
}

// AlertPriority returns a sort priority (lower = more urgent).
func AlertPriority(l domain.AlertLevel) int {
	switch l {
	case domain.AlertCritical:
		return 0
	case domain.AlertWarning:
		return 1
	default:
		return 2
	}
}
