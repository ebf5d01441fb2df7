package importer

import (
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// RepairReport counts the fixes Repair applied.
type RepairReport struct {
	DroppedProjects   int
	FixedTypes        int
	FixedStatuses     int
	FixedPriorities   int
	DroppedSchedule   int
	DuplicateSchedule int
}

// Changed reports whether any fix was applied.
func (r RepairReport) Changed() bool {
	return r != RepairReport{}
}

// Repair restores the invariants every consumer of loaded data assumes:
//   - categories always contain the fallback category; settings modes are known
//   - projects have a name and an id; duplicates by id keep the first
//   - unknown types map to the fallback category
//   - unknown statuses map to the initial status; unknown priorities are cleared
//   - schedule rows pointing at missing projects are dropped
//   - at most one schedule row per project (the first wins)
func Repair(state domain.State, settings domain.AppSettings, categories domain.CategoryConfig) (domain.State, domain.AppSettings, domain.CategoryConfig, RepairReport) {
	var report RepairReport

	categories = RepairCategories(categories)
	settings = RepairSettings(settings)

	out := domain.State{
		Projects: make([]domain.Project, 0, len(state.Projects)),
		Schedule: make([]domain.ScheduleItem, 0, len(state.Schedule)),
	}
	seen := make(map[string]bool, len(state.Projects))
	for _, p := range state.Projects {
		p = p.Clone()
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == "" || p.Name == "" || seen[p.ID] {
			report.DroppedProjects++
			continue
		}
		seen[p.ID] = true
		if _, ok := categories[p.Type]; !ok {
			p.Type = domain.FallbackCategory
			report.FixedTypes++
		}
		if !settings.IsActiveStatus(p.Status) {
			p.Status = settings.InitialStatus()
			report.FixedStatuses++
		}
		if p.Priority != "" && !domain.ValidPriorities[p.Priority] {
			p.Priority = ""
			report.FixedPriorities++
		}
		out.Projects = append(out.Projects, p)
	}

	scheduled := make(map[string]bool, len(state.Schedule))
	for _, it := range state.Schedule {
		if !seen[it.ProjectID] {
			report.DroppedSchedule++
			continue
		}
		if scheduled[it.ProjectID] {
			report.DuplicateSchedule++
			continue
		}
		scheduled[it.ProjectID] = true
		it.Date = domain.StartOfDay(it.Date)
		out.Schedule = append(out.Schedule, it)
	}
	return out, settings, categories, report
}

// RepairCategories returns defaults for an empty configuration and ensures
// the fallback category exists.
func RepairCategories(c domain.CategoryConfig) domain.CategoryConfig {
	if len(c) == 0 {
		return domain.DefaultCategoryConfig()
	}
	c = c.Clone()
	if _, ok := c[domain.FallbackCategory]; !ok {
		c[domain.FallbackCategory] = domain.DefaultCategoryConfig()[domain.FallbackCategory]
	}
	return c
}

// RepairSettings replaces unknown modes and negative thresholds with
// defaults. criticalDays > warningDays is kept; see scheduler.ValidateSettings.
func RepairSettings(s domain.AppSettings) domain.AppSettings {
	def := domain.DefaultAppSettings()
	s = s.Clone()
	if s.StatusMode != domain.StatusModeDefault && s.StatusMode != domain.StatusModeCustom {
		s.StatusMode = def.StatusMode
	}
	if !domain.ValidSortModes[s.DefaultSort] {
		s.DefaultSort = def.DefaultSort
	}
	if len(s.CategoryOrder) == 0 {
		s.CategoryOrder = def.CategoryOrder
	}
	if s.WarningDays < 0 {
		s.WarningDays = def.WarningDays
	}
	if s.CriticalDays < 0 {
		s.CriticalDays = def.CriticalDays
	}
	return s
}
