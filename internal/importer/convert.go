package importer

import (
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// Convert transforms a validated document into domain values and repairs
// them. Call Validate first; schedule rows with unparsable dates are
// dropped here rather than reported.
func Convert(doc *Document) (domain.State, domain.AppSettings, domain.CategoryConfig, RepairReport) {
	migrate(doc)

	state := domain.State{
		Projects: ProjectsFromJSON(doc.Projects),
		Schedule: ScheduleFromJSON(doc.Schedule),
	}
	categories := CategoriesFromJSON(doc.CategoryConfig)
	settings := SettingsFromJSON(doc.AppSettings)

	return Repair(state, settings, categories)
}

// FromState builds an export document.
func FromState(state domain.State, settings domain.AppSettings, categories domain.CategoryConfig, now time.Time) *Document {
	return &Document{
		Version:        CurrentVersion,
		Timestamp:      now.UTC().Format(time.RFC3339),
		Projects:       ProjectsToJSON(state.Projects),
		Schedule:       ScheduleToJSON(state.Schedule),
		CategoryConfig: CategoriesToJSON(categories),
		AppSettings:    SettingsToJSON(settings),
	}
}

// migrate upgrades documents written before versioning: priorities and
// statuses were stored in any case.
func migrate(doc *Document) {
	if doc.Version >= CurrentVersion {
		return
	}
	for i := range doc.Projects {
		doc.Projects[i].Priority = strings.ToUpper(doc.Projects[i].Priority)
		doc.Projects[i].Status = strings.ToUpper(doc.Projects[i].Status)
		doc.Projects[i].Type = strings.ToUpper(doc.Projects[i].Type)
	}
	doc.Version = CurrentVersion
}

func ProjectsFromJSON(in []ProjectJSON) []domain.Project {
	out := make([]domain.Project, 0, len(in))
	for _, p := range in {
		proj := domain.Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Tags:        append([]string(nil), p.Tags...),
			Status:      p.Status,
			Type:        p.Type,
			Priority:    domain.Priority(strings.ToUpper(p.Priority)),
		}
		for _, c := range p.Checklist {
			proj.Checklist = append(proj.Checklist, domain.ChecklistItem{ID: c.ID, Text: c.Text, IsCompleted: c.IsCompleted})
		}
		out = append(out, proj)
	}
	return out
}

func ProjectsToJSON(in []domain.Project) []ProjectJSON {
	out := make([]ProjectJSON, 0, len(in))
	for _, p := range in {
		pj := ProjectJSON{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Tags:        append([]string(nil), p.Tags...),
			Status:      p.Status,
			Type:        p.Type,
			Priority:    string(p.Priority),
		}
		for _, c := range p.Checklist {
			pj.Checklist = append(pj.Checklist, ChecklistItemJSON{ID: c.ID, Text: c.Text, IsCompleted: c.IsCompleted})
		}
		out = append(out, pj)
	}
	return out
}

// ScheduleFromJSON converts schedule rows, skipping rows whose date does
// not parse.
func ScheduleFromJSON(in []ScheduleItemJSON) []domain.ScheduleItem {
	out := make([]domain.ScheduleItem, 0, len(in))
	for _, s := range in {
		d, err := domain.ParseDate(s.Date)
		if err != nil {
			continue
		}
		out = append(out, domain.ScheduleItem{ID: s.ID, Date: d, ProjectID: s.ProjectID, Note: s.Note})
	}
	return out
}

func ScheduleToJSON(in []domain.ScheduleItem) []ScheduleItemJSON {
	out := make([]ScheduleItemJSON, 0, len(in))
	for _, s := range in {
		out = append(out, ScheduleItemJSON{
			ID:        s.ID,
			Date:      domain.FormatDate(s.Date),
			ProjectID: s.ProjectID,
			Note:      s.Note,
		})
	}
	return out
}

func CategoriesFromJSON(in map[string]CategoryJSON) domain.CategoryConfig {
	if len(in) == 0 {
		return nil
	}
	out := make(domain.CategoryConfig, len(in))
	for k, v := range in {
		out[k] = domain.Category{Label: v.Label, Color: v.Color, Icon: v.Icon}
	}
	return out
}

func CategoriesToJSON(in domain.CategoryConfig) map[string]CategoryJSON {
	out := make(map[string]CategoryJSON, len(in))
	for k, v := range in {
		out[k] = CategoryJSON{Label: v.Label, Color: v.Color, Icon: v.Icon}
	}
	return out
}

// SettingsFromJSON fills every absent field from the defaults.
func SettingsFromJSON(in *AppSettingsJSON) domain.AppSettings {
	s := domain.DefaultAppSettings()
	if in == nil {
		return s
	}
	s.WarningDays = domain.Deref(in.WarningDays, s.WarningDays)
	s.CriticalDays = domain.Deref(in.CriticalDays, s.CriticalDays)
	if len(in.CategoryOrder) > 0 {
		s.CategoryOrder = append([]string(nil), in.CategoryOrder...)
	}
	s.StatusMode = domain.Coalesce(domain.StatusMode(strings.ToUpper(in.StatusMode)), s.StatusMode)
	s.DefaultSort = domain.Coalesce(domain.SortMode(strings.ToUpper(in.DefaultSort)), s.DefaultSort)
	for _, d := range in.CustomStatuses {
		s.CustomStatuses = append(s.CustomStatuses, domain.StatusDefinition{ID: d.ID, Label: d.Label, IsCompleted: d.IsCompleted})
	}
	return s
}

func SettingsToJSON(s domain.AppSettings) *AppSettingsJSON {
	warning, critical := s.WarningDays, s.CriticalDays
	out := &AppSettingsJSON{
		WarningDays:   &warning,
		CriticalDays:  &critical,
		CategoryOrder: append([]string(nil), s.CategoryOrder...),
		StatusMode:    string(s.StatusMode),
		DefaultSort:   string(s.DefaultSort),
	}
	for _, d := range s.CustomStatuses {
		out.CustomStatuses = append(out.CustomStatuses, StatusDefinitionJSON{ID: d.ID, Label: d.Label, IsCompleted: d.IsCompleted})
	}
	return out
}
