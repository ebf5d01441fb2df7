package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ValidationError collects every problem found in an import document.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "invalid import document: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

// ErrMissingCollections is reported when projects or schedule are absent.
var ErrMissingCollections = errors.New("document must contain projects and schedule")

// ValidateDocument checks an import document before it replaces state.
// Returns a slice of all validation errors found.
func ValidateDocument(doc *Document) []error {
	var errs []error

	if doc.Projects == nil {
		errs = append(errs, fmt.Errorf("projects: %w", ErrMissingCollections))
	}
	if doc.Schedule == nil {
		errs = append(errs, fmt.Errorf("schedule: %w", ErrMissingCollections))
	}
	if doc.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("version %d is newer than supported version %d", doc.Version, CurrentVersion))
	}

	projectIDs := make(map[string]bool)
	errs = append(errs, validateProjects(doc.Projects, projectIDs)...)
	errs = append(errs, validateSchedule(doc.Schedule)...)
	errs = append(errs, validateSettings(doc.AppSettings)...)

	return errs
}

// Validate wraps ValidateDocument results into a single error, or nil.
func Validate(doc *Document) error {
	if errs := ValidateDocument(doc); len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	return nil
}

func validateProjects(projects []ProjectJSON, ids map[string]bool) []error {
	var errs []error
	for i, p := range projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, p.ID))
		}
		ids[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if p.Priority != "" && !domain.ValidPriorities[domain.Priority(strings.ToUpper(p.Priority))] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, p.Priority))
		}
	}
	return errs
}

func validateSchedule(schedule []ScheduleItemJSON) []error {
	var errs []error
	for i, s := range schedule {
		prefix := fmt.Sprintf("schedule[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		}
		if s.ProjectID == "" {
			errs = append(errs, fmt.Errorf("%s.projectId is required", prefix))
		}
		if _, err := domain.ParseDate(s.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: %w", prefix, err))
		}
	}
	return errs
}

func validateSettings(s *AppSettingsJSON) []error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.WarningDays != nil && *s.WarningDays < 0 {
		errs = append(errs, fmt.Errorf("appSettings.warningDays must not be negative"))
	}
	if s.CriticalDays != nil && *s.CriticalDays < 0 {
		errs = append(errs, fmt.Errorf("appSettings.criticalDays must not be negative"))
	}
	if s.StatusMode != "" && s.StatusMode != string(domain.StatusModeDefault) && s.StatusMode != string(domain.StatusModeCustom) {
		errs = append(errs, fmt.Errorf("appSettings.statusMode: invalid value %q", s.StatusMode))
	}
	return errs
}
