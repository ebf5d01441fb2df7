package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// ScheduleOrReschedule places a project on date. An existing schedule item
// for the project is moved (id and note preserved) rather than duplicated,
// so a project never has more than one schedule item.
func (e *Engine) ScheduleOrReschedule(projectID string, date time.Time) (domain.State, error) {
	if e.projectIndex(projectID) < 0 {
		return e.State(), fmt.Errorf("scheduling %s: %w", projectID, ErrProjectNotFound)
	}
	date = domain.StartOfDay(date)

	next := e.state.Clone()
	if i := e.scheduleIndexByProject(projectID); i >= 0 {
		if domain.SameDay(next.Schedule[i].Date, date) {
			return e.State(), nil
		}
		next.Schedule[i].Date = date
		return e.commit(next), nil
	}

	next.Schedule = append(next.Schedule, domain.ScheduleItem{
		ID:        e.newID(),
		Date:      date,
		ProjectID: projectID,
	})
	return e.commit(next), nil
}

// SetScheduleNote replaces the note of a schedule item.
func (e *Engine) SetScheduleNote(scheduleID, note string) (domain.State, error) {
	i := e.scheduleIndex(scheduleID)
	if i < 0 {
		return e.State(), fmt.Errorf("setting note on %s: %w", scheduleID, ErrScheduleNotFound)
	}
	if e.state.Schedule[i].Note == note {
		return e.State(), nil
	}
	next := e.state.Clone()
	next.Schedule[i].Note = note
	return e.commit(next), nil
}

// Unschedule removes exactly one schedule item. The project is untouched.
func (e *Engine) Unschedule(scheduleID string) (domain.State, error) {
	i := e.scheduleIndex(scheduleID)
	if i < 0 {
		return e.State(), fmt.Errorf("unscheduling %s: %w", scheduleID, ErrScheduleNotFound)
	}
	next := e.state.Clone()
	next.Schedule = append(next.Schedule[:i], next.Schedule[i+1:]...)
	return e.commit(next), nil
}

// ChangeStatus sets a project's status. The status must be in the active set.
func (e *Engine) ChangeStatus(projectID, status string) (domain.State, error) {
	i := e.projectIndex(projectID)
	if i < 0 {
		return e.State(), fmt.Errorf("changing status of %s: %w", projectID, ErrProjectNotFound)
	}
	resolved, ok := e.settings.ResolveStatus(status)
	if !ok {
		return e.State(), fmt.Errorf("changing status to %q: %w", status, ErrInvalidStatus)
	}
	status = resolved
	if e.state.Projects[i].Status == status {
		return e.State(), nil
	}
	next := e.state.Clone()
	next.Projects[i].Status = status
	return e.commit(next), nil
}

// DeleteProject removes a project and every schedule item referencing it
// as a single history entry. Confirmation is the caller's job.
func (e *Engine) DeleteProject(projectID string) (domain.State, error) {
	i := e.projectIndex(projectID)
	if i < 0 {
		return e.State(), fmt.Errorf("deleting %s: %w", projectID, ErrProjectNotFound)
	}
	next := e.state.Clone()
	next.Projects = append(next.Projects[:i], next.Projects[i+1:]...)

	kept := next.Schedule[:0]
	for _, it := range next.Schedule {
		if it.ProjectID != projectID {
			kept = append(kept, it)
		}
	}
	next.Schedule = kept
	return e.commit(next), nil
}

// ToggleArchive archives an active project, or restores an archived one to
// the settings' restore status. The schedule date is not touched.
func (e *Engine) ToggleArchive(projectID string) (domain.State, error) {
	i := e.projectIndex(projectID)
	if i < 0 {
		return e.State(), fmt.Errorf("toggling archive on %s: %w", projectID, ErrProjectNotFound)
	}
	status := domain.StatusArchived
	if domain.IsArchivedStatus(e.state.Projects[i].Status) {
		status = e.settings.RestoreStatus()
	}
	if e.state.Projects[i].Status == status {
		return e.State(), nil
	}
	next := e.state.Clone()
	next.Projects[i].Status = status
	return e.commit(next), nil
}

// AddProject stores a new project and returns it with its generated id.
// An unknown type falls back to OTHER; an empty status becomes the first
// active status.
func (e *Engine) AddProject(p domain.Project) (domain.Project, error) {
	p = p.Clone()
	p.ID = e.newID()
	p.Name = strings.TrimSpace(p.Name)
	p.Type = e.resolveCategory(p.Type)
	if p.Status == "" {
		p.Status = e.settings.InitialStatus()
	}
	status, ok := e.settings.ResolveStatus(p.Status)
	if !ok {
		return domain.Project{}, fmt.Errorf("adding project with status %q: %w", p.Status, ErrInvalidStatus)
	}
	p.Status = status
	if err := p.Validate(); err != nil {
		return domain.Project{}, err
	}
	for j := range p.Checklist {
		if p.Checklist[j].ID == "" {
			p.Checklist[j].ID = e.newID()
		}
	}

	next := e.state.Clone()
	next.Projects = append(next.Projects, p)
	e.commit(next)
	return p.Clone(), nil
}

// UpdateProject replaces the editable fields (name, description, tags, type,
// priority) of an existing project. Status and checklist have their own
// operations and are left as stored.
func (e *Engine) UpdateProject(p domain.Project) (domain.State, error) {
	i := e.projectIndex(p.ID)
	if i < 0 {
		return e.State(), fmt.Errorf("updating %s: %w", p.ID, ErrProjectNotFound)
	}
	next := e.state.Clone()
	cur := &next.Projects[i]
	cur.Name = strings.TrimSpace(p.Name)
	cur.Description = p.Description
	cur.Tags = append([]string(nil), p.Tags...)
	cur.Type = e.resolveCategory(p.Type)
	cur.Priority = p.Priority
	if err := cur.Validate(); err != nil {
		return e.State(), err
	}
	if sameEditableFields(*cur, e.state.Projects[i]) {
		return e.State(), nil
	}
	return e.commit(next), nil
}

// Replace overwrites both collections and the configuration in one step, as
// an import does. Only the collections are recorded in history; undoing an
// import restores projects and schedule but keeps the imported settings.
func (e *Engine) Replace(state domain.State, settings domain.AppSettings, categories domain.CategoryConfig) domain.State {
	e.settings = settings.Clone()
	e.categories = categories.Clone()
	return e.commit(state.Clone())
}

// sameEditableFields compares the fields UpdateProject may change.
func sameEditableFields(a, b domain.Project) bool {
	return a.Name == b.Name &&
		a.Description == b.Description &&
		a.Type == b.Type &&
		a.Priority == b.Priority &&
		slices.Equal(a.Tags, b.Tags)
}
