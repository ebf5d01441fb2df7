package testutil

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStatus(s string) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithType(t string) ProjectOption {
	return func(p *domain.Project) {
		p.Type = t
	}
}

func WithPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) {
		p.Priority = pr
	}
}

func WithID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithChecklist(texts ...string) ProjectOption {
	return func(p *domain.Project) {
		for _, text := range texts {
			p.Checklist = append(p.Checklist, domain.ChecklistItem{ID: uuid.New().String(), Text: text})
		}
	}
}

func WithTags(tags ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Tags = append(p.Tags, tags...)
	}
}

// NewTestProject returns an IDEA-stage VIDEO project with a fresh id.
func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:     uuid.New().String(),
		Name:   name,
		Status: domain.StatusIdea,
		Type:   "VIDEO",
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestScheduleItem schedules projectID on the local calendar day of d.
func NewTestScheduleItem(projectID string, d time.Time) domain.ScheduleItem {
	return domain.ScheduleItem{
		ID:        uuid.New().String(),
		Date:      domain.StartOfDay(d),
		ProjectID: projectID,
	}
}

// Date parses a YYYY-MM-DD literal as a local calendar date, panicking on
// malformed input.
func Date(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
