package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
)

// SettingsView is the settings context together with its misconfiguration
// warnings.
type SettingsView struct {
	Settings   domain.AppSettings
	Categories domain.CategoryConfig
	Warnings   []string
}

type PlannerService interface {
	app.BoardUseCase
	app.AlertsUseCase
	app.IntentUseCase
	app.UndoUseCase
	app.CalendarUseCase
	app.ImportUseCase

	State(ctx context.Context) (domain.State, error)
	ResolveProject(ctx context.Context, ref string) (domain.Project, error)
	ResolveSchedule(ctx context.Context, ref string) (domain.ScheduleItem, error)
	ProjectView(ctx context.Context, projectID string, now time.Time) (*app.ProjectView, error)
	ScheduleEntries(ctx context.Context) ([]calendar.Entry, error)

	AddProject(ctx context.Context, p domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, p domain.Project) error
	ChangeStatus(ctx context.Context, projectID, status string) error
	ToggleArchive(ctx context.Context, projectID string) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	Schedule(ctx context.Context, projectID string, date time.Time) (domain.ScheduleItem, error)
	SetScheduleNote(ctx context.Context, scheduleID, note string) error
	Unschedule(ctx context.Context, scheduleID string) error
	MutateChecklist(ctx context.Context, projectID string, op engine.ChecklistOp) (domain.Project, error)

	Settings(ctx context.Context) (*SettingsView, error)
	UpdateSettings(ctx context.Context, fn func(*domain.AppSettings) error) (*SettingsView, error)
	SetCategory(ctx context.Context, key string, c domain.Category) (*SettingsView, error)
}
