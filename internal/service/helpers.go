package service

import (
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/scheduler"
)

func buildViews(projects []domain.Project, state domain.State, settings domain.AppSettings, categories domain.CategoryConfig, today time.Time) []app.ProjectView {
	views := make([]app.ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, buildView(p, state, settings, categories, today))
	}
	return views
}

func buildView(p domain.Project, state domain.State, settings domain.AppSettings, categories domain.CategoryConfig, today time.Time) app.ProjectView {
	cat := categories[p.Type]
	done, total := p.ChecklistProgress()
	v := app.ProjectView{
		ProjectID:      p.ID,
		DisplayID:      p.DisplayID(),
		Name:           p.Name,
		Description:    p.Description,
		Tags:           append([]string(nil), p.Tags...),
		Status:         p.Status,
		StatusLabel:    settings.StatusLabel(p.Status),
		IsCompleted:    settings.IsCompletedStatus(p.Status),
		IsArchived:     domain.IsArchivedStatus(p.Status),
		Type:           p.Type,
		CategoryLabel:  domain.Coalesce(cat.Label, p.Type),
		CategoryIcon:   cat.Icon,
		CategoryColor:  cat.Color,
		Priority:       p.Priority,
		Bucket:         scheduler.BucketOf(p, state.Schedule, today),
		ChecklistDone:  done,
		ChecklistTotal: total,
	}

	var scheduled *time.Time
	if it, ok := state.ScheduleFor(p.ID); ok {
		d := domain.FormatDate(it.Date)
		v.ScheduleID = it.ID
		v.ScheduledDate = &d
		v.Note = it.Note
		scheduled = &it.Date
	}
	alert := scheduler.ComputeAlert(scheduler.AlertInput{
		Project:       p,
		ScheduledDate: scheduled,
		Settings:      settings,
		Today:         today,
	})
	v.Alert = alert.Level
	v.DaysLeft = alert.DaysLeft
	return v
}
