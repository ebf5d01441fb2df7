package service

import (
	"context"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
)

func (s *plannerService) AddProject(ctx context.Context, p domain.Project) (created domain.Project, err error) {
	fields := map[string]any{"name": p.Name}
	err = s.mutate(ctx, "add-project", fields, func(e *engine.Engine) error {
		created, err = e.AddProject(p)
		fields["project_id"] = created.ID
		return err
	})
	return created, err
}

func (s *plannerService) UpdateProject(ctx context.Context, p domain.Project) error {
	return s.mutate(ctx, "update-project", map[string]any{"project_id": p.ID}, func(e *engine.Engine) error {
		_, err := e.UpdateProject(p)
		return err
	})
}

func (s *plannerService) ChangeStatus(ctx context.Context, projectID, status string) error {
	fields := map[string]any{"project_id": projectID, "status": status}
	return s.mutate(ctx, "change-status", fields, func(e *engine.Engine) error {
		_, err := e.ChangeStatus(projectID, status)
		return err
	})
}

func (s *plannerService) ToggleArchive(ctx context.Context, projectID string) (out domain.Project, err error) {
	fields := map[string]any{"project_id": projectID}
	err = s.mutate(ctx, "toggle-archive", fields, func(e *engine.Engine) error {
		next, err := e.ToggleArchive(projectID)
		if err != nil {
			return err
		}
		out, _ = next.FindProject(projectID)
		fields["status"] = out.Status
		return nil
	})
	return out, err
}

func (s *plannerService) DeleteProject(ctx context.Context, projectID string) error {
	return s.mutate(ctx, "delete-project", map[string]any{"project_id": projectID}, func(e *engine.Engine) error {
		_, err := e.DeleteProject(projectID)
		return err
	})
}

func (s *plannerService) Schedule(ctx context.Context, projectID string, date time.Time) (item domain.ScheduleItem, err error) {
	fields := map[string]any{"project_id": projectID, "date": domain.FormatDate(date)}
	err = s.mutate(ctx, "schedule", fields, func(e *engine.Engine) error {
		next, err := e.ScheduleOrReschedule(projectID, date)
		if err != nil {
			return err
		}
		item, _ = next.ScheduleFor(projectID)
		return nil
	})
	return item, err
}

func (s *plannerService) SetScheduleNote(ctx context.Context, scheduleID, note string) error {
	return s.mutate(ctx, "set-schedule-note", map[string]any{"schedule_id": scheduleID}, func(e *engine.Engine) error {
		_, err := e.SetScheduleNote(scheduleID, note)
		return err
	})
}

func (s *plannerService) Unschedule(ctx context.Context, scheduleID string) error {
	return s.mutate(ctx, "unschedule", map[string]any{"schedule_id": scheduleID}, func(e *engine.Engine) error {
		_, err := e.Unschedule(scheduleID)
		return err
	})
}

func (s *plannerService) MutateChecklist(ctx context.Context, projectID string, op engine.ChecklistOp) (out domain.Project, err error) {
	fields := map[string]any{"project_id": projectID, "op": string(op.Kind)}
	err = s.mutate(ctx, "mutate-checklist", fields, func(e *engine.Engine) error {
		next, err := e.MutateChecklist(projectID, op)
		if err != nil {
			return err
		}
		out, _ = next.FindProject(projectID)
		return nil
	})
	return out, err
}

func (s *plannerService) ApplyIntent(ctx context.Context, in engine.Intent) (state domain.State, err error) {
	fields := map[string]any{
		"project_id":  in.Source.ProjectID,
		"schedule_id": in.Source.ScheduleID,
		"target":      string(in.Target.Kind),
	}
	err = s.mutate(ctx, "apply-intent", fields, func(e *engine.Engine) error {
		state, err = e.ApplyIntent(in)
		return err
	})
	if err != nil {
		return domain.State{}, err
	}
	return state, nil
}

func (s *plannerService) Undo(ctx context.Context) (state domain.State, err error) {
	err = s.mutate(ctx, "undo", nil, func(e *engine.Engine) error {
		state, err = e.Undo()
		return err
	})
	if err != nil {
		return domain.State{}, err
	}
	return state, nil
}

func (s *plannerService) HistoryDepth(ctx context.Context) (int, error) {
	return s.load(ctx).History().Len(), nil
}
