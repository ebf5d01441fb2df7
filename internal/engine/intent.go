package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type TargetKind string

const (
	TargetDate   TargetKind = "date"
	TargetStatus TargetKind = "status"
	TargetTrash  TargetKind = "trash"
)

// Source identifies what was dragged. ScheduleID is set when the drag
// started from a calendar cell.
type Source struct {
	ProjectID  string
	ScheduleID string
}

// Target identifies where it was dropped. Date is used for TargetDate and
// Status for TargetStatus.
type Target struct {
	Kind   TargetKind
	Date   time.Time
	Status string
}

// Intent is a discrete drop delivered by the drag/drop collaborator.
type Intent struct {
	Source Source
	Target Target
}

// ApplyIntent routes a drop to the matching operation:
//
//	date   -> ScheduleOrReschedule
//	status -> ChangeStatus
//	trash  -> Unschedule when the source is a schedule item, else DeleteProject
func (e *Engine) ApplyIntent(in Intent) (domain.State, error) {
	switch in.Target.Kind {
	case TargetDate:
		if in.Target.Date.IsZero() {
			return e.State(), fmt.Errorf("date target without date: %w", ErrInvalidIntent)
		}
		projectID := in.Source.ProjectID
		if projectID == "" && in.Source.ScheduleID != "" {
			it, ok := e.state.FindSchedule(in.Source.ScheduleID)
			if !ok {
				return e.State(), fmt.Errorf("dragging %s: %w", in.Source.ScheduleID, ErrScheduleNotFound)
			}
			projectID = it.ProjectID
		}
		return e.ScheduleOrReschedule(projectID, in.Target.Date)
	case TargetStatus:
		return e.ChangeStatus(in.Source.ProjectID, in.Target.Status)
	case TargetTrash:
		if in.Source.ScheduleID != "" {
			return e.Unschedule(in.Source.ScheduleID)
		}
		return e.DeleteProject(in.Source.ProjectID)
	default:
		return e.State(), fmt.Errorf("target kind %q: %w", in.Target.Kind, ErrInvalidIntent)
	}
}

// ParseTarget parses the textual form of a drop target:
// "date:YYYY-MM-DD", "status:ID" or "trash".
func ParseTarget(s string) (Target, error) {
	kind, value, _ := strings.Cut(strings.TrimSpace(s), ":")
	switch TargetKind(strings.ToLower(kind)) {
	case TargetDate:
		d, err := domain.ParseDate(value)
		if err != nil {
			return Target{}, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
		}
		return Target{Kind: TargetDate, Date: d}, nil
	case TargetStatus:
		if value == "" {
			return Target{}, fmt.Errorf("status target without status: %w", ErrInvalidIntent)
		}
		return Target{Kind: TargetStatus, Status: strings.TrimSpace(value)}, nil
	case TargetTrash:
		return Target{Kind: TargetTrash}, nil
	default:
		return Target{}, fmt.Errorf("target %q (expected date:YYYY-MM-DD, status:ID or trash): %w", s, ErrInvalidIntent)
	}
}
