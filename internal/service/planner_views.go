package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/scheduler"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func (s *plannerService) Board(ctx context.Context, req app.BoardRequest) (*app.BoardResponse, error) {
	e := s.load(ctx)
	state, settings, categories := e.State(), e.Settings(), e.Categories()

	mode := settings.DefaultSort
	if req.Sort != "" {
		mode = domain.SortMode(strings.ToUpper(string(req.Sort)))
		if !domain.ValidSortModes[mode] {
			return nil, &app.BoardError{
				Code:    app.BoardErrInvalidSort,
				Message: fmt.Sprintf("unknown sort mode %q", req.Sort),
			}
		}
	}

	today := s.today(req.Now)
	sctx := scheduler.NewContext(settings, categories, state.Schedule, today)
	if req.Locale != "" {
		if tag, err := language.Parse(req.Locale); err == nil {
			sctx.Locale = tag
		} else {
			s.logger.Debug("ignoring unparsable locale", zap.String("locale", req.Locale), zap.Error(err))
		}
	}

	part := scheduler.PartitionProjects(state.Projects, state.Schedule, today)
	pipeline := scheduler.Sort(part.Pipeline, mode, sctx)

	return &app.BoardResponse{
		GeneratedAt: s.now(),
		Sort:        mode,
		Pipeline:    buildViews(pipeline, state, settings, categories, today),
		Published:   buildViews(part.Published, state, settings, categories, today),
		Warnings:    scheduler.ValidateSettings(settings, categories),
	}, nil
}

func (s *plannerService) Alerts(ctx context.Context, req app.AlertsRequest) (*app.AlertsResponse, error) {
	e := s.load(ctx)
	state, settings, categories := e.State(), e.Settings(), e.Categories()
	today := s.today(req.Now)

	resp := &app.AlertsResponse{GeneratedAt: s.now()}
	for _, v := range buildViews(state.Projects, state, settings, categories, today) {
		switch v.Alert {
		case domain.AlertCritical:
			resp.CountCritical++
		case domain.AlertWarning:
			resp.CountWarning++
		default:
			continue
		}
		resp.Alerts = append(resp.Alerts, v)
	}
	sort.SliceStable(resp.Alerts, func(i, j int) bool {
		a, b := resp.Alerts[i], resp.Alerts[j]
		if pa, pb := scheduler.AlertPriority(a.Alert), scheduler.AlertPriority(b.Alert); pa != pb {
			return pa < pb
		}
		return *a.DaysLeft < *b.DaysLeft
	})
	return resp, nil
}

func (s *plannerService) ProjectView(ctx context.Context, projectID string, now time.Time) (*app.ProjectView, error) {
	e := s.load(ctx)
	state := e.State()
	p, ok := state.FindProject(projectID)
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, engine.ErrProjectNotFound)
	}
	v := buildView(p, state, e.Settings(), e.Categories(), domain.StartOfDay(now))
	return &v, nil
}

func (s *plannerService) ScheduleEntries(ctx context.Context) ([]calendar.Entry, error) {
	return calendar.Join(s.load(ctx).State()), nil
}

func (s *plannerService) Month(ctx context.Context, year int, month time.Month, today time.Time, weekStart time.Weekday) (calendar.Month, error) {
	return calendar.BuildMonth(year, month, s.load(ctx).State(), today, weekStart), nil
}

// ResolveProject finds a project by full id or by a unique id prefix.
func (s *plannerService) ResolveProject(ctx context.Context, ref string) (domain.Project, error) {
	state := s.load(ctx).State()
	if p, ok := state.FindProject(ref); ok {
		return p, nil
	}
	var matches []domain.Project
	for _, p := range state.Projects {
		if ref != "" && strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Project{}, fmt.Errorf("project %q: %w", ref, engine.ErrProjectNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Project{}, fmt.Errorf("project %q matches %d projects: %w", ref, len(matches), ErrAmbiguousRef)
	}
}

// ResolveSchedule finds a schedule item by full id or by a unique id prefix.
func (s *plannerService) ResolveSchedule(ctx context.Context, ref string) (domain.ScheduleItem, error) {
	state := s.load(ctx).State()
	if it, ok := state.FindSchedule(ref); ok {
		return it, nil
	}
	var matches []domain.ScheduleItem
	for _, it := range state.Schedule {
		if ref != "" && strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return domain.ScheduleItem{}, fmt.Errorf("schedule item %q: %w", ref, engine.ErrScheduleNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.ScheduleItem{}, fmt.Errorf("schedule item %q matches %d items: %w", ref, len(matches), ErrAmbiguousRef)
	}
}
