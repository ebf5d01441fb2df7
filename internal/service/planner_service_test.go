package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/cadence/internal/app"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlanner_EmptyStoreUsesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	board, err := env.svc.Board(ctx, app.NewBoardRequest())
	require.NoError(t, err)
	assert.Empty(t, board.Pipeline)
	assert.Empty(t, board.Published)
	assert.Equal(t, domain.SortDefault, board.Sort)
	assert.Empty(t, board.Warnings)

	view, err := env.svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), view.Settings)
	assert.Equal(t, domain.DefaultCategoryConfig(), view.Categories)
}

func TestPlanner_MalformedBlobsFallBackToDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.putRaw(t, repository.KeyProjects, `{"not":"a list"`)
	env.putRaw(t, repository.KeyAppSettings, `[1,2,3]`)
	env.putRaw(t, repository.KeyHistory, `garbage`)

	core, logs := observer.New(zap.WarnLevel)
	svc := env.newService(zap.New(core), testutil.NewTestUoW(env.db))

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Projects)

	view, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, view.Settings.WarningDays)

	depth, err := svc.HistoryDepth(context.Background())
	require.NoError(t, err)
	assert.Zero(t, depth)

	warned := logs.FilterMessage("stored value unusable, using defaults")
	assert.Equal(t, 3, warned.Len())
	keys := map[string]bool{}
	for _, entry := range warned.All() {
		keys[entry.ContextMap()["key"].(string)] = true
	}
	assert.Equal(t, map[string]bool{
		repository.KeyProjects:    true,
		repository.KeyAppSettings: true,
		repository.KeyHistory:     true,
	}, keys)
}

func TestPlanner_RepairsStoredDataOnLoad(t *testing.T) {
	env := newTestEnv(t)
	env.putRaw(t, repository.KeyProjects, `[
		{"id":"p1","name":"Teaser","status":"IN_PROGRESS","type":"HOLOGRAM"},
		{"id":"p2","name":"Podcast","status":"IDEA","type":"PODCAST"}
	]`)
	env.putRaw(t, repository.KeySchedule, `[
		{"id":"s1","date":"2024-06-10","projectId":"p1"},
		{"id":"s2","date":"2024-06-11","projectId":"gone"},
		{"id":"s3","date":"2024-06-12","projectId":"p1"}
	]`)
	svc := env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))

	state, err := svc.State(context.Background())
	require.NoError(t, err)
	require.Len(t, state.Projects, 2)
	assert.Equal(t, domain.FallbackCategory, state.Projects[0].Type)
	require.Len(t, state.Schedule, 1)
	assert.Equal(t, "s1", state.Schedule[0].ID)
}

func TestPlanner_StateAndHistorySurviveReopen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.addProject(t, "Launch video", testutil.WithStatus(domain.StatusInProgress))
	_, err := env.svc.Schedule(ctx, p.ID, testutil.Date("2024-06-05"))
	require.NoError(t, err)

	reopened := env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))
	state, err := reopened.State(ctx)
	require.NoError(t, err)
	require.Len(t, state.Schedule, 1)
	assert.Equal(t, "2024-06-05", domain.FormatDate(state.Schedule[0].Date))

	depth, err := reopened.HistoryDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, depth)

	state, err = reopened.Undo(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Schedule)
	assert.Len(t, state.Projects, 1)

	third := env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))
	state, err = third.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Schedule, "undo is persisted")
}

func TestPlanner_UndoWithEmptyHistory(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Undo(context.Background())
	assert.ErrorIs(t, err, engine.ErrNothingToUndo)
}

func TestPlanner_PublishScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p1 := env.addProject(t, "p1", testutil.WithStatus(domain.StatusInProgress))
	archived := env.addProject(t, "archived", testutil.WithStatus(domain.StatusArchived))

	board, err := env.svc.Board(ctx, app.NewBoardRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{p1.ID}, viewIDs(board.Pipeline))
	assert.Equal(t, []string{archived.ID}, viewIDs(board.Published))

	_, err = env.svc.Schedule(ctx, p1.ID, testutil.Date("2024-01-01"))
	require.NoError(t, err)

	board, err = env.svc.Board(ctx, app.NewBoardRequest())
	require.NoError(t, err)
	assert.Empty(t, board.Pipeline)
	assert.Equal(t, []string{p1.ID, archived.ID}, viewIDs(board.Published))
	assert.Equal(t, domain.BucketPublished, board.Published[0].Bucket)

	_, err = env.svc.Undo(ctx)
	require.NoError(t, err)
	board, err = env.svc.Board(ctx, app.NewBoardRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{p1.ID}, viewIDs(board.Pipeline))
	assert.Nil(t, board.Pipeline[0].ScheduledDate)
}

func TestPlanner_BoardSortsPipeline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b := env.addProject(t, "Beta", testutil.WithType("BLOG"))
	a := env.addProject(t, "Alpha", testutil.WithType("SHORT"), testutil.WithPriority(domain.PriorityLow))
	c := env.addProject(t, "Charlie", testutil.WithPriority(domain.PriorityHigh))

	board, err := env.svc.Board(ctx, app.BoardRequest{Sort: "alpha"})
	require.NoError(t, err)
	assert.Equal(t, domain.SortAlpha, board.Sort)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, viewIDs(board.Pipeline))

	board, err = env.svc.Board(ctx, app.NewBoardRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, viewIDs(board.Pipeline))
}

func TestPlanner_BoardRejectsUnknownSort(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Board(context.Background(), app.BoardRequest{Sort: "RANDOM"})
	var be *app.BoardError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, app.BoardErrInvalidSort, be.Code)
}

func TestPlanner_Alerts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	warn := env.addProject(t, "warn")
	crit := env.addProject(t, "crit")
	overdue := env.addProject(t, "overdue")
	done := env.addProject(t, "done", testutil.WithStatus(domain.StatusCompleted))
	env.addProject(t, "unscheduled")

	for id, date := range map[string]string{
		warn.ID:    "2024-06-07",
		crit.ID:    "2024-06-03",
		overdue.ID: "2024-05-30",
		done.ID:    "2024-06-02",
	} {
		_, err := env.svc.Schedule(ctx, id, testutil.Date(date))
		require.NoError(t, err)
	}

	resp, err := env.svc.Alerts(ctx, app.AlertsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.CountCritical)
	assert.Equal(t, 1, resp.CountWarning)
	assert.Equal(t, []string{overdue.ID, crit.ID, warn.ID}, viewIDs(resp.Alerts))
	assert.Equal(t, -2, *resp.Alerts[0].DaysLeft)
	assert.Equal(t, 6, *resp.Alerts[2].DaysLeft)
}

func TestPlanner_ChecklistDoesNotPushHistory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "Podcast")

	out, err := env.svc.MutateChecklist(ctx, p.ID, engine.ChecklistOp{Kind: engine.ChecklistAdd, Text: "record"})
	require.NoError(t, err)
	require.Len(t, out.Checklist, 1)

	depth, err := env.svc.HistoryDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "only AddProject is recorded")

	view, err := env.svc.ProjectView(ctx, p.ID, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, view.ChecklistDone)
	assert.Equal(t, 1, view.ChecklistTotal)
}

func TestPlanner_InvalidMutationLeavesStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "Blog post")

	err := env.svc.ChangeStatus(ctx, p.ID, "SHIPPED")
	assert.ErrorIs(t, err, engine.ErrInvalidStatus)

	depth, err := env.svc.HistoryDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestPlanner_ApplyIntentTrashFromCalendar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "Short")
	item, err := env.svc.Schedule(ctx, p.ID, testutil.Date("2024-06-20"))
	require.NoError(t, err)

	state, err := env.svc.ApplyIntent(ctx, engine.Intent{
		Source: engine.Source{ProjectID: p.ID, ScheduleID: item.ID},
		Target: engine.Target{Kind: engine.TargetTrash},
	})
	require.NoError(t, err)
	assert.Empty(t, state.Schedule)
	assert.Len(t, state.Projects, 1)
}

func TestPlanner_SaveFailureIsAtomic(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "Newsletter")
	before, err := env.svc.State(ctx)
	require.NoError(t, err)

	uow := &testutil.FailOnKeyUoW{
		DB:  env.db,
		Key: repository.KeySchedule,
		Err: errors.New("disk full"),
	}
	failing := env.newService(zap.NewNop(), uow)
	_, err = failing.Schedule(ctx, p.ID, testutil.Date("2024-06-09"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, uow.Writes, "projects were written before the schedule write failed")

	after, err := failing.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, after), "failed save is discarded in memory too")

	reopened := env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))
	stored, err := reopened.State(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, stored))
}

func TestPlanner_ResolveByPrefix(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "One")
	env.addProject(t, "Two")

	got, err := env.svc.ResolveProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "One", got.Name)

	got, err = env.svc.ResolveProject(ctx, "id-001")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = env.svc.ResolveProject(ctx, "id-")
	assert.ErrorIs(t, err, ErrAmbiguousRef)

	_, err = env.svc.ResolveProject(ctx, "zzz")
	assert.ErrorIs(t, err, engine.ErrProjectNotFound)

	_, err = env.svc.ResolveSchedule(ctx, "nope")
	assert.ErrorIs(t, err, engine.ErrScheduleNotFound)
}

func TestPlanner_ObserverSeesUseCases(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.addProject(t, "Observed")
	_, _ = env.svc.ToggleArchive(ctx, p.ID)
	_ = env.svc.DeleteProject(ctx, "missing")

	assert.Equal(t, []string{"add-project", "toggle-archive", "delete-project"}, env.events.names())
	last := env.events.events[2]
	assert.False(t, last.Success)
	assert.ErrorIs(t, last.Err, engine.ErrProjectNotFound)
}

func TestPlanner_SettingsUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.svc.UpdateSettings(ctx, func(s *domain.AppSettings) error {
		s.CriticalDays = 10
		s.WarningDays = -1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 10, view.Settings.CriticalDays)
	assert.Equal(t, 7, view.Settings.WarningDays, "negative threshold reset")
	assert.NotEmpty(t, view.Warnings, "critical > warning is reported")

	view, err = env.svc.SetCategory(ctx, "reel", domain.Category{Label: "Reel", Icon: "R"})
	require.NoError(t, err)
	assert.Equal(t, "Reel", view.Categories["REEL"].Label)

	depth, err := env.svc.HistoryDepth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth, "settings are not undoable")

	reopened := env.newService(zap.NewNop(), testutil.NewTestUoW(env.db))
	stored, err := reopened.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Settings.CriticalDays)
	assert.Contains(t, stored.Categories, "REEL")
}

func TestPlanner_SaveWritesEveryKey(t *testing.T) {
	env := newTestEnv(t)
	_, ok := testutil.ReadBlob(t, env.db, repository.KeyProjects)
	require.False(t, ok, "nothing is written before the first mutation")

	env.addProject(t, "First")

	for _, key := range repository.AllKeys {
		raw, ok := testutil.ReadBlob(t, env.db, key)
		require.True(t, ok, key)
		assert.NotEmpty(t, raw, key)
	}
	raw, _ := testutil.ReadBlob(t, env.db, repository.KeyProjects)
	assert.Contains(t, raw, `"name":"First"`)
}
