package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/scheduler"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestEngine(projects ...domain.Project) *Engine {
	return New(
		domain.State{Projects: projects},
		domain.DefaultAppSettings(),
		domain.DefaultCategoryConfig(),
		WithIDGenerator(sequentialIDs()),
	)
}

func inProgress(id string) domain.Project {
	return domain.Project{ID: id, Name: "Project " + id, Status: domain.StatusInProgress, Type: "VIDEO"}
}

func scheduleCount(s domain.State, projectID string) int {
	n := 0
	for _, it := range s.Schedule {
		if it.ProjectID == projectID {
			n++
		}
	}
	return n
}

func TestScheduleOrReschedule_CreatesThenMoves(t *testing.T) {
	e := newTestEngine(inProgress("p1"))

	st, err := e.ScheduleOrReschedule("p1", day(t, "2024-06-10"))
	require.NoError(t, err)
	require.Len(t, st.Schedule, 1)
	created := st.Schedule[0]
	assert.Equal(t, "p1", created.ProjectID)
	assert.Empty(t, created.Note)

	_, err = e.SetScheduleNote(created.ID, "thumbnail ready")
	require.NoError(t, err)

	st, err = e.ScheduleOrReschedule("p1", day(t, "2024-06-20"))
	require.NoError(t, err)
	require.Len(t, st.Schedule, 1)
	assert.Equal(t, created.ID, st.Schedule[0].ID, "id preserved")
	assert.Equal(t, "thumbnail ready", st.Schedule[0].Note, "note preserved")
	assert.Equal(t, "2024-06-20", domain.FormatDate(st.Schedule[0].Date))
	assert.Equal(t, 3, e.History().Len())
}

func TestScheduleOrReschedule_SameDateIsNoop(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	_, err := e.ScheduleOrReschedule("p1", day(t, "2024-06-10"))
	require.NoError(t, err)

	_, err = e.ScheduleOrReschedule("p1", day(t, "2024-06-10").Add(5*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, e.History().Len())
}

func TestScheduleOrReschedule_UnknownProject(t *testing.T) {
	e := newTestEngine()
	_, err := e.ScheduleOrReschedule("ghost", day(t, "2024-06-10"))
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, 0, e.History().Len())
}

func TestScheduleOrReschedule_NeverDuplicates(t *testing.T) {
	e := newTestEngine(inProgress("p1"), inProgress("p2"))
	dates := []string{"2024-06-02", "2024-06-03", "2024-05-01", "2024-06-03", "2024-07-07"}
	for i, d := range dates {
		pid := "p1"
		if i%2 == 1 {
			pid = "p2"
		}
		_, err := e.ScheduleOrReschedule(pid, day(t, d))
		require.NoError(t, err)
		_, err = e.ApplyIntent(Intent{Source: Source{ProjectID: pid}, Target: Target{Kind: TargetDate, Date: day(t, d).AddDate(0, 0, 1)}})
		require.NoError(t, err)
	}
	st := e.State()
	assert.Equal(t, 1, scheduleCount(st, "p1"))
	assert.Equal(t, 1, scheduleCount(st, "p2"))
}

func TestUnschedule(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	st, _ := e.ScheduleOrReschedule("p1", day(t, "2024-06-10"))

	st, err := e.Unschedule(st.Schedule[0].ID)
	require.NoError(t, err)
	assert.Empty(t, st.Schedule)
	require.Len(t, st.Projects, 1, "project untouched")

	_, err = e.Unschedule("missing")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
	assert.Equal(t, 2, e.History().Len())
}

func TestChangeStatus(t *testing.T) {
	e := newTestEngine(inProgress("p1"))

	st, err := e.ChangeStatus("p1", domain.StatusReview)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReview, st.Projects[0].Status)
	assert.Equal(t, 1, e.History().Len())
}

func TestChangeStatus_InvalidIsNoop(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	before := e.State()

	_, err := e.ChangeStatus("p1", "PUBLISHED_MAYBE")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 0, e.History().Len())
	assert.Empty(t, cmp.Diff(before, e.State()))

	_, err = e.ChangeStatus("p1", domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 0, e.History().Len(), "unchanged status pushes nothing")
}

func TestChangeStatus_CustomSet(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	s := domain.DefaultAppSettings()
	s.StatusMode = domain.StatusModeCustom
	s.CustomStatuses = []domain.StatusDefinition{{ID: "DRAFT"}, {ID: "LIVE", IsCompleted: true}}
	e.SetSettings(s)

	_, err := e.ChangeStatus("p1", domain.StatusReview)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	st, err := e.ChangeStatus("p1", "LIVE")
	require.NoError(t, err)
	assert.Equal(t, "LIVE", st.Projects[0].Status)
}

func TestDeleteProject_Cascades(t *testing.T) {
	e := newTestEngine(inProgress("p1"), inProgress("p2"))
	_, _ = e.ScheduleOrReschedule("p1", day(t, "2024-06-10"))
	_, _ = e.ScheduleOrReschedule("p2", day(t, "2024-06-11"))
	historyBefore := e.History().Len()

	st, err := e.DeleteProject("p1")
	require.NoError(t, err)
	require.Len(t, st.Projects, 1)
	assert.Equal(t, "p2", st.Projects[0].ID)
	require.Len(t, st.Schedule, 1)
	assert.Equal(t, "p2", st.Schedule[0].ProjectID)
	assert.Equal(t, historyBefore+1, e.History().Len(), "one history entry for project and schedule")

	_, err = e.DeleteProject("p1")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestToggleArchive(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	st, _ := e.ScheduleOrReschedule("p1", day(t, "2024-09-01"))
	scheduled := st.Schedule[0]

	st, err := e.ToggleArchive("p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, st.Projects[0].Status)
	assert.Equal(t, scheduled, st.Schedule[0], "schedule untouched")

	st, err = e.ToggleArchive("p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, st.Projects[0].Status)
}

func TestMutateChecklist_NoHistory(t *testing.T) {
	e := newTestEngine(inProgress("p1"))

	st, err := e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistAdd, Text: "  write script "})
	require.NoError(t, err)
	require.Len(t, st.Projects[0].Checklist, 1)
	item := st.Projects[0].Checklist[0]
	assert.Equal(t, "write script", item.Text)
	assert.False(t, item.IsCompleted)

	st, err = e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistToggle, ItemID: item.ID})
	require.NoError(t, err)
	assert.True(t, st.Projects[0].Checklist[0].IsCompleted)

	st, err = e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistEdit, ItemID: item.ID, Text: "record"})
	require.NoError(t, err)
	assert.Equal(t, "record", st.Projects[0].Checklist[0].Text)

	st, err = e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistDelete, ItemID: item.ID})
	require.NoError(t, err)
	assert.Empty(t, st.Projects[0].Checklist)

	assert.Equal(t, 0, e.History().Len())
}

func TestMutateChecklist_Errors(t *testing.T) {
	e := newTestEngine(inProgress("p1"))

	_, err := e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistAdd, Text: "   "})
	assert.ErrorIs(t, err, ErrInvalidChecklistOp)

	_, err = e.MutateChecklist("p1", ChecklistOp{Kind: ChecklistToggle, ItemID: "nope"})
	assert.ErrorIs(t, err, ErrChecklistItemNotFound)

	_, err = e.MutateChecklist("p1", ChecklistOp{Kind: "rename"})
	assert.ErrorIs(t, err, ErrInvalidChecklistOp)

	_, err = e.MutateChecklist("ghost", ChecklistOp{Kind: ChecklistAdd, Text: "x"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestAddProject_Defaults(t *testing.T) {
	e := newTestEngine()
	p, err := e.AddProject(domain.Project{Name: " New idea ", Type: "HOLOGRAM"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "New idea", p.Name)
	assert.Equal(t, domain.FallbackCategory, p.Type)
	assert.Equal(t, domain.StatusIdea, p.Status)
	assert.Equal(t, 1, e.History().Len())

	_, err = e.AddProject(domain.Project{Name: ""})
	require.Error(t, err)
	_, err = e.AddProject(domain.Project{Name: "x", Status: "NOPE"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, 1, e.History().Len())
}

func TestUpdateProject(t *testing.T) {
	p := inProgress("p1")
	p.Checklist = []domain.ChecklistItem{{ID: "c1", Text: "keep me"}}
	e := newTestEngine(p)

	st, err := e.UpdateProject(domain.Project{
		ID:       "p1",
		Name:     "Renamed",
		Tags:     []string{"tutorial"},
		Type:     "BLOG",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusCompleted,
	})
	require.NoError(t, err)
	got := st.Projects[0]
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, []string{"tutorial"}, got.Tags)
	assert.Equal(t, "BLOG", got.Type)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.StatusInProgress, got.Status, "status only changes through ChangeStatus")
	assert.Len(t, got.Checklist, 1)

	_, err = e.UpdateProject(domain.Project{ID: "p1", Name: ""})
	require.Error(t, err)
	assert.Equal(t, "Renamed", e.State().Projects[0].Name)
}

func TestUndo_RoundTripEveryOperation(t *testing.T) {
	ops := map[string]func(t *testing.T, e *Engine) error{
		"schedule": func(t *testing.T, e *Engine) error {
			_, err := e.ScheduleOrReschedule("p2", day(t, "2024-08-01"))
			return err
		},
		"reschedule": func(t *testing.T, e *Engine) error {
			_, err := e.ScheduleOrReschedule("p1", day(t, "2024-08-01"))
			return err
		},
		"unschedule": func(t *testing.T, e *Engine) error {
			it, _ := e.State().ScheduleFor("p1")
			_, err := e.Unschedule(it.ID)
			return err
		},
		"status": func(t *testing.T, e *Engine) error {
			_, err := e.ChangeStatus("p1", domain.StatusReview)
			return err
		},
		"delete": func(t *testing.T, e *Engine) error {
			_, err := e.DeleteProject("p1")
			return err
		},
		"archive": func(t *testing.T, e *Engine) error {
			_, err := e.ToggleArchive("p2")
			return err
		},
		"add": func(t *testing.T, e *Engine) error {
			_, err := e.AddProject(domain.Project{Name: "Fresh"})
			return err
		},
		"update": func(t *testing.T, e *Engine) error {
			_, err := e.UpdateProject(domain.Project{ID: "p2", Name: "Edited", Tags: []string{"t"}})
			return err
		},
		"replace": func(t *testing.T, e *Engine) error {
			e.Replace(domain.State{}, domain.DefaultAppSettings(), domain.DefaultCategoryConfig())
			return nil
		},
		"drop-trash": func(t *testing.T, e *Engine) error {
			_, err := e.ApplyIntent(Intent{Source: Source{ProjectID: "p2"}, Target: Target{Kind: TargetTrash}})
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			p1 := inProgress("p1")
			p1.Tags = []string{"a", "b"}
			p1.Checklist = []domain.ChecklistItem{{ID: "c1", Text: "x", IsCompleted: true}}
			e := newTestEngine(p1, inProgress("p2"))
			_, err := e.ScheduleOrReschedule("p1", day(t, "2024-07-01"))
			require.NoError(t, err)

			before := e.State()
			require.NoError(t, op(t, e))
			require.NotEmpty(t, cmp.Diff(before, e.State()), "operation must change state")

			after, err := e.Undo()
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(before, after))
		})
	}
}

func TestUndo_Empty(t *testing.T) {
	e := newTestEngine()
	_, err := e.Undo()
	assert.True(t, errors.Is(err, ErrNothingToUndo))
	assert.False(t, e.CanUndo())
}

func TestUndo_HistoryBound(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	start := day(t, "2024-06-02")
	for i := 0; i < 25; i++ {
		_, err := e.ScheduleOrReschedule("p1", start.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	undone := 0
	for e.CanUndo() {
		_, err := e.Undo()
		require.NoError(t, err)
		undone++
	}
	assert.Equal(t, 20, undone)

	// The oldest recoverable state is the one after the 5th operation.
	d, ok := scheduler.ScheduledDateOf("p1", e.State().Schedule)
	require.True(t, ok)
	assert.Equal(t, "2024-06-06", domain.FormatDate(d))
}

func TestScenario_ScheduleInPastPublishesThenUndo(t *testing.T) {
	archivedOnly := domain.Project{ID: "arch", Name: "Old", Status: domain.StatusArchived, Type: "BLOG"}
	e := newTestEngine(inProgress("p1"), archivedOnly)

	part := scheduler.PartitionProjects(e.State().Projects, e.State().Schedule, today)
	assert.Equal(t, []string{"p1"}, projectIDs(part.Pipeline))

	st, err := e.ScheduleOrReschedule("p1", day(t, "2024-01-01"))
	require.NoError(t, err)
	part = scheduler.PartitionProjects(st.Projects, st.Schedule, today)
	assert.Empty(t, part.Pipeline)
	assert.Equal(t, []string{"p1", "arch"}, projectIDs(part.Published))

	st, err = e.Undo()
	require.NoError(t, err)
	assert.Empty(t, st.Schedule)
	part = scheduler.PartitionProjects(st.Projects, st.Schedule, today)
	assert.Equal(t, []string{"p1"}, projectIDs(part.Pipeline))
}

func TestScenario_AlertAcrossReschedules(t *testing.T) {
	e := newTestEngine(inProgress("p1"))
	settings := e.Settings()
	settings.CriticalDays, settings.WarningDays = 3, 7
	e.SetSettings(settings)

	levelAfter := func(date string) domain.AlertLevel {
		st, err := e.ScheduleOrReschedule("p1", day(t, date))
		require.NoError(t, err)
		d, _ := scheduler.ScheduledDateOf("p1", st.Schedule)
		return scheduler.EvaluateAlert(st.Projects[0], &d, e.Settings(), today)
	}
	assert.Equal(t, domain.AlertCritical, levelAfter("2024-06-03"))
	assert.Equal(t, domain.AlertWarning, levelAfter("2024-06-07"))
	assert.Equal(t, domain.AlertNone, levelAfter("2024-06-10"))
}

func projectIDs(ps []domain.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestChangeStatus_MatchesIDCaseInsensitively(t *testing.T) {
	p := inProgress("p1")
	p.Status = "draft"
	e := newTestEngine(p)
	s := domain.DefaultAppSettings()
	s.StatusMode = domain.StatusModeCustom
	s.CustomStatuses = []domain.StatusDefinition{{ID: "draft"}, {ID: "done", IsCompleted: true}}
	e.SetSettings(s)

	tgt, err := ParseTarget("status:done")
	require.NoError(t, err)
	st, err := e.ApplyIntent(Intent{Source: Source{ProjectID: "p1"}, Target: tgt})
	require.NoError(t, err)
	assert.Equal(t, "done", st.Projects[0].Status)

	st, err = e.ChangeStatus("p1", "DRAFT")
	require.NoError(t, err)
	assert.Equal(t, "draft", st.Projects[0].Status, "stored id keeps its own case")
	assert.Equal(t, 2, e.History().Len())
}

func TestToggleArchive_NothingToRestoreIsNoop(t *testing.T) {
	p := inProgress("p1")
	p.Status = domain.StatusArchived
	e := newTestEngine(p)
	s := domain.DefaultAppSettings()
	s.StatusMode = domain.StatusModeCustom
	s.CustomStatuses = []domain.StatusDefinition{{ID: domain.StatusArchived}, {ID: "DONE", IsCompleted: true}}
	e.SetSettings(s)
	require.Equal(t, domain.StatusArchived, s.RestoreStatus())

	st, err := e.ToggleArchive("p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArchived, st.Projects[0].Status)
	assert.False(t, e.CanUndo())
}

func TestUpdateProject_UnchangedIsNoop(t *testing.T) {
	p := inProgress("p1")
	p.Tags = []string{"tutorial"}
	p.Priority = domain.PriorityLow
	e := newTestEngine(p)

	_, err := e.UpdateProject(domain.Project{
		ID:       "p1",
		Name:     "  " + p.Name + " ",
		Tags:     []string{"tutorial"},
		Type:     p.Type,
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	assert.False(t, e.CanUndo())

	_, err = e.UpdateProject(domain.Project{ID: "p1", Name: p.Name, Type: p.Type, Priority: domain.PriorityLow})
	require.NoError(t, err)
	assert.Equal(t, 1, e.History().Len(), "dropping a tag is a change")
}
