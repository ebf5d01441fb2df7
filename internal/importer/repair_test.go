package importer

import (
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepair_FixesProjectsAndSchedule(t *testing.T) {
	d, _ := domain.ParseDate("2024-06-10")
	state := domain.State{
		Projects: []domain.Project{
			{ID: "p1", Name: "Valid", Status: domain.StatusIdea, Type: "VIDEO"},
			{ID: "p2", Name: "Unknown type", Status: domain.StatusIdea, Type: "HOLOGRAM"},
			{ID: "p3", Name: "Missing type", Status: "WHATEVER"},
			{ID: "p1", Name: "Duplicate id"},
			{ID: "p4", Name: "   "},
			{ID: "p5", Name: "Bad priority", Status: domain.StatusIdea, Type: "BLOG", Priority: "SOON"},
		},
		Schedule: []domain.ScheduleItem{
			{ID: "s1", ProjectID: "p1", Date: d},
			{ID: "s2", ProjectID: "deleted", Date: d},
			{ID: "s3", ProjectID: "p1", Date: d.AddDate(0, 0, 3)},
			{ID: "s4", ProjectID: "p2", Date: d},
		},
	}

	got, _, _, report := Repair(state, domain.DefaultAppSettings(), domain.DefaultCategoryConfig())

	require.Len(t, got.Projects, 4)
	assert.Equal(t, domain.FallbackCategory, got.Projects[1].Type)
	assert.Equal(t, domain.FallbackCategory, got.Projects[2].Type)
	assert.Equal(t, domain.StatusIdea, got.Projects[2].Status)
	assert.Empty(t, got.Projects[3].Priority)

	require.Len(t, got.Schedule, 2)
	assert.Equal(t, "s1", got.Schedule[0].ID)
	assert.Equal(t, "s4", got.Schedule[1].ID)

	assert.Equal(t, RepairReport{
		DroppedProjects:   2,
		FixedTypes:        2,
		FixedStatuses:     1,
		FixedPriorities:   1,
		DroppedSchedule:   1,
		DuplicateSchedule: 1,
	}, report)
	assert.True(t, report.Changed())
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	state := domain.State{Projects: []domain.Project{{ID: "p1", Name: "x", Type: "HOLOGRAM"}}}
	_, _, _, _ = Repair(state, domain.DefaultAppSettings(), domain.DefaultCategoryConfig())
	assert.Equal(t, "HOLOGRAM", state.Projects[0].Type)
}

func TestRepairCategories(t *testing.T) {
	assert.Equal(t, domain.DefaultCategoryConfig(), RepairCategories(nil))

	custom := domain.CategoryConfig{"REEL": {Label: "Reel"}}
	got := RepairCategories(custom)
	assert.Contains(t, got, "REEL")
	assert.Contains(t, got, domain.FallbackCategory)
	assert.NotContains(t, custom, domain.FallbackCategory, "input not modified")
}

func TestRepairSettings(t *testing.T) {
	s := domain.AppSettings{WarningDays: -4, CriticalDays: 9, StatusMode: "ODD", DefaultSort: "RANDOM"}
	got := RepairSettings(s)
	def := domain.DefaultAppSettings()
	assert.Equal(t, def.WarningDays, got.WarningDays)
	assert.Equal(t, 9, got.CriticalDays, "misconfiguration is reported, not fixed")
	assert.Equal(t, domain.StatusModeDefault, got.StatusMode)
	assert.Equal(t, domain.SortDefault, got.DefaultSort)
	assert.Equal(t, def.CategoryOrder, got.CategoryOrder)
}

func TestRepair_CustomStatusesKeepArchived(t *testing.T) {
	settings := domain.DefaultAppSettings()
	settings.StatusMode = domain.StatusModeCustom
	settings.CustomStatuses = []domain.StatusDefinition{{ID: "DRAFT"}, {ID: "LIVE", IsCompleted: true}}

	state := domain.State{Projects: []domain.Project{
		{ID: "a", Name: "a", Type: "VIDEO", Status: domain.StatusArchived},
		{ID: "b", Name: "b", Type: "VIDEO", Status: domain.StatusReview},
	}}
	got, _, _, _ := Repair(state, settings, domain.DefaultCategoryConfig())
	assert.Equal(t, domain.StatusArchived, got.Projects[0].Status)
	assert.Equal(t, "DRAFT", got.Projects[1].Status)
}
