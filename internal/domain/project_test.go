package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	p := &Project{ID: "p1", Name: "Launch video", Priority: PriorityHigh}
	assert.NoError(t, p.Validate())
}

func TestValidate_EmptyName(t *testing.T) {
	p := &Project{ID: "p1"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestValidate_BadPriority(t *testing.T) {
	p := &Project{ID: "p1", Name: "x", Priority: "URGENT"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestValidate_AbsentPriorityAllowed(t *testing.T) {
	p := &Project{ID: "p1", Name: "x"}
	assert.NoError(t, p.Validate())
}

func TestClone_DoesNotShareSlices(t *testing.T) {
	p := Project{
		ID:        "p1",
		Tags:      []string{"a"},
		Checklist: []ChecklistItem{{ID: "c1", Text: "script"}},
	}
	c := p.Clone()
	c.Tags[0] = "b"
	c.Checklist[0].IsCompleted = true

	assert.Equal(t, "a", p.Tags[0])
	assert.False(t, p.Checklist[0].IsCompleted)
}

func TestChecklistProgress(t *testing.T) {
	p := &Project{Checklist: []ChecklistItem{
		{ID: "1", IsCompleted: true},
		{ID: "2"},
		{ID: "3", IsCompleted: true},
	}}
	done, total := p.ChecklistProgress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 3, total)
}

func TestStateClone_Independent(t *testing.T) {
	s := State{
		Projects: []Project{{ID: "p1", Tags: []string{"x"}}},
		Schedule: []ScheduleItem{{ID: "s1", ProjectID: "p1"}},
	}
	c := s.Clone()
	c.Projects[0].Name = "changed"
	c.Schedule[0].Note = "changed"

	assert.Empty(t, s.Projects[0].Name)
	assert.Empty(t, s.Schedule[0].Note)
}

func TestStateLookups(t *testing.T) {
	s := State{
		Projects: []Project{{ID: "p1"}},
		Schedule: []ScheduleItem{{ID: "s1", ProjectID: "p1"}},
	}
	_, ok := s.FindProject("p1")
	assert.True(t, ok)
	_, ok = s.FindProject("missing")
	assert.False(t, ok)

	it, ok := s.ScheduleFor("p1")
	require.True(t, ok)
	assert.Equal(t, "s1", it.ID)

	_, ok = s.FindSchedule("s2")
	assert.False(t, ok)
}

func TestStateClone_PreservesEmptyCollections(t *testing.T) {
	s := State{Projects: []Project{{ID: "p", Name: "x", Tags: []string{}}}, Schedule: []ScheduleItem{}}
	c := s.Clone()
	assert.NotNil(t, c.Schedule)
	assert.Empty(t, c.Schedule)
	assert.NotNil(t, c.Projects[0].Tags)
	assert.Nil(t, State{}.Clone().Schedule)
}
