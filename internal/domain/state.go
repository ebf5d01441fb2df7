package domain

// State is the pair of collections owned by the entity store. Every
// transform returns a new State; nothing mutates a State in place.
type State struct {
	Projects []Project
	Schedule []ScheduleItem
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{}
	if s.Projects != nil {
		out.Projects = make([]Project, len(s.Projects))
		for i, p := range s.Projects {
			out.Projects[i] = p.Clone()
		}
	}
	if s.Schedule != nil {
		out.Schedule = make([]ScheduleItem, len(s.Schedule))
		copy(out.Schedule, s.Schedule)
	}
	return out
}

// FindProject returns the project with the given id.
func (s State) FindProject(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ScheduleFor returns the schedule item referencing projectID.
func (s State) ScheduleFor(projectID string) (ScheduleItem, bool) {
	for _, it := range s.Schedule {
		if it.ProjectID == projectID {
			return it, true
		}
	}
	return ScheduleItem{}, false
}

// FindSchedule returns the schedule item with the given id.
func (s State) FindSchedule(id string) (ScheduleItem, bool) {
	for _, it := range s.Schedule {
		if it.ID == id {
			return it, true
		}
	}
	return ScheduleItem{}, false
}
