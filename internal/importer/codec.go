package importer

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
)

// The Encode/Decode pairs below define the persisted blob format for each
// store key. They share the JSON shapes of the import document.

func EncodeProjects(projects []domain.Project) ([]byte, error) {
	return json.Marshal(ProjectsToJSON(projects))
}

func DecodeProjects(data []byte) ([]domain.Project, error) {
	var in []ProjectJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}
	return ProjectsFromJSON(in), nil
}

func EncodeSchedule(schedule []domain.ScheduleItem) ([]byte, error) {
	return json.Marshal(ScheduleToJSON(schedule))
}

func DecodeSchedule(data []byte) ([]domain.ScheduleItem, error) {
	var in []ScheduleItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}
	return ScheduleFromJSON(in), nil
}

func EncodeCategories(c domain.CategoryConfig) ([]byte, error) {
	return json.Marshal(CategoriesToJSON(c))
}

func DecodeCategories(data []byte) (domain.CategoryConfig, error) {
	var in map[string]CategoryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding category config: %w", err)
	}
	return CategoriesFromJSON(in), nil
}

func EncodeSettings(s domain.AppSettings) ([]byte, error) {
	return json.Marshal(SettingsToJSON(s))
}

func DecodeSettings(data []byte) (domain.AppSettings, error) {
	var in AppSettingsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return domain.AppSettings{}, fmt.Errorf("decoding app settings: %w", err)
	}
	return SettingsFromJSON(&in), nil
}

func EncodeHistory(entries []domain.State) ([]byte, error) {
	out := make([]SnapshotJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, SnapshotJSON{
			Projects: ProjectsToJSON(e.Projects),
			Schedule: ScheduleToJSON(e.Schedule),
		})
	}
	return json.Marshal(out)
}

func DecodeHistory(data []byte) ([]domain.State, error) {
	var in []SnapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	out := make([]domain.State, 0, len(in))
	for _, s := range in {
		out = append(out, domain.State{
			Projects: ProjectsFromJSON(s.Projects),
			Schedule: ScheduleFromJSON(s.Schedule),
		})
	}
	return out, nil
}
