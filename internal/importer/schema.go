package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CurrentVersion is the document version written by Export.
const CurrentVersion = 1

// Document is the import/export file and the shape of every persisted blob.
type Document struct {
	Version        int                     `json:"version"`
	Timestamp      string                  `json:"timestamp"`
	Projects       []ProjectJSON           `json:"projects"`
	Schedule       []ScheduleItemJSON      `json:"schedule"`
	CategoryConfig map[string]CategoryJSON `json:"categoryConfig,omitempty"`
	AppSettings    *AppSettingsJSON        `json:"appSettings,omitempty"`
}

type ProjectJSON struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Status      string              `json:"status"`
	Type        string              `json:"type"`
	Priority    string              `json:"priority,omitempty"`
	Checklist   []ChecklistItemJSON `json:"checklist,omitempty"`
}

type ChecklistItemJSON struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

type ScheduleItemJSON struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	ProjectID string `json:"projectId"`
	Note      string `json:"note,omitempty"`
}

type CategoryJSON struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// AppSettingsJSON uses pointers so that absent fields can be told apart from
// zero values and filled with defaults.
type AppSettingsJSON struct {
	WarningDays    *int                   `json:"warningDays,omitempty"`
	CriticalDays   *int                   `json:"criticalDays,omitempty"`
	CategoryOrder  []string               `json:"categoryOrder,omitempty"`
	StatusMode     string                 `json:"statusMode,omitempty"`
	CustomStatuses []StatusDefinitionJSON `json:"customStatuses,omitempty"`
	DefaultSort    string                 `json:"defaultSort,omitempty"`
}

type StatusDefinitionJSON struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"isCompleted,omitempty"`
}

// SnapshotJSON is one persisted undo entry.
type SnapshotJSON struct {
	Projects []ProjectJSON      `json:"projects"`
	Schedule []ScheduleItemJSON `json:"schedule"`
}

// ParseDocument decodes an import document. Shape checks are left to
// ValidateDocument.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &doc, nil
}

// LoadDocument reads and parses an import file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}
