package domain

import "strings"

// StatusDefinition is one entry of a user-defined status set.
type StatusDefinition struct {
	ID          string
	Label       string
	IsCompleted bool
}

// Category describes a project content type.
type Category struct {
	Label string
	Color string
	Icon  string
}

// CategoryConfig maps category keys to their display entries.
type CategoryConfig map[string]Category

// FallbackCategory is the category unknown or missing types resolve to.
const FallbackCategory = "OTHER"

type AppSettings struct {
	WarningDays    int
	CriticalDays   int
	CategoryOrder  []string
	StatusMode     StatusMode
	CustomStatuses []StatusDefinition
	DefaultSort    SortMode
}

// DefaultStatuses is the status set used when StatusMode is DEFAULT.
var DefaultStatuses = []StatusDefinition{
	{ID: StatusIdea, Label: "Idea"},
	{ID: StatusInProgress, Label: "In Progress"},
	{ID: StatusReview, Label: "Review"},
	{ID: StatusCompleted, Label: "Completed", IsCompleted: true},
	{ID: StatusArchived, Label: "Archived"},
}

var defaultCategoryOrder = []string{"VIDEO", "SHORT", "PODCAST", "BLOG", "NEWSLETTER", FallbackCategory}

// DefaultCategoryConfig returns a fresh copy of the built-in categories.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		"VIDEO":          {Label: "Video", Color: "#fb4934", Icon: "▶"},
		"SHORT":          {Label: "Short", Color: "#fe8019", Icon: "⚡"},
		"PODCAST":        {Label: "Podcast", Color: "#d3869b", Icon: "🎙"},
		"BLOG":           {Label: "Blog", Color: "#83a598", Icon: "✎"},
		"NEWSLETTER":     {Label: "Newsletter", Color: "#8ec07c", Icon: "✉"},
		FallbackCategory: {Label: "Other", Color: "#928374", Icon: "•"},
	}
}

// DefaultAppSettings returns a fresh copy of the built-in settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		WarningDays:   7,
		CriticalDays:  3,
		CategoryOrder: append([]string(nil), defaultCategoryOrder...),
		StatusMode:    StatusModeDefault,
		DefaultSort:   SortDefault,
	}
}

// Clone returns a deep copy of the settings.
func (s AppSettings) Clone() AppSettings {
	if s.CategoryOrder != nil {
		s.CategoryOrder = append([]string(nil), s.CategoryOrder...)
	}
	if s.CustomStatuses != nil {
		s.CustomStatuses = append([]StatusDefinition(nil), s.CustomStatuses...)
	}
	return s
}

// Clone returns a copy of the category map.
func (c CategoryConfig) Clone() CategoryConfig {
	out := make(CategoryConfig, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// ActiveStatuses returns the status set currently in effect. In custom mode
// the reserved ARCHIVED status is appended when the user set lacks it.
func (s AppSettings) ActiveStatuses() []StatusDefinition {
	if s.StatusMode != StatusModeCustom || len(s.CustomStatuses) == 0 {
		return append([]StatusDefinition(nil), DefaultStatuses...)
	}
	out := append([]StatusDefinition(nil), s.CustomStatuses...)
	for _, d := range out {
		if d.ID == StatusArchived {
			return out
		}
	}
	return append(out, StatusDefinition{ID: StatusArchived, Label: "Archived"})
}

// IsActiveStatus reports whether id belongs to the active status set.
func (s AppSettings) IsActiveStatus(id string) bool {
	for _, d := range s.ActiveStatuses() {
		if d.ID == id {
			return true
		}
	}
	return false
}

// ResolveStatus returns the active status id matching id. An exact match wins;
// otherwise ids are compared case-insensitively.
func (s AppSettings) ResolveStatus(id string) (string, bool) {
	active := s.ActiveStatuses()
	for _, d := range active {
		if d.ID == id {
			return d.ID, true
		}
	}
	for _, d := range active {
		if strings.EqualFold(d.ID, id) {
			return d.ID, true
		}
	}
	return "", false
}

// IsCompletedStatus reports whether id is the completed state. Default mode
// checks the literal COMPLETED id; custom mode uses the IsCompleted flag.
func (s AppSettings) IsCompletedStatus(id string) bool {
	if s.StatusMode != StatusModeCustom || len(s.CustomStatuses) == 0 {
		return id == StatusCompleted
	}
	for _, d := range s.CustomStatuses {
		if d.ID == id {
			return d.IsCompleted
		}
	}
	return false
}

// IsArchivedStatus reports whether id is the terminal archived state.
func IsArchivedStatus(id string) bool {
	return id == StatusArchived
}

// RestoreStatus is the status an archived project returns to when unarchived.
func (s AppSettings) RestoreStatus() string {
	if s.StatusMode != StatusModeCustom || len(s.CustomStatuses) == 0 {
		return StatusInProgress
	}
	for _, d := range s.CustomStatuses {
		if !d.IsCompleted && !IsArchivedStatus(d.ID) {
			return d.ID
		}
	}
	return s.CustomStatuses[0].ID
}

// InitialStatus is the status assigned to new projects and to projects whose
// stored status no longer exists.
func (s AppSettings) InitialStatus() string {
	return s.ActiveStatuses()[0].ID
}

// StatusLabel returns the display label for id, or id itself when unknown.
func (s AppSettings) StatusLabel(id string) string {
	for _, d := range s.ActiveStatuses() {
		if d.ID == id {
			return d.Label
		}
	}
	return id
}
