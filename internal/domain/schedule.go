package domain

import "time"

// ScheduleItem places a project on a calendar day. ProjectID is a weak
// reference: the project may no longer exist.
type ScheduleItem struct {
	ID        string
	Date      time.Time // local midnight
	ProjectID string
	Note      string
}

// DisplayID returns the id truncated to 8 characters.
func (s *ScheduleItem) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}
