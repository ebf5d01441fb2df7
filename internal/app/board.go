package app

import (
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

type BoardRequest struct {
	Now *time.Time
	// Sort overrides the configured default sort mode when non-empty.
	Sort domain.SortMode
	// Locale is a BCP 47 tag used for name collation. Empty means root
	// collation.
	Locale string
}

func NewBoardRequest() BoardRequest {
	return BoardRequest{}
}

// ProjectView is a project joined with its schedule entry and derived
// bucket and alert state.
type ProjectView struct {
	ProjectID      string
	DisplayID      string
	Name           string
	Description    string
	Tags           []string
	Status         string
	StatusLabel    string
	IsCompleted    bool
	IsArchived     bool
	Type           string
	CategoryLabel  string
	CategoryIcon   string
	CategoryColor  string
	Priority       domain.Priority
	ScheduleID     string
	ScheduledDate  *string
	Note           string
	DaysLeft       *int
	Alert          domain.AlertLevel
	Bucket         domain.Bucket
	ChecklistDone  int
	ChecklistTotal int
}

type BoardResponse struct {
	GeneratedAt time.Time
	Sort        domain.SortMode
	Pipeline    []ProjectView
	Published   []ProjectView
	// Warnings lists settings misconfigurations. They are reported, never
	// corrected.
	Warnings []string
}

type AlertsRequest struct {
	Now *time.Time
}

type AlertsResponse struct {
	GeneratedAt   time.Time
	CountCritical int
	CountWarning  int
	// Alerts holds every project with a non-NONE alert, most urgent first.
	Alerts []ProjectView
}

type BoardErrorCode string

const (
	BoardErrInvalidSort BoardErrorCode = "INVALID_SORT"
)

type BoardError struct {
	Code    BoardErrorCode
	Message string
}

func (e *BoardError) Error() string {
	return string(e.Code) + ": " + e.Message
}
