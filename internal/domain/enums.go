package domain

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ValidPriorities is the canonical set of accepted priority strings.
// The empty priority is also accepted and weighs like MEDIUM.
var ValidPriorities = map[Priority]bool{
	PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

type StatusMode string

const (
	StatusModeDefault StatusMode = "DEFAULT"
	StatusModeCustom  StatusMode = "CUSTOM"
)

// Built-in status ids used when the status mode is DEFAULT.
const (
	StatusIdea       = "IDEA"
	StatusInProgress = "IN_PROGRESS"
	StatusReview     = "REVIEW"
	StatusCompleted  = "COMPLETED"
	// StatusArchived is reserved in both status modes.
	StatusArchived = "ARCHIVED"
)

type SortMode string

const (
	SortDefault  SortMode = "DEFAULT"
	SortAlpha    SortMode = "ALPHA"
	SortCategory SortMode = "CATEGORY"
	SortPriority SortMode = "PRIORITY"
	SortDate     SortMode = "DATE"
)

// ValidSortModes is the canonical set of accepted sort modes.
var ValidSortModes = map[SortMode]bool{
	SortDefault: true, SortAlpha: true, SortCategory: true, SortPriority: true, SortDate: true,
}

type AlertLevel string

const (
	AlertNone     AlertLevel = "NONE"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
)

type Bucket string

const (
	BucketPipeline  Bucket = "pipeline"
	BucketPublished Bucket = "published"
)
