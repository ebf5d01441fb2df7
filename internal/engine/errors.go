package engine

import "errors"

var (
	// ErrProjectNotFound indicates the referenced project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrScheduleNotFound indicates the referenced schedule item does not exist.
	ErrScheduleNotFound = errors.New("schedule item not found")

	// ErrInvalidStatus indicates a status id outside the active status set.
	ErrInvalidStatus = errors.New("status is not in the active status set")

	// ErrInvalidIntent indicates a drop intent with an unknown or incomplete target.
	ErrInvalidIntent = errors.New("invalid drop intent")

	// ErrChecklistItemNotFound indicates the referenced checklist entry does not exist.
	ErrChecklistItemNotFound = errors.New("checklist item not found")

	// ErrInvalidChecklistOp indicates an unknown checklist operation or empty text.
	ErrInvalidChecklistOp = errors.New("invalid checklist operation")

	// ErrNothingToUndo indicates the history stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
)
