package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cadence/internal/domain"
)

type ChecklistOpKind string

const (
	ChecklistAdd    ChecklistOpKind = "add"
	ChecklistToggle ChecklistOpKind = "toggle"
	ChecklistEdit   ChecklistOpKind = "edit"
	ChecklistDelete ChecklistOpKind = "delete"
)

// ChecklistOp is one edit to a project's checklist. ItemID is ignored for
// add; Text is ignored for toggle and delete.
type ChecklistOp struct {
	Kind   ChecklistOpKind
	ItemID string
	Text   string
}

// MutateChecklist applies op to a project's checklist. Checklist edits are
// frequent and fine-grained, so they are never recorded in history; undo
// skips over them to the previous structural change.
func (e *Engine) MutateChecklist(projectID string, op ChecklistOp) (domain.State, error) {
	i := e.projectIndex(projectID)
	if i < 0 {
		return e.State(), fmt.Errorf("editing checklist of %s: %w", projectID, ErrProjectNotFound)
	}
	next := e.state.Clone()
	list := next.Projects[i].Checklist
	text := strings.TrimSpace(op.Text)

	find := func() (int, error) {
		for j, c := range list {
			if c.ID == op.ItemID {
				return j, nil
			}
		}
		return -1, fmt.Errorf("checklist item %s: %w", op.ItemID, ErrChecklistItemNotFound)
	}

	switch op.Kind {
	case ChecklistAdd:
		if text == "" {
			return e.State(), fmt.Errorf("adding empty checklist item: %w", ErrInvalidChecklistOp)
		}
		list = append(list, domain.ChecklistItem{ID: e.newID(), Text: text})
	case ChecklistToggle:
		j, err := find()
		if err != nil {
			return e.State(), err
		}
		list[j].IsCompleted = !list[j].IsCompleted
	case ChecklistEdit:
		j, err := find()
		if err != nil {
			return e.State(), err
		}
		if text == "" {
			return e.State(), fmt.Errorf("editing checklist item to empty text: %w", ErrInvalidChecklistOp)
		}
		list[j].Text = text
	case ChecklistDelete:
		j, err := find()
		if err != nil {
			return e.State(), err
		}
		list = append(list[:j], list[j+1:]...)
	default:
		return e.State(), fmt.Errorf("checklist op %q: %w", op.Kind, ErrInvalidChecklistOp)
	}

	next.Projects[i].Checklist = list
	e.state = next
	return e.State(), nil
}
