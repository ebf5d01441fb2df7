// Package engine applies state-changing operations to the entity store.
//
// Every history-pushing operation snapshots the current {projects, schedule}
// before it changes anything. An operation that returns an error, or that
// would not change state, leaves both the state and the history untouched.
// Operations run synchronously to completion; the engine is not safe for
// concurrent use.
package engine

import (
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/history"
	"github.com/google/uuid"
)

// Engine owns the current state and its undo history.
type Engine struct {
	state      domain.State
	settings   domain.AppSettings
	categories domain.CategoryConfig
	history    *history.Stack
	newID      func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides uuid-based id generation.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithHistory uses h as the undo log instead of a fresh stack.
func WithHistory(h *history.Stack) Option {
	return func(e *Engine) { e.history = h }
}

// New creates an engine over a copy of state.
func New(state domain.State, settings domain.AppSettings, categories domain.CategoryConfig, opts ...Option) *Engine {
	e := &Engine{
		state:      state.Clone(),
		settings:   settings.Clone(),
		categories: categories.Clone(),
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.history == nil {
		e.history = history.NewStack(history.DefaultCapacity)
	}
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() domain.State { return e.state.Clone() }

// Settings returns a copy of the settings in effect.
func (e *Engine) Settings() domain.AppSettings { return e.settings.Clone() }

// Categories returns a copy of the category configuration.
func (e *Engine) Categories() domain.CategoryConfig { return e.categories.Clone() }

// History exposes the undo log for persistence.
func (e *Engine) History() *history.Stack { return e.history }

// SetSettings replaces the settings context. Settings changes are not
// recorded in history.
func (e *Engine) SetSettings(s domain.AppSettings) { e.settings = s.Clone() }

// SetCategories replaces the category configuration without history.
func (e *Engine) SetCategories(c domain.CategoryConfig) { e.categories = c.Clone() }

// CanUndo reports whether Undo would succeed.
func (e *Engine) CanUndo() bool { return e.history.Len() > 0 }

// Undo restores the most recent snapshot verbatim.
func (e *Engine) Undo() (domain.State, error) {
	prev, ok := e.history.Pop()
	if !ok {
		return e.State(), ErrNothingToUndo
	}
	e.state = prev
	return e.State(), nil
}

// commit snapshots the current state and installs next.
func (e *Engine) commit(next domain.State) domain.State {
	e.history.Push(e.state)
	e.state = next
	return e.State()
}

func (e *Engine) projectIndex(id string) int {
	for i, p := range e.state.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) scheduleIndexByProject(projectID string) int {
	for i, it := range e.state.Schedule {
		if it.ProjectID == projectID {
			return i
		}
	}
	return -1
}

func (e *Engine) scheduleIndex(id string) int {
	for i, it := range e.state.Schedule {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// resolveCategory maps unknown or empty types to the fallback category.
func (e *Engine) resolveCategory(key string) string {
	if _, ok := e.categories[key]; ok {
		return key
	}
	return domain.FallbackCategory
}
