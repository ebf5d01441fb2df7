// Package history keeps a bounded undo log of entity-store snapshots.
// There is no redo: a popped entry is gone.
package history

import "github.com/alexanderramin/cadence/internal/domain"

// DefaultCapacity is the number of undo steps retained.
const DefaultCapacity = 20

// Stack is a LIFO ring buffer of state snapshots. Pushing onto a full
// stack silently discards the oldest entry.
type Stack struct {
	buf   []domain.State
	start int // index of the oldest entry
	size  int
}

// NewStack creates a stack holding at most capacity entries.
// A non-positive capacity uses DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{buf: make([]domain.State, capacity)}
}

// Push stores a deep copy of snapshot.
func (s *Stack) Push(snapshot domain.State) {
	c := cap(s.buf)
	if s.size < c {
		s.buf[(s.start+s.size)%c] = snapshot.Clone()
		s.size++
		return
	}
	s.buf[s.start] = snapshot.Clone()
	s.start = (s.start + 1) % c
}

// Pop removes and returns the most recent snapshot.
func (s *Stack) Pop() (domain.State, bool) {
	if s.size == 0 {
		return domain.State{}, false
	}
	c := cap(s.buf)
	i := (s.start + s.size - 1) % c
	snap := s.buf[i]
	s.buf[i] = domain.State{}
	s.size--
	return snap, true
}

// Len returns the number of stored snapshots.
func (s *Stack) Len() int { return s.size }

// Capacity returns the maximum number of stored snapshots.
func (s *Stack) Capacity() int { return cap(s.buf) }

// Clear drops every entry.
func (s *Stack) Clear() {
	for i := range s.buf {
		s.buf[i] = domain.State{}
	}
	s.start, s.size = 0, 0
}

// Entries returns copies of the stored snapshots, oldest first.
func (s *Stack) Entries() []domain.State {
	out := make([]domain.State, 0, s.size)
	c := cap(s.buf)
	for i := 0; i < s.size; i++ {
		out = append(out, s.buf[(s.start+i)%c].Clone())
	}
	return out
}

// Restore replaces the contents with entries (oldest first). When entries
// exceed the capacity only the newest are kept.
func (s *Stack) Restore(entries []domain.State) {
	s.Clear()
	for _, e := range entries {
		s.Push(e)
	}
}
