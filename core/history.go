package core

import (
	"errors"

	"github.com/ionut-t/richedit/internal/logger"
)

// DefaultMaxHistory is the number of snapshots kept unless configured otherwise.
const DefaultMaxHistory = 1000

var (
	ErrNothingToUndo = errors.New("already at oldest change")
	ErrNothingToRedo = errors.New("already at newest change")
)

// History is a linear stack of full-content snapshots with a cursor at the
// snapshot currently applied to the surface.
//
// The stack is never empty and 0 <= cursor < Len() always holds.
type History struct {
	entries []string
	cursor  int
	max     int
}

// NewHistory returns a stack holding only the empty-content state.
// max bounds the number of snapshots; 0 means unbounded.
func NewHistory(max int) *History {
	if max < 0 {
		max = DefaultMaxHistory
	}
	return &History{
		entries: []string{""},
		cursor:  0,
		max:     max,
	}
}

// SetMax changes the bound and evicts the oldest snapshots if needed.
func (h *History) SetMax(max int) {
	if max < 0 {
		max = DefaultMaxHistory
	}
	h.max = max
	h.evict()
}

// Record discards every snapshot after the cursor, appends content and moves
// the cursor onto it.
func (h *History) Record(content string) {
	h.entries = append(h.entries[:h.cursor+1], content)
	h.cursor = len(h.entries) - 1
	h.evict()

	logger.Debugf("History: recorded snapshot. Cursor: %d, Count: %d", h.cursor, len(h.entries))
}

func (h *History) evict() {
	if h.max <= 0 || len(h.entries) <= h.max {
		return
	}

	// The entry at the cursor is on the surface and must survive: take what
	// is older first, then trim redo entries from the tail.
	front := min(len(h.entries)-h.max, h.cursor)
	h.entries = append([]string(nil), h.entries[front:]...)
	h.cursor -= front
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Undo steps the cursor back and returns the snapshot now applied.
func (h *History) Undo() (string, error) {
	if !h.CanUndo() {
		return h.Current(), ErrNothingToUndo
	}
	h.cursor--
	return h.entries[h.cursor], nil
}

// Redo steps the cursor forward and returns the snapshot now applied.
func (h *History) Redo() (string, error) {
	if !h.CanRedo() {
		return h.Current(), ErrNothingToRedo
	}
	h.cursor++
	return h.entries[h.cursor], nil
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Current returns the snapshot at the cursor.
func (h *History) Current() string {
	return h.entries[h.cursor]
}

func (h *History) Cursor() int {
	return h.cursor
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of every snapshot, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
