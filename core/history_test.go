package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_StartsWithEmptyState(t *testing.T) {
	h := NewHistory(0)

	assert.Equal(t, []string{""}, h.Entries())
	assert.Equal(t, 0, h.Cursor())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_RedoTruncation(t *testing.T) {
	h := NewHistory(0)
	h.Record("A")
	h.Record("B")
	require.Equal(t, 2, h.Cursor())

	content, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, "A", content)
	assert.Equal(t, 1, h.Cursor())

	h.Record("C")
	assert.Equal(t, []string{"", "A", "C"}, h.Entries())
	assert.Equal(t, 2, h.Cursor())
	assert.False(t, h.CanRedo())
}

func TestHistory_Boundaries(t *testing.T) {
	h := NewHistory(0)

	content, err := h.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.Equal(t, "", content)

	h.Record("A")
	content, err = h.Redo()
	assert.ErrorIs(t, err, ErrNothingToRedo)
	assert.Equal(t, "A", content)
	assert.Equal(t, 1, h.Cursor())
}

func TestHistory_UndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(0)
	for _, s := range []string{"a", "ab", "abc", "abcd"} {
		h.Record(s)
	}

	for h.CanUndo() {
		before := h.Current()
		_, err := h.Undo()
		require.NoError(t, err)
		restored, err := h.Redo()
		require.NoError(t, err)
		assert.Equal(t, before, restored)
		_, _ = h.Undo()
	}
	assert.Equal(t, 0, h.Cursor())
}

func TestHistory_BoundsHoldForAnySequence(t *testing.T) {
	h := NewHistory(0)
	ops := "rrururrduuuurrdrudduu"

	for i, op := range ops {
		switch op {
		case 'r':
			h.Record(string(rune('a' + i)))
		case 'u':
			_, _ = h.Undo()
		case 'd':
			_, _ = h.Redo()
		}

		assert.True(t, h.Cursor() >= 0 && h.Cursor() < h.Len(), "step %d", i)
		assert.Equal(t, h.Cursor() > 0, h.CanUndo(), "step %d", i)
		assert.Equal(t, h.Cursor() < h.Len()-1, h.CanRedo(), "step %d", i)
	}
}

func TestHistory_MaxEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	h.Record("A")
	h.Record("B")
	h.Record("C")

	assert.Equal(t, []string{"A", "B", "C"}, h.Entries())
	assert.Equal(t, 2, h.Cursor())
	assert.Equal(t, "C", h.Current())
}

func TestHistory_SetMaxKeepsCurrent(t *testing.T) {
	tests := []struct {
		name     string
		undos    int
		max      int
		want     []string
		wantCurr string
		canUndo  bool
		canRedo  bool
	}{
		{"cursor at newest", 0, 2, []string{"C", "D"}, "D", true, false},
		{"cursor in the middle", 2, 4, []string{"A", "B", "C", "D"}, "B", true, true},
		{"cursor in the evicted part", 3, 2, []string{"A", "B"}, "A", false, true},
		{"cursor at empty state", 4, 1, []string{""}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(0)
			for _, s := range []string{"A", "B", "C", "D"} {
				h.Record(s)
			}
			for i := 0; i < tt.undos; i++ {
				_, _ = h.Undo()
			}
			before := h.Current()

			h.SetMax(tt.max)

			assert.Equal(t, before, h.Current())
			assert.Equal(t, tt.wantCurr, h.Current())
			assert.Equal(t, tt.want, h.Entries())
			assert.Equal(t, tt.canUndo, h.CanUndo())
			assert.Equal(t, tt.canRedo, h.CanRedo())
		})
	}
}

func TestHistory_NegativeMaxUsesDefault(t *testing.T) {
	h := NewHistory(-1)
	for i := 0; i < DefaultMaxHistory+10; i++ {
		h.Record("x")
	}
	assert.Equal(t, DefaultMaxHistory, h.Len())
}
