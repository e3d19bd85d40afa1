package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_String(t *testing.T) {
	assert.Equal(t, "Ctrl+b", KeyEvent{Rune: 'b', Modifiers: ModCtrl}.String())
	assert.Equal(t, "Alt+Shift+Left", KeyEvent{Key: KeyLeft, Modifiers: ModAlt | ModShift}.String())
	assert.Equal(t, "Enter", KeyEvent{Key: KeyEnter}.String())
	assert.Equal(t, "SpecialKey(99)", KeyEvent{Key: KeyCode(99)}.String())
}

func TestHandleKey_Shortcuts(t *testing.T) {
	tests := []struct {
		name string
		key  KeyEvent
		want execCall
	}{
		{"bold", KeyEvent{Rune: 'b', Modifiers: ModCtrl}, execCall{CmdBold, ""}},
		{"bold upper", KeyEvent{Rune: 'B', Modifiers: ModCtrl | ModShift}, execCall{CmdBold, ""}},
		{"italic alias", KeyEvent{Rune: 'i', Modifiers: ModAlt}, execCall{CmdItalic, ""}},
		{"underline", KeyEvent{Rune: 'u', Modifiers: ModCtrl}, execCall{CmdUnderline, ""}},
		{"center", KeyEvent{Rune: 'e', Modifiers: ModCtrl}, execCall{CmdJustifyCenter, ""}},
		{"justify", KeyEvent{Rune: 'j', Modifiers: ModCtrl}, execCall{CmdJustifyFull, ""}},
		{"heading", KeyEvent{Rune: '2', Modifiers: ModAlt}, execCall{CmdFormatBlock, "<h2>"}},
		{"paragraph", KeyEvent{Rune: '0', Modifiers: ModAlt}, execCall{CmdFormatBlock, "<p>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSurface()
			e := New(s)

			assert.True(t, e.HandleKey(tt.key))
			assert.Equal(t, []execCall{tt.want}, s.calls)
		})
	}
}

func TestHandleKey_UndoRedoAndLink(t *testing.T) {
	s := newFakeSurface()
	s.hasSel = true
	e := New(s)
	s.content = "A"
	e.HandleContentChange()

	assert.True(t, e.HandleKey(KeyEvent{Rune: 'z', Modifiers: ModCtrl}))
	assert.Equal(t, "", s.content)
	assert.True(t, e.HandleKey(KeyEvent{Rune: 'y', Modifiers: ModCtrl}))
	assert.Equal(t, "A", s.content)

	assert.True(t, e.HandleKey(KeyEvent{Rune: 'k', Modifiers: ModCtrl}))
	assert.True(t, e.GetState().ShowLinkDialog)
}

func TestHandleKey_NotAShortcut(t *testing.T) {
	s := newFakeSurface()
	e := New(s)

	assert.False(t, e.HandleKey(KeyEvent{Rune: 'b'}))
	assert.False(t, e.HandleKey(KeyEvent{Key: KeyEnter}))
	assert.Empty(t, s.calls)
}

func TestWithShortcuts(t *testing.T) {
	s := newFakeSurface()
	e := New(s, WithShortcuts(map[KeyEvent]Action{
		{Rune: 'G', Modifiers: ModCtrl}: ActionBold,
	}))

	assert.False(t, e.HandleKey(KeyEvent{Rune: 'b', Modifiers: ModCtrl}))
	assert.True(t, e.HandleKey(KeyEvent{Rune: 'g', Modifiers: ModCtrl}))
	assert.Equal(t, []Command{CmdBold}, s.commands())
}

func TestPerform(t *testing.T) {
	s := newFakeSurface()
	e := New(s)

	for _, action := range Actions {
		assert.True(t, e.Perform(action), action)
	}
	assert.False(t, e.Perform(Action("nope")))
}
