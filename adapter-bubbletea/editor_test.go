package adapter_bubbletea

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	editor "github.com/ionut-t/richedit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.content, c.err
}

func newTestModel(width, height int, opts ...editor.Option) (Model, *fakeClipboard) {
	clip := &fakeClipboard{}
	m := New(width, height, opts...)
	m.SetClipboard(clip)
	m.Focus()
	return m, clip
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func drainSignals(m Model) {
	ch := m.GetEditor().GetUpdateSignalChan()
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func TestUpdate_Typing(t *testing.T) {
	m, _ := newTestModel(80, 20)

	m = update(m, typed("hi"), keyOf(tea.KeyEnter), typed("there"), keyOf(tea.KeySpace))

	assert.Equal(t, "<p>hi</p><p>there </p>", m.GetContent())
	assert.Equal(t, 5, m.GetEditor().History().Len())

	state := m.GetEditor().GetState()
	assert.Equal(t, 2, state.WordCount)
	assert.True(t, state.CanUndo)
}

func TestUpdate_BackspaceAtStartRecordsNothing(t *testing.T) {
	m, _ := newTestModel(80, 20)

	m = update(m, keyOf(tea.KeyBackspace), keyOf(tea.KeyDelete))

	assert.Equal(t, 1, m.GetEditor().History().Len())
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m, _ := newTestModel(80, 20)
	m.Blur()

	m = update(m, typed("x"))

	assert.True(t, m.IsEmpty())
}

func TestUpdate_FormattingShortcut(t *testing.T) {
	m, _ := newTestModel(80, 20)

	m = update(m,
		typed("ab"),
		keyOf(tea.KeyShiftLeft),
		keyOf(tea.KeyShiftLeft),
		keyOf(tea.KeyCtrlB),
	)

	assert.Equal(t, "<p><b>ab</b></p>", m.GetContent())
	assert.True(t, m.GetEditor().GetState().Formats.Has(editor.FormatBold))
}

func TestUpdate_HeadingAndAlignmentShortcuts(t *testing.T) {
	m, _ := newTestModel(80, 20)

	m = update(m,
		typed("title"),
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true},
		keyOf(tea.KeyCtrlE),
	)

	assert.Equal(t, `<h1 style="text-align: center">title</h1>`, m.GetContent())
	state := m.GetEditor().GetState()
	assert.Equal(t, 1, state.Heading)
	assert.Equal(t, editor.AlignCenter, state.Alignment)
}

func TestUpdate_UndoRedo(t *testing.T) {
	m, _ := newTestModel(80, 20)

	m = update(m, typed("a"), keyOf(tea.KeyCtrlZ))
	assert.Equal(t, "", m.GetContent())

	_, ok := m.GetDocument().GetSelection()
	assert.True(t, ok, "caret is restored after undo")

	m = update(m, keyOf(tea.KeyCtrlY))
	assert.Equal(t, "<p>a</p>", m.GetContent())

	m = update(m, typed("b"))
	assert.Equal(t, "<p>ab</p>", m.GetContent())
}

func TestUpdate_LinkDialog(t *testing.T) {
	t.Run("confirm links the saved selection", func(t *testing.T) {
		m, _ := newTestModel(80, 20)
		m = update(m, typed("site"), keyOf(tea.KeyCtrlA), keyOf(tea.KeyCtrlK))

		require.True(t, m.linkDialog.Active())
		assert.True(t, m.GetEditor().GetState().ShowLinkDialog)
		_, hasSelection := m.GetDocument().GetSelection()
		assert.False(t, hasSelection, "the dialog takes the selection away")

		m = update(m, typed("https://x.io"), keyOf(tea.KeyEnter))

		assert.False(t, m.linkDialog.Active())
		assert.False(t, m.GetEditor().GetState().ShowLinkDialog)
		assert.Equal(t, `<p><a href="https://x.io">site</a></p>`, m.GetContent())
	})

	t.Run("cancel restores the caret and issues nothing", func(t *testing.T) {
		m, _ := newTestModel(80, 20)
		m = update(m, typed("site"), keyOf(tea.KeyCtrlA), keyOf(tea.KeyCtrlK))
		before := m.GetEditor().History().Len()

		m = update(m, typed("ignored"), keyOf(tea.KeyEsc))

		assert.False(t, m.linkDialog.Active())
		assert.Equal(t, "<p>site</p>", m.GetContent())
		assert.Equal(t, before, m.GetEditor().History().Len())

		selection, ok := m.GetDocument().GetSelection()
		require.True(t, ok)
		assert.Equal(t, editor.Selection{Focus: editor.Position{Offset: 4}}, selection)

		_, saved := m.GetEditor().SavedSelection()
		assert.False(t, saved)
	})

	t.Run("prefilled with the link under the caret", func(t *testing.T) {
		m, _ := newTestModel(80, 20, editor.WithInitialContent(`<p><a href="https://a.b">link</a></p>`))
		m = update(m, keyOf(tea.KeyCtrlA), keyOf(tea.KeyCtrlK))

		assert.Equal(t, "https://a.b", m.linkDialog.Value())

		m = update(m, keyOf(tea.KeyCtrlU), keyOf(tea.KeyEnter))
		assert.Equal(t, "<p>link</p>", m.GetContent(), "an empty url removes the link")
	})
}

func TestUpdate_ClipboardActions(t *testing.T) {
	m, clip := newTestModel(80, 20, editor.WithInitialContent("<p><b>bold</b> text</p>"))

	m = update(m, keyOf(tea.KeyF3))
	assert.Equal(t, "bold text", clip.content)
	assert.Equal(t, "Copied 9 characters", m.message)

	m = update(m, keyOf(tea.KeyF4))
	assert.Equal(t, "<p><b>bold</b> text</p>", clip.content)

	m = update(m, keyOf(tea.KeyShiftLeft), keyOf(tea.KeyShiftLeft), keyOf(tea.KeyF3))
	assert.Equal(t, "xt", clip.content)
}

func TestUpdate_ClipboardFailure(t *testing.T) {
	m, clip := newTestModel(80, 20)
	clip.err = errors.New("no clipboard")

	m = update(m, keyOf(tea.KeyF3))

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "no clipboard")
}

func TestUpdate_Paste(t *testing.T) {
	m, clip := newTestModel(80, 20)
	clip.content = "one\ntwo"

	m = update(m, keyOf(tea.KeyCtrlV))

	assert.Equal(t, "<p>one</p><p>two</p>", m.GetContent())
}

func TestUpdate_SourceView(t *testing.T) {
	m, _ := newTestModel(80, 20, editor.WithInitialContent("<h2>t</h2><p>x</p>"))

	m = update(m, keyOf(tea.KeyF2))
	require.True(t, m.IsSourceView())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "<h2>t</h2>")
	assert.Contains(t, view, "SOURCE")

	m = update(m, typed("zzz"))
	assert.Equal(t, "<h2>t</h2><p>x</p>", m.GetContent(), "source view is read-only")

	m = update(m, keyOf(tea.KeyF2))
	assert.False(t, m.IsSourceView())
}

func TestView_ToolbarAndStatusLine(t *testing.T) {
	m, _ := newTestModel(100, 10, editor.WithInitialContent("<p><b>one</b> two</p>"))
	m = update(m, keyOf(tea.KeyHome), keyOf(tea.KeyRight))

	view := ansi.Strip(m.View())

	assert.Contains(t, view, " B ")
	assert.Contains(t, view, " Undo ")
	assert.Contains(t, view, "one two")
	assert.Contains(t, view, "2 words  7 chars")
	assert.Contains(t, view, "{bold}")
}

func TestView_HiddenChrome(t *testing.T) {
	m, _ := newTestModel(80, 10)
	m.HideToolbar(true)
	m.HideStatusLine(true)

	view := ansi.Strip(m.View())

	assert.NotContains(t, view, " Undo ")
	assert.NotContains(t, view, "words")
	assert.Equal(t, 9, m.viewport.Height)
}

func TestView_Placeholder(t *testing.T) {
	m, _ := newTestModel(80, 10)
	m.SetPlaceholder("Start writing...")
	m = update(m, clearMsg{})

	assert.Contains(t, ansi.Strip(m.View()), "Start writing...")

	m = update(m, typed("x"))
	assert.NotContains(t, ansi.Strip(m.View()), "Start writing...")
}

func TestListenForEditorUpdate(t *testing.T) {
	m, _ := newTestModel(80, 10)
	drainSignals(m)

	m.GetEditor().DispatchError(editor.ErrCommandFailedId, errors.New("boom"))
	msg := m.listenForEditorUpdate()()

	signal, ok := msg.(editorSignalMsg)
	require.True(t, ok)
	errMsg, ok := signal.msg.(ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, editor.ErrCommandFailedId, errMsg.ID)

	m = update(m, msg)
	assert.Contains(t, ansi.Strip(m.View()), "boom")

	m = update(m, clearMsg{})
	assert.NotContains(t, ansi.Strip(m.View()), "boom")
}

func TestListenForEditorUpdate_ContentChange(t *testing.T) {
	m, _ := newTestModel(80, 10)
	drainSignals(m)

	m = update(m, typed("a"))
	msg := m.listenForEditorUpdate()()

	signal := msg.(editorSignalMsg)
	assert.Equal(t, ChangeMsg{Content: "<p>a</p>"}, signal.msg)
}

func TestConvertBubbleKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want editor.KeyEvent
	}{
		{"ctrl letter", keyOf(tea.KeyCtrlB), editor.KeyEvent{Rune: 'b', Modifiers: editor.ModCtrl}},
		{"ctrl j is not enter", keyOf(tea.KeyCtrlJ), editor.KeyEvent{Rune: 'j', Modifiers: editor.ModCtrl}},
		{"ctrl backslash", keyOf(tea.KeyCtrlBackslash), editor.KeyEvent{Rune: '\\', Modifiers: editor.ModCtrl}},
		{"alt digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true}, editor.KeyEvent{Rune: '2', Modifiers: editor.ModAlt}},
		{"plain rune", typed("x"), editor.KeyEvent{Rune: 'x'}},
		{"enter", keyOf(tea.KeyEnter), editor.KeyEvent{Key: editor.KeyEnter}},
		{"tab", keyOf(tea.KeyTab), editor.KeyEvent{Key: editor.KeyTab, Rune: '\t'}},
		{"page down", keyOf(tea.KeyPgDown), editor.KeyEvent{Key: editor.KeyPageDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertBubbleKey(tt.msg))
		})
	}
}

func TestSetContent_RecordsHistory(t *testing.T) {
	m, _ := newTestModel(80, 10)

	m.SetContent("<p>loaded</p>")

	assert.Equal(t, "<p>loaded</p>", m.GetContent())
	assert.Equal(t, []string{"", "<p>loaded</p>"}, m.GetEditor().History().Entries())
	assert.Equal(t, "loaded", strings.TrimSpace(m.GetPlainText()))
}
