package adapter_bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ionut-t/richedit/adapter-bubbletea/highlighter"
	editor "github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/document"
)

type cursorBlinkMsg struct{}
type cursorBlinkCanceledMsg struct{}
type resumeBlinkCycleMsg struct{}

type CursorMode int

const (
	CursorSteady CursorMode = iota
	CursorBlink
)

const cursorBlinkInterval = 500 * time.Millisecond
const cursorActivityResetDelay = 250 * time.Millisecond

const defaultMessageDuration = 3 * time.Second

const DefaultSourceTheme = "dracula"

type cursorBlinkContext struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Clipboard is the system clipboard as seen by the editor.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

type Model struct {
	editor                  editor.Editor
	doc                     *document.Document
	viewport                viewport.Model
	linkDialog              *LinkDialog
	keyMap                  KeyMap
	help                    help.Model
	clipboard               Clipboard
	width                   int
	height                  int
	wrapWidth               int
	showToolbar             bool
	showStatusLine          bool
	showHelp                bool
	sourceView              bool
	theme                   Theme
	StatusLineFunc          func() string
	err                     error
	message                 string
	messageDuration         time.Duration
	isFocused               bool
	placeholder             string
	cursorMode              CursorMode
	cursorVisible           bool
	cursorBlinkContext      *cursorBlinkContext
	clearMsgCancel          context.CancelFunc
	highlighter             *highlighter.Highlighter
	highlighterTheme        string
	blocks                  []document.Block
	clusters                [][]cluster
	visualLayoutCache       []VisualLineInfo // Visual lines of the whole document
	fullVisualLayoutHeight  int
	cursorAbsoluteVisualRow int // Row of the caret in the full visual layout
	currentVisualTopLine    int
	goalColumn              int // Column kept across vertical moves, -1 when unset
}

type ErrorMsg struct {
	ID    editor.ErrorId
	Error error
}

type ChangeMsg struct {
	Content string
}

type UndoMsg struct {
	ContentBefore string
}

type RedoMsg struct {
	ContentBefore string
}

type FormatStateMsg struct {
	Formats   editor.FormatFlags
	Alignment editor.Alignment
}

type LinkDialogMsg struct {
	Open bool
}

type StatusMsg struct {
	ID      string
	Message string
}

type CopyMsg struct {
	Content string
}

// editorSignalMsg wraps a message converted from an editor signal so the
// listener is only re-armed after it fired.
type editorSignalMsg struct {
	msg tea.Msg
}

type clearMsg struct{}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

// New creates an editor model backed by an in-memory document. Options are
// passed to the core editor, use editor.WithInitialContent to load a
// document.
func New(width, height int, opts ...editor.Option) Model {
	doc := document.New()
	vp := viewport.New(width, height)

	m := Model{
		editor:           editor.New(doc, opts...),
		doc:              doc,
		viewport:         vp,
		linkDialog:       NewLinkDialog(),
		keyMap:           DefaultKeyMap(),
		help:             help.New(),
		clipboard:        &clipboardImpl{},
		showToolbar:      true,
		showStatusLine:   true,
		theme:            DefaultTheme,
		messageDuration:  defaultMessageDuration,
		cursorMode:       CursorSteady,
		cursorVisible:    true,
		highlighter:      highlighter.New("html", DefaultSourceTheme),
		highlighterTheme: DefaultSourceTheme,
		goalColumn:       -1,
		cursorBlinkContext: &cursorBlinkContext{
			ctx: context.Background(),
		},
	}

	m.SetSize(width, height)

	return m
}

func (m *Model) chromeHeight() int {
	h := 1 // command line
	if m.showHelp {
		h = max(1, lipgloss.Height(m.help.View(m.keyMap)))
	}
	if m.showToolbar {
		h++
	}
	if m.showStatusLine {
		h++
	}
	return h
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(1, height-m.chromeHeight())
	m.linkDialog.SetWidth(min(60, width-4))

	m.calculateVisualMetrics()
	m.updateVisualTopLine()
	m.renderVisibleSlice()
}

// SetContent replaces the document with the given markup. The change is
// recorded in the undo history.
func (m *Model) SetContent(content string) {
	m.doc.SetContent(content)
	if m.isFocused {
		m.doc.Focus()
	}
	m.editor.HandleContentChange()
	m.editor.UpdateFormatState()
	m.handleContentChange()
}

// GetContent returns the current document as markup.
func (m *Model) GetContent() string {
	return m.doc.GetContent()
}

// GetPlainText returns the text of the document, one block per line.
func (m *Model) GetPlainText() string {
	return m.doc.GetPlainText()
}

// IsEmpty checks if the document holds no text.
func (m *Model) IsEmpty() bool {
	return m.doc.IsEmpty()
}

// GetEditor returns the underlying editor instance
func (m *Model) GetEditor() editor.Editor {
	return m.editor
}

// GetDocument returns the surface the editor is attached to.
func (m *Model) GetDocument() *document.Document {
	return m.doc
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// WithKeyMap replaces the navigation and editing bindings.
// Formatting shortcuts are configured on the core editor with editor.WithShortcuts.
func (m *Model) WithKeyMap(keyMap KeyMap) {
	m.keyMap = keyMap
}

// SetSourceTheme sets the Chroma theme used by the markup source view.
//
// For a full list of available themes, see: https://github.com/alecthomas/chroma/blob/master/styles
// An empty theme disables highlighting of the source view.
func (m *Model) SetSourceTheme(theme string) {
	if m.highlighterTheme == theme && m.highlighter != nil {
		return
	}

	m.highlighterTheme = theme
	if theme == "" {
		m.highlighter = nil
		return
	}
	m.highlighter = highlighter.New("html", theme)
}

// SetClipboard replaces the system clipboard, mostly useful for tests and
// for terminals where the system clipboard is unavailable.
func (m *Model) SetClipboard(clipboard Clipboard) {
	m.clipboard = clipboard
}

// SetWrapWidth limits the width text is wrapped at.
// Zero wraps at the viewport width.
func (m *Model) SetWrapWidth(width int) {
	m.wrapWidth = max(0, width)
}

// SetMessageDuration sets how long status messages and errors stay visible.
func (m *Model) SetMessageDuration(duration time.Duration) {
	if duration > 0 {
		m.messageDuration = duration
	}
}

// DispatchMessage allows setting a message to be displayed in the command line for a specified duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

// DispatchError allows setting an error to be displayed in the command line for a specified duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

// HideStatusLine controls whether to show the status line at the bottom of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// HideToolbar controls whether to show the formatting toolbar above the document.
func (m *Model) HideToolbar(hide bool) {
	m.showToolbar = !hide
	m.SetSize(m.width, m.height)
}

// ShowSource switches between the rendered document and its markup.
// The source view is read-only.
func (m *Model) ShowSource(show bool) {
	m.sourceView = show
	m.viewport.YOffset = 0
}

func (m *Model) IsSourceView() bool {
	return m.sourceView
}

// Focus sets the editor to focused state.
// The document gets a caret at the end if it has no selection yet.
func (m *Model) Focus() {
	m.isFocused = true
	m.cursorVisible = true
	m.doc.Focus()
}

// Blur sets the editor to unfocused state.
func (m *Model) Blur() {
	m.isFocused = false
	m.doc.Blur()
}

// IsFocused returns whether the editor is currently focused.
func (m *Model) IsFocused() bool {
	return m.isFocused
}

// SetPlaceholder sets the placeholder text shown while the document is empty.
func (m *Model) SetPlaceholder(placeholder string) {
	m.placeholder = placeholder
}

// SetCursorMode sets the cursor mode for the editor.
// It can be either CursorSteady or CursorBlink.
func (m *Model) SetCursorMode(mode CursorMode) {
	m.cursorMode = mode
	m.cursorVisible = m.isFocused
}

// SetMaxHistory sets the maximum number of history entries for undo/redo.
// If set to 0, the history is unbounded.
// The default value is 1000.
// If the number of history entries exceeds this limit, the oldest entries will be removed.
func (m *Model) SetMaxHistory(max int) {
	m.editor.SetMaxHistory(max)
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.IsFocused() {
			break
		}

		cmds = append(cmds, m.handleKey(msg))

		m.cursorVisible = true
		if m.cursorBlinkContext != nil && m.cursorBlinkContext.cancel != nil {
			m.cursorBlinkContext.cancel()
		}

		if m.cursorMode == CursorBlink {
			cmds = append(cmds, m.restartBlinkCycleCmd())
		}

	case editorSignalMsg:
		inner := msg.msg
		cmds = append(cmds,
			m.handleSignal(inner),
			m.listenForEditorUpdate(),
			func() tea.Msg { return inner },
		)

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil

	case cursorBlinkMsg:
		if m.isFocused && m.cursorMode == CursorBlink {
			m.cursorVisible = !m.cursorVisible
			cmds = append(cmds, m.CursorBlink())
		} else {
			m.cursorVisible = m.isFocused
		}

	case resumeBlinkCycleMsg:
		if m.isFocused && m.cursorMode == CursorBlink {
			m.cursorVisible = true
			cmds = append(cmds, m.CursorBlink())
		}
	}

	m.calculateVisualMetrics()
	m.updateVisualTopLine()
	m.renderVisibleSlice()

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.linkDialog.Active() {
		result, cmd := m.linkDialog.Update(msg)
		switch result {
		case LinkDialogConfirmed:
			m.editor.ConfirmLink(m.linkDialog.Value())
		case LinkDialogCancelled:
			// put the caret back where the dialog was opened
			m.editor.RestoreSelection()
			m.editor.CancelLink()
		}
		return tea.Batch(cmd, m.syncLinkDialog())
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.SetSize(m.width, m.height)
		return nil

	case key.Matches(msg, m.keyMap.ToggleSource):
		m.ShowSource(!m.sourceView)
		return nil

	case key.Matches(msg, m.keyMap.CopyText):
		text := m.doc.SelectedText()
		if text == "" {
			text = m.doc.GetPlainText()
		}
		return m.copyToClipboard(text)

	case key.Matches(msg, m.keyMap.CopyMarkup):
		return m.copyToClipboard(m.doc.GetContent())
	}

	if m.sourceView {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	if m.editor.HandleKey(convertBubbleKey(msg)) {
		m.goalColumn = -1
		// undo and redo replace the content and drop the selection
		if _, ok := m.doc.GetSelection(); !ok {
			m.doc.Focus()
			m.editor.UpdateFormatState()
		}
		m.handleContentChange()
		return m.syncLinkDialog()
	}

	vertical := false
	switch {
	case key.Matches(msg, m.keyMap.Left):
		m.doc.MoveLeft(false)
	case key.Matches(msg, m.keyMap.Right):
		m.doc.MoveRight(false)
	case key.Matches(msg, m.keyMap.SelectLeft):
		m.doc.MoveLeft(true)
	case key.Matches(msg, m.keyMap.SelectRight):
		m.doc.MoveRight(true)
	case key.Matches(msg, m.keyMap.WordLeft):
		m.doc.MoveWordLeft(false)
	case key.Matches(msg, m.keyMap.WordRight):
		m.doc.MoveWordRight(false)
	case key.Matches(msg, m.keyMap.Up):
		m.moveVisual(-1, false)
		vertical = true
	case key.Matches(msg, m.keyMap.Down):
		m.moveVisual(1, false)
		vertical = true
	case key.Matches(msg, m.keyMap.SelectUp):
		m.moveVisual(-1, true)
		vertical = true
	case key.Matches(msg, m.keyMap.SelectDown):
		m.moveVisual(1, true)
		vertical = true
	case key.Matches(msg, m.keyMap.PageUp):
		m.moveVisual(-m.viewport.Height, false)
		vertical = true
	case key.Matches(msg, m.keyMap.PageDown):
		m.moveVisual(m.viewport.Height, false)
		vertical = true
	case key.Matches(msg, m.keyMap.BlockUp):
		m.doc.MoveBlock(-1, false)
	case key.Matches(msg, m.keyMap.BlockDown):
		m.doc.MoveBlock(1, false)
	case key.Matches(msg, m.keyMap.LineStart):
		m.doc.MoveLineStart(false)
	case key.Matches(msg, m.keyMap.LineEnd):
		m.doc.MoveLineEnd(false)
	case key.Matches(msg, m.keyMap.SelectLineStart):
		m.doc.MoveLineStart(true)
	case key.Matches(msg, m.keyMap.SelectLineEnd):
		m.doc.MoveLineEnd(true)
	case key.Matches(msg, m.keyMap.DocumentStart):
		m.doc.MoveDocumentStart(false)
	case key.Matches(msg, m.keyMap.DocumentEnd):
		m.doc.MoveDocumentEnd(false)
	case key.Matches(msg, m.keyMap.SelectAll):
		if err := m.doc.ExecCommand(editor.CmdSelectAll, ""); err != nil {
			m.editor.DispatchError(editor.ErrCommandFailedId, err)
		}

	case key.Matches(msg, m.keyMap.Newline):
		return m.edit(editor.CmdInsertParagraph, "")
	case key.Matches(msg, m.keyMap.Backspace):
		return m.edit(editor.CmdDelete, "")
	case key.Matches(msg, m.keyMap.Delete):
		return m.edit(editor.CmdForwardDelete, "")
	case key.Matches(msg, m.keyMap.Paste):
		return m.pasteFromClipboard()
	case msg.Type == tea.KeySpace:
		return m.edit(editor.CmdInsertText, " ")
	case msg.Type == tea.KeyTab:
		return m.edit(editor.CmdInsertText, "\t")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		return m.edit(editor.CmdInsertText, string(msg.Runes))

	default:
		return nil
	}

	if !vertical {
		m.goalColumn = -1
	}
	m.editor.UpdateFormatState()

	return nil
}

// edit runs a typing command on the document the way native input would and
// then lets the editor record the result.
func (m *Model) edit(command editor.Command, value string) tea.Cmd {
	m.goalColumn = -1
	if _, ok := m.doc.GetSelection(); !ok {
		m.doc.Focus()
	}

	before := m.doc.GetContent()
	if err := m.doc.ExecCommand(command, value); err != nil {
		m.editor.DispatchError(editor.ErrCommandFailedId, err)
		return nil
	}

	if m.doc.GetContent() != before {
		m.editor.HandleContentChange()
		m.handleContentChange()
	}
	m.editor.UpdateFormatState()

	return nil
}

func (m *Model) copyToClipboard(content string) tea.Cmd {
	if err := m.clipboard.Write(content); err != nil {
		return m.DispatchError(fmt.Errorf("copy failed: %w", err), m.messageDuration)
	}

	return tea.Batch(
		m.DispatchMessage(fmt.Sprintf("Copied %d characters", editor.CountCharacters(content)), m.messageDuration),
		func() tea.Msg { return CopyMsg{Content: content} },
	)
}

func (m *Model) pasteFromClipboard() tea.Cmd {
	content, err := m.clipboard.Read()
	if err != nil {
		return m.DispatchError(fmt.Errorf("paste failed: %w", err), m.messageDuration)
	}
	if content == "" {
		return nil
	}
	return m.edit(editor.CmdInsertText, content)
}

// syncLinkDialog opens or closes the dialog to match the editor state. While
// the dialog is open the document loses its selection, which is why the
// editor saves it first.
func (m *Model) syncLinkDialog() tea.Cmd {
	open := m.editor.GetState().ShowLinkDialog

	switch {
	case open && !m.linkDialog.Active():
		initial := m.doc.QueryCommandValue(editor.CmdCreateLink)
		m.doc.Blur()
		m.doc.RemoveAllRanges()
		return m.linkDialog.Show(initial)

	case !open && m.linkDialog.Active():
		m.linkDialog.Hide()
		if m.isFocused {
			m.doc.Focus()
		}
		m.handleContentChange()
	}

	return nil
}

func (m *Model) handleSignal(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ErrorMsg:
		return m.DispatchError(msg.Error, m.messageDuration)

	case StatusMsg:
		return m.DispatchMessage(msg.Message, m.messageDuration)

	case LinkDialogMsg:
		return m.syncLinkDialog()

	case ChangeMsg, UndoMsg, RedoMsg:
		m.handleContentChange()
	}

	return nil
}

func (m Model) View() string {
	state := m.editor.GetState()

	body := m.viewport.View()
	if m.linkDialog.Active() {
		body = lipgloss.Place(
			m.viewport.Width,
			m.viewport.Height,
			lipgloss.Center,
			lipgloss.Center,
			m.linkDialog.View(m.theme),
		)
	}

	var parts []string
	if m.showToolbar {
		parts = append(parts, m.renderToolbar(state))
	}
	parts = append(parts, body)
	if m.showStatusLine {
		parts = append(parts, m.getStatusLine(state))
	}
	parts = append(parts, m.getCommandLine())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) getCommandLine() string {
	var commandLine string

	switch {
	case m.err != nil:
		commandLine = m.theme.ErrorStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.err.Error())
	case m.message != "":
		commandLine = m.theme.MessageStyle.
			Background(m.theme.CommandLineStyle.GetBackground()).
			Render(m.message)
	default:
		return m.help.View(m.keyMap)
	}

	paddingWidth := m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}

	return commandLine
}

func (m *Model) getStatusLine(state editor.State) string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	block := " P "
	if state.Heading > 0 {
		block = fmt.Sprintf(" H%d ", state.Heading)
	}
	if m.sourceView {
		block = " SOURCE "
	}
	statusLine := m.theme.StatusBlockStyle.Render(block)

	details := " " + string(state.Alignment)
	if !state.Formats.IsEmpty() {
		details += " " + state.Formats.String()
	}

	counts := fmt.Sprintf("%s words  %s chars ",
		humanize.Comma(int64(state.WordCount)), humanize.Comma(int64(state.CharCount)))

	gapWidth := m.width - (lipgloss.Width(statusLine) + lipgloss.Width(details) + lipgloss.Width(counts))
	gap := strings.Repeat(" ", max(0, gapWidth))

	statusLine += m.theme.StatusLineStyle.Render(details + gap + counts)

	return statusLine
}

func (m *Model) listenForEditorUpdate() tea.Cmd {
	editorChan := m.editor.GetUpdateSignalChan()

	return func() tea.Msg {
		signal := <-editorChan

		switch signal := signal.(type) {
		case editor.ErrorSignal:
			id, err := signal.Value()
			return editorSignalMsg{ErrorMsg{ID: id, Error: err}}

		case editor.MessageSignal:
			id, message := signal.Value()
			return editorSignalMsg{StatusMsg{ID: id, Message: message}}

		case editor.ContentChangedSignal:
			return editorSignalMsg{ChangeMsg{Content: signal.Value()}}

		case editor.UndoSignal:
			return editorSignalMsg{UndoMsg{ContentBefore: signal.Value()}}

		case editor.RedoSignal:
			return editorSignalMsg{RedoMsg{ContentBefore: signal.Value()}}

		case editor.FormatStateSignal:
			formats, alignment := signal.Value()
			return editorSignalMsg{FormatStateMsg{Formats: formats, Alignment: alignment}}

		case editor.LinkDialogSignal:
			return editorSignalMsg{LinkDialogMsg{Open: signal.Value()}}
		}

		return editorSignalMsg{}
	}
}

// Convert Bubbletea key to editor.Key
func convertBubbleKey(msg tea.KeyMsg) editor.KeyEvent {
	key := editor.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyHome:
		key.Key = editor.KeyHome
	case tea.KeyEnd:
		key.Key = editor.KeyEnd
	case tea.KeyDelete:
		key.Key = editor.KeyDelete
	case tea.KeyPgUp:
		key.Key = editor.KeyPageUp
	case tea.KeyPgDown:
		key.Key = editor.KeyPageDown
	case tea.KeyCtrlBackslash:
		key.Rune = '\\'
		key.Modifiers |= editor.ModCtrl
	default:
		// Control characters arrive as their own key types, ctrl+a is 1.
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			key.Rune = 'a' + rune(msg.Type-tea.KeyCtrlA)
			key.Modifiers |= editor.ModCtrl
		}
	}

	return key
}

// CursorBlink is the main command for the blinking cursor effect (toggling visibility)
func (m *Model) CursorBlink() tea.Cmd {
	if m.cursorMode != CursorBlink || !m.isFocused {
		m.cursorVisible = m.isFocused
		return nil
	}

	if m.cursorBlinkContext != nil && m.cursorBlinkContext.cancel != nil {
		m.cursorBlinkContext.cancel()
	}

	ctx, cancel := context.WithTimeout(m.cursorBlinkContext.ctx, cursorBlinkInterval)
	m.cursorBlinkContext.cancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return cursorBlinkMsg{}
		}
		return cursorBlinkCanceledMsg{}
	}
}

// restartBlinkCycleCmd is used after user activity to delay the resumption of blinking.
func (m *Model) restartBlinkCycleCmd() tea.Cmd {
	if m.cursorMode != CursorBlink || !m.isFocused {
		m.cursorVisible = m.isFocused
		return nil
	}

	return tea.Tick(cursorActivityResetDelay, func(t time.Time) tea.Msg {
		return resumeBlinkCycleMsg{}
	})
}
