package core

import (
	"fmt"
	"strings"

	"github.com/ionut-t/richedit/internal/logger"
)

// Option configures an editor at construction.
type Option func(*editor)

// WithMaxHistory bounds the number of snapshots kept; 0 means unbounded.
func WithMaxHistory(max int) Option {
	return func(e *editor) {
		e.history.SetMax(max)
	}
}

// WithSanitizer installs the function applied to every snapshot before undo
// or redo writes it back to the surface.
func WithSanitizer(sanitize Sanitizer) Option {
	return func(e *editor) {
		if sanitize != nil {
			e.sanitize = sanitize
		}
	}
}

// WithOnChange registers a callback invoked with the content after every
// recorded change and after every undo or redo.
func WithOnChange(fn func(content string)) Option {
	return func(e *editor) {
		e.onChange = fn
	}
}

// WithInitialContent writes content to the surface when it is first
// attached and records it as the second history entry.
func WithInitialContent(content string) Option {
	return func(e *editor) {
		e.initialContent = content
		e.initialPending = content != ""
	}
}

// WithShortcuts replaces the key bindings used by HandleKey.
func WithShortcuts(shortcuts map[KeyEvent]Action) Option {
	return func(e *editor) {
		e.shortcuts = make(map[KeyEvent]Action, len(shortcuts))
		for k, a := range shortcuts {
			e.shortcuts[normalizeKey(k)] = a
		}
	}
}

type editor struct {
	surface Surface

	content   string
	formats   FormatFlags
	alignment Alignment
	heading   int

	history *History

	savedSelection Selection
	hasSaved       bool

	showLinkDialog bool

	initialContent string
	initialPending bool

	sanitize  Sanitizer
	onChange  func(content string)
	shortcuts map[KeyEvent]Action

	updateSignal chan Signal
}

// New creates an editor. surface may be nil and attached later.
func New(surface Surface, opts ...Option) Editor {
	e := &editor{
		alignment:    AlignLeft,
		history:      NewHistory(DefaultMaxHistory),
		sanitize:     SanitizeHTML,
		shortcuts:    DefaultShortcuts,
		updateSignal: make(chan Signal, 100),
	}

	for _, opt := range opts {
		opt(e)
	}

	if surface != nil {
		e.Attach(surface)
	}

	return e
}

func (e *editor) Attach(surface Surface) {
	e.surface = surface
	if surface == nil {
		return
	}

	if e.initialPending {
		e.initialPending = false
		surface.SetContent(e.initialContent)
		e.HandleContentChange()
	}

	e.UpdateFormatState()
}

// Detach drops the surface reference. History and cached state survive.
func (e *editor) Detach() {
	e.surface = nil
}

func (e *editor) GetSurface() Surface {
	return e.surface
}

func (e *editor) IsAttached() bool {
	return e.surface != nil
}

func (e *editor) GetState() State {
	var text string
	if e.surface != nil {
		text = e.surface.GetPlainText()
	} else {
		text = StripHTML(e.content)
	}

	return State{
		Content:        e.content,
		Formats:        e.formats,
		Alignment:      e.alignment,
		Heading:        e.heading,
		WordCount:      CountWords(text),
		CharCount:      CountCharacters(text),
		ShowLinkDialog: e.showLinkDialog,
		CanUndo:        e.history.CanUndo(),
		CanRedo:        e.history.CanRedo(),
	}
}

func (e *editor) GetUpdateSignalChan() <-chan Signal {
	return e.updateSignal
}

func (e *editor) History() *History {
	return e.history
}

func (e *editor) SetMaxHistory(max int) {
	e.history.SetMax(max)
}

// applyCommand focuses the surface, runs the native command and records the
// result. A failing command is reported but its effect, if any, is recorded.
func (e *editor) applyCommand(command Command, value string) bool {
	if e.surface == nil {
		logger.Debugf("Editor: %s ignored, %v", command, ErrSurfaceUnavailable)
		return false
	}

	e.surface.Focus()
	if err := e.surface.ExecCommand(command, value); err != nil {
		e.DispatchError(ErrCommandFailedId, fmt.Errorf("%s: %w", command, err))
	}
	e.HandleContentChange()

	return true
}

// ExecuteCommand applies command, records the new content and resyncs the
// format state, in that order.
func (e *editor) ExecuteCommand(command Command, value string) {
	if !e.applyCommand(command, value) {
		return
	}
	e.UpdateFormatState()
}

// ToggleFormat flips format optimistically, then resyncs from the surface.
// The resync result is the one retained.
func (e *editor) ToggleFormat(format FormatType) {
	command, ok := FormatCommand(format)
	if !ok {
		e.DispatchError(ErrUnknownFormatId, fmt.Errorf("%w: %s", ErrUnknownFormat, format))
		return
	}

	if !e.applyCommand(command, "") {
		return
	}
	e.formats = e.formats.Toggle(format)
	e.UpdateFormatState()
}

// HandleAlignment applies align and sets it directly without a resync of the
// alignment value.
func (e *editor) HandleAlignment(align Alignment) {
	command, ok := AlignmentCommand(align)
	if !ok {
		e.DispatchError(ErrUnknownAlignmentId, fmt.Errorf("%w: %s", ErrUnknownAlignment, align))
		return
	}

	if e.surface == nil {
		return
	}
	e.ExecuteCommand(command, "")
	e.alignment = align
	e.DispatchSignal(FormatStateSignal{e.formats, e.alignment})
}

// SetHeading converts the current block to a heading of level, or to a plain
// paragraph for level 0.
func (e *editor) SetHeading(level int) {
	tag, err := HeadingTag(level)
	if err != nil {
		e.DispatchError(ErrInvalidHeadingLevelId, err)
		return
	}
	e.ExecuteCommand(CmdFormatBlock, "<"+tag+">")
}

// ClearFormatting removes inline formats and converts the block to a
// paragraph. The cached state is reset whatever the surface reports.
func (e *editor) ClearFormatting() {
	if e.surface == nil {
		return
	}

	e.ExecuteCommand(CmdRemoveFormat, "")
	e.ExecuteCommand(CmdFormatBlock, "<p>")

	e.formats = 0
	e.alignment = AlignLeft
	e.heading = 0
	e.DispatchSignal(FormatStateSignal{e.formats, e.alignment})
	e.DispatchMessage(FormattingClearedMessage)
}

// UpdateFormatState rebuilds the cached formats, alignment and heading from
// the surface. Alignment priority is center, right, justify, then left.
func (e *editor) UpdateFormatState() {
	if e.surface == nil {
		return
	}

	var formats FormatFlags
	for _, format := range Formats {
		command, _ := FormatCommand(format)
		if e.surface.QueryCommandState(command) {
			formats = formats.With(format)
		}
	}

	alignment := AlignLeft
	for _, align := range []Alignment{AlignCenter, AlignRight, AlignJustify} {
		command, _ := AlignmentCommand(align)
		if e.surface.QueryCommandState(command) {
			alignment = align
			break
		}
	}

	e.formats = formats
	e.alignment = alignment
	e.heading = HeadingLevel(e.surface.QueryCommandValue(CmdFormatBlock))

	e.DispatchSignal(FormatStateSignal{e.formats, e.alignment})
}

// HandleContentChange records the surface content as a new snapshot,
// discarding any redoable entries.
func (e *editor) HandleContentChange() {
	if e.surface == nil {
		return
	}

	e.content = e.surface.GetContent()
	e.history.Record(e.content)

	e.DispatchSignal(ContentChangedSignal{e.content})
	e.notifyChange()
}

func (e *editor) notifyChange() {
	if e.onChange != nil {
		e.onChange(e.content)
	}
}

func (e *editor) Undo() {
	if e.surface == nil {
		return
	}

	before := e.content
	content, err := e.history.Undo()
	if err != nil {
		logger.Debugf("Editor: %v", err)
		return
	}
	e.apply(content)

	e.DispatchSignal(UndoSignal{before})
	e.notifyChange()
}

func (e *editor) Redo() {
	if e.surface == nil {
		return
	}

	before := e.content
	content, err := e.history.Redo()
	if err != nil {
		logger.Debugf("Editor: %v", err)
		return
	}
	e.apply(content)

	e.DispatchSignal(RedoSignal{before})
	e.notifyChange()
}

func (e *editor) apply(content string) {
	e.surface.SetContent(e.sanitize(content))
	e.content = content
}

// SaveSelection stores the active selection. Without one the previous save
// is kept.
func (e *editor) SaveSelection() {
	if e.surface == nil {
		return
	}

	selection, ok := e.surface.GetSelection()
	if !ok {
		return
	}
	e.savedSelection = selection
	e.hasSaved = true
}

// RestoreSelection makes the saved selection the only active one. The save is
// kept, so it may be restored again.
func (e *editor) RestoreSelection() {
	if e.surface == nil || !e.hasSaved {
		return
	}

	e.surface.RemoveAllRanges()
	e.surface.AddRange(e.savedSelection)
}

func (e *editor) SavedSelection() (Selection, bool) {
	return e.savedSelection, e.hasSaved
}

// HandleInsertLink saves the selection and opens the link dialog.
func (e *editor) HandleInsertLink() {
	e.SaveSelection()
	e.SetShowLinkDialog(true)
}

// ConfirmLink restores the saved selection and links it to url. An empty url
// removes the link instead. The dialog is closed either way.
func (e *editor) ConfirmLink(url string) {
	url = strings.TrimSpace(url)

	e.RestoreSelection()
	if e.surface != nil {
		if url == "" {
			e.ExecuteCommand(CmdUnlink, "")
			e.DispatchMessage(LinkRemovedMessage)
		} else {
			e.ExecuteCommand(CmdCreateLink, url)
			e.DispatchMessage(LinkInsertedMessage)
		}
	}

	e.SetShowLinkDialog(false)
}

// CancelLink closes the dialog without issuing a command and discards the
// saved selection.
func (e *editor) CancelLink() {
	e.savedSelection = Selection{}
	e.hasSaved = false
	e.SetShowLinkDialog(false)
}

func (e *editor) SetShowLinkDialog(show bool) {
	e.showLinkDialog = show
	e.DispatchSignal(LinkDialogSignal{show})
}
