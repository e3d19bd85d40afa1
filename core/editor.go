package core

// Position is a point inside the surface's content.
type Position struct {
	Block  int // Zero-indexed block (paragraph or heading)
	Offset int // Zero-indexed character offset inside the block
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Block != other.Block {
		return p.Block < other.Block
	}
	return p.Offset < other.Offset
}

// Selection is a span over the surface with an anchor and a focus point.
// The focus may come before the anchor when the user selects backwards.
type Selection struct {
	Anchor Position
	Focus  Position
}

// Caret returns a collapsed selection at p.
func Caret(p Position) Selection {
	return Selection{Anchor: p, Focus: p}
}

// IsCollapsed reports whether the selection is a bare caret.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Focus
}

// Normalize returns the selection bounds in document order.
func (s Selection) Normalize() (start, end Position) {
	if s.Focus.Before(s.Anchor) {
		return s.Focus, s.Anchor
	}
	return s.Anchor, s.Focus
}

// Surface is the live editable region the editor mediates. The editor only
// references it; whoever mounts the surface owns it.
type Surface interface {
	// Content access
	GetContent() string        // Serialized full content (tag-annotated markup)
	GetPlainText() string      // Text only, used for counting
	SetContent(content string) // Wholesale replace, used by undo/redo

	Focus()

	// Native editing
	ExecCommand(command Command, value string) error
	QueryCommandState(command Command) bool
	QueryCommandValue(command Command) string

	// Selection
	GetSelection() (Selection, bool)
	RemoveAllRanges()
	AddRange(selection Selection)
}

// State is a read-only view of the editing session at one point in time.
type State struct {
	Content        string      // Content recorded at the last change or undo/redo
	Formats        FormatFlags // Formats active at the selection as of the last sync
	Alignment      Alignment   // Alignment of the current block as of the last sync
	Heading        int         // 0 for a paragraph, 1..3 for headings
	WordCount      int
	CharCount      int
	ShowLinkDialog bool
	CanUndo        bool
	CanRedo        bool
}

// Editor is the editing session controller.
type Editor interface {
	// Surface lifecycle
	Attach(surface Surface)
	Detach()
	GetSurface() Surface
	IsAttached() bool

	GetState() State

	// Commands
	ExecuteCommand(command Command, value string)
	ToggleFormat(format FormatType)
	HandleAlignment(align Alignment)
	SetHeading(level int)
	ClearFormatting()
	Perform(action Action) bool
	HandleKey(key KeyEvent) bool

	// Resync
	UpdateFormatState()
	HandleContentChange()

	// History management
	Undo()
	Redo()
	SetMaxHistory(max int)
	History() *History

	// Selection
	SaveSelection()
	RestoreSelection()
	SavedSelection() (Selection, bool)

	// Link dialog
	HandleInsertLink()
	ConfirmLink(url string)
	CancelLink()
	SetShowLinkDialog(show bool)

	GetUpdateSignalChan() <-chan Signal
	DispatchError(id ErrorId, err error)
	DispatchMessage(args ...string)
	DispatchSignal(signal Signal)
}
