package core

import "github.com/ionut-t/richedit/internal/logger"

// Action is a named toolbar or shortcut operation.
type Action string

const (
	ActionBold            Action = "bold"
	ActionItalic          Action = "italic"
	ActionUnderline       Action = "underline"
	ActionAlignLeft       Action = "align-left"
	ActionAlignCenter     Action = "align-center"
	ActionAlignRight      Action = "align-right"
	ActionAlignJustify    Action = "align-justify"
	ActionParagraph       Action = "paragraph"
	ActionHeading1        Action = "heading-1"
	ActionHeading2        Action = "heading-2"
	ActionHeading3        Action = "heading-3"
	ActionInsertLink      Action = "insert-link"
	ActionClearFormatting Action = "clear-formatting"
	ActionUndo            Action = "undo"
	ActionRedo            Action = "redo"
)

// Actions lists every action in toolbar order.
var Actions = []Action{
	ActionBold, ActionItalic, ActionUnderline,
	ActionAlignLeft, ActionAlignCenter, ActionAlignRight, ActionAlignJustify,
	ActionParagraph, ActionHeading1, ActionHeading2, ActionHeading3,
	ActionInsertLink, ActionClearFormatting,
	ActionUndo, ActionRedo,
}

type actionFunc func(e *editor)

var actionTable = map[Action]actionFunc{
	ActionBold:            func(e *editor) { e.ToggleFormat(FormatBold) },
	ActionItalic:          func(e *editor) { e.ToggleFormat(FormatItalic) },
	ActionUnderline:       func(e *editor) { e.ToggleFormat(FormatUnderline) },
	ActionAlignLeft:       func(e *editor) { e.HandleAlignment(AlignLeft) },
	ActionAlignCenter:     func(e *editor) { e.HandleAlignment(AlignCenter) },
	ActionAlignRight:      func(e *editor) { e.HandleAlignment(AlignRight) },
	ActionAlignJustify:    func(e *editor) { e.HandleAlignment(AlignJustify) },
	ActionParagraph:       func(e *editor) { e.SetHeading(0) },
	ActionHeading1:        func(e *editor) { e.SetHeading(1) },
	ActionHeading2:        func(e *editor) { e.SetHeading(2) },
	ActionHeading3:        func(e *editor) { e.SetHeading(3) },
	ActionInsertLink:      func(e *editor) { e.HandleInsertLink() },
	ActionClearFormatting: func(e *editor) { e.ClearFormatting() },
	ActionUndo:            func(e *editor) { e.Undo() },
	ActionRedo:            func(e *editor) { e.Redo() },
}

// Perform runs a named action and reports whether it is known.
func (e *editor) Perform(action Action) bool {
	fn, ok := actionTable[action]
	if !ok {
		logger.Debugf("Editor: unknown action %q", action)
		return false
	}
	fn(e)
	return true
}
