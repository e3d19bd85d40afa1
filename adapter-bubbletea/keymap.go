package adapter_bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the navigation and editing bindings the adapter handles
// itself. Formatting shortcuts are resolved by the core editor and only
// appear here so the help view can list them.
type KeyMap struct {
	Left            key.Binding
	Right           key.Binding
	Up              key.Binding
	Down            key.Binding
	WordLeft        key.Binding
	WordRight       key.Binding
	LineStart       key.Binding
	LineEnd         key.Binding
	DocumentStart   key.Binding
	DocumentEnd     key.Binding
	BlockUp         key.Binding
	BlockDown       key.Binding
	PageUp          key.Binding
	PageDown        key.Binding
	SelectLeft      key.Binding
	SelectRight     key.Binding
	SelectUp        key.Binding
	SelectDown      key.Binding
	SelectLineStart key.Binding
	SelectLineEnd   key.Binding
	SelectAll       key.Binding
	Newline         key.Binding
	Backspace       key.Binding
	Delete          key.Binding
	Paste           key.Binding
	ToggleSource    key.Binding
	CopyText        key.Binding
	CopyMarkup      key.Binding
	Help            key.Binding

	Bold            key.Binding
	Italic          key.Binding
	Underline       key.Binding
	Link            key.Binding
	Align           key.Binding
	Heading         key.Binding
	ClearFormatting key.Binding
	Undo            key.Binding
	Redo            key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:            key.NewBinding(key.WithKeys("left")),
		Right:           key.NewBinding(key.WithKeys("right")),
		Up:              key.NewBinding(key.WithKeys("up")),
		Down:            key.NewBinding(key.WithKeys("down")),
		WordLeft:        key.NewBinding(key.WithKeys("ctrl+left", "alt+left", "alt+b")),
		WordRight:       key.NewBinding(key.WithKeys("ctrl+right", "alt+right", "alt+f")),
		LineStart:       key.NewBinding(key.WithKeys("home")),
		LineEnd:         key.NewBinding(key.WithKeys("end")),
		DocumentStart:   key.NewBinding(key.WithKeys("ctrl+home")),
		DocumentEnd:     key.NewBinding(key.WithKeys("ctrl+end")),
		BlockUp:         key.NewBinding(key.WithKeys("ctrl+up", "alt+up")),
		BlockDown:       key.NewBinding(key.WithKeys("ctrl+down", "alt+down")),
		PageUp:          key.NewBinding(key.WithKeys("pgup")),
		PageDown:        key.NewBinding(key.WithKeys("pgdown")),
		SelectLeft:      key.NewBinding(key.WithKeys("shift+left")),
		SelectRight:     key.NewBinding(key.WithKeys("shift+right")),
		SelectUp:        key.NewBinding(key.WithKeys("shift+up")),
		SelectDown:      key.NewBinding(key.WithKeys("shift+down")),
		SelectLineStart: key.NewBinding(key.WithKeys("shift+home")),
		SelectLineEnd:   key.NewBinding(key.WithKeys("shift+end")),
		SelectAll:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Newline:         key.NewBinding(key.WithKeys("enter")),
		Backspace:       key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:          key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Paste:           key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		ToggleSource:    key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "source")),
		CopyText:        key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "copy text")),
		CopyMarkup:      key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "copy markup")),
		Help:            key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),

		Bold:            key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:          key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline:       key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "underline")),
		Link:            key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
		Align:           key.NewBinding(key.WithKeys("ctrl+l", "ctrl+e", "ctrl+r", "ctrl+j"), key.WithHelp("ctrl+l/e/r/j", "align")),
		Heading:         key.NewBinding(key.WithKeys("alt+0", "alt+1", "alt+2", "alt+3"), key.WithHelp("alt+0-3", "paragraph/heading")),
		ClearFormatting: key.NewBinding(key.WithKeys("ctrl+\\"), key.WithHelp("ctrl+\\", "clear formatting")),
		Undo:            key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:            key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Italic, k.Underline, k.Link, k.Undo, k.Redo, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Italic, k.Underline, k.ClearFormatting},
		{k.Align, k.Heading, k.Link},
		{k.Undo, k.Redo, k.SelectAll, k.Paste},
		{k.ToggleSource, k.CopyText, k.CopyMarkup, k.Help},
	}
}
