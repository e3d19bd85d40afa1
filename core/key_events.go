package core

import (
	"fmt"
	"strings"
)

// KeyCode represents non-character keys
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyDelete
)

// KeyModifiers represents modifier keys held during a keystroke
type KeyModifiers uint8

const (
	ModNone KeyModifiers = 0
	ModCtrl KeyModifiers = 1 << iota
	ModAlt
	ModShift
)

// KeyEvent represents a keyboard input event
type KeyEvent struct {
	Rune      rune
	Key       KeyCode
	Modifiers KeyModifiers
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyUnknown:   "Unknown",
}

// String renders the key as e.g. "Ctrl+b" or "Shift+Left".
func (k KeyEvent) String() string {
	var parts []string

	if k.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if k.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if k.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}

	if k.Rune != 0 {
		parts = append(parts, string(k.Rune))
	} else if name, ok := keyNames[k.Key]; ok {
		parts = append(parts, name)
	} else {
		parts = append(parts, fmt.Sprintf("SpecialKey(%d)", k.Key))
	}

	return strings.Join(parts, "+")
}

func ctrl(r rune) KeyEvent { return KeyEvent{Rune: r, Modifiers: ModCtrl} }
func alt(r rune) KeyEvent  { return KeyEvent{Rune: r, Modifiers: ModAlt} }

// DefaultShortcuts maps keys to editor actions.
var DefaultShortcuts = map[KeyEvent]Action{
	ctrl('b'):  ActionBold,
	ctrl('i'):  ActionItalic,
	alt('i'):   ActionItalic, // Ctrl+I arrives as Tab in most terminals
	ctrl('u'):  ActionUnderline,
	ctrl('z'):  ActionUndo,
	ctrl('y'):  ActionRedo,
	ctrl('k'):  ActionInsertLink,
	ctrl('l'):  ActionAlignLeft,
	ctrl('e'):  ActionAlignCenter,
	ctrl('r'):  ActionAlignRight,
	ctrl('j'):  ActionAlignJustify,
	ctrl('\\'): ActionClearFormatting,
	alt('0'):   ActionParagraph,
	alt('1'):   ActionHeading1,
	alt('2'):   ActionHeading2,
	alt('3'):   ActionHeading3,
}

// normalizeKey folds case for letter shortcuts so Ctrl+B and Ctrl+b match.
func normalizeKey(key KeyEvent) KeyEvent {
	if key.Rune >= 'A' && key.Rune <= 'Z' && key.Modifiers&(ModCtrl|ModAlt) != 0 {
		key.Rune += 'a' - 'A'
		key.Modifiers &^= ModShift
	}
	return key
}

// HandleKey runs the action bound to key. It reports false when key is not a
// shortcut, leaving it to the surface as ordinary input.
func (e *editor) HandleKey(key KeyEvent) bool {
	action, ok := e.shortcuts[normalizeKey(key)]
	if !ok {
		return false
	}
	return e.Perform(action)
}
