package core

import (
	"fmt"
	"strings"
)

// Command is the name of a native edit operation understood by a Surface.
type Command string

const (
	CmdBold          Command = "bold"
	CmdItalic        Command = "italic"
	CmdUnderline     Command = "underline"
	CmdJustifyLeft   Command = "justifyLeft"
	CmdJustifyCenter Command = "justifyCenter"
	CmdJustifyRight  Command = "justifyRight"
	CmdJustifyFull   Command = "justifyFull"
	CmdCreateLink    Command = "createLink"
	CmdUnlink        Command = "unlink"
	CmdRemoveFormat  Command = "removeFormat"
	CmdFormatBlock   Command = "formatBlock"

	// Typing commands. The editor never issues these itself; they are what a
	// surface runs for native input before notifying HandleContentChange.
	CmdInsertText      Command = "insertText"
	CmdInsertParagraph Command = "insertParagraph"
	CmdDelete          Command = "delete"
	CmdForwardDelete   Command = "forwardDelete"
	CmdSelectAll       Command = "selectAll"
)

// FormatType is an inline format that can be toggled.
type FormatType string

const (
	FormatBold      FormatType = "bold"
	FormatItalic    FormatType = "italic"
	FormatUnderline FormatType = "underline"
)

// Formats lists every supported inline format in toolbar order.
var Formats = []FormatType{FormatBold, FormatItalic, FormatUnderline}

// Alignment is the horizontal alignment of a block. Exactly one holds at a time.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Alignments lists every alignment in toolbar order.
var Alignments = []Alignment{AlignLeft, AlignCenter, AlignRight, AlignJustify}

// MaxHeadingLevel is the deepest heading the editor offers.
const MaxHeadingLevel = 3

var formatCommands = map[FormatType]Command{
	FormatBold:      CmdBold,
	FormatItalic:    CmdItalic,
	FormatUnderline: CmdUnderline,
}

var alignmentCommands = map[Alignment]Command{
	AlignLeft:    CmdJustifyLeft,
	AlignCenter:  CmdJustifyCenter,
	AlignRight:   CmdJustifyRight,
	AlignJustify: CmdJustifyFull,
}

// FormatCommand returns the native command that toggles format.
func FormatCommand(format FormatType) (Command, bool) {
	cmd, ok := formatCommands[format]
	return cmd, ok
}

// AlignmentCommand returns the native command that applies align.
func AlignmentCommand(align Alignment) (Command, bool) {
	cmd, ok := alignmentCommands[align]
	return cmd, ok
}

// HeadingTag returns the block tag for a heading level, "p" for level 0.
func HeadingTag(level int) (string, error) {
	if level < 0 || level > MaxHeadingLevel {
		return "", fmt.Errorf("%w: %d", ErrInvalidHeadingLevel, level)
	}
	if level == 0 {
		return "p", nil
	}
	return fmt.Sprintf("h%d", level), nil
}

// HeadingLevel parses a block tag such as "h2" or "<h2>" back into a level.
// Anything that is not h1..h3 is a paragraph.
func HeadingLevel(tag string) int {
	tag = strings.ToLower(strings.Trim(strings.TrimSpace(tag), "<>"))
	if len(tag) != 2 || tag[0] != 'h' {
		return 0
	}
	level := int(tag[1] - '0')
	if level < 1 || level > MaxHeadingLevel {
		return 0
	}
	return level
}
