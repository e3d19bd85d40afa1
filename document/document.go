// Package document is an in-memory rich-text surface for core.Editor. It
// holds paragraphs and headings with per-block alignment and per-character
// inline styles, and runs the native commands the editor issues against them.
//
// Positions are character offsets within a block, counted in runes.
package document

import (
	"strings"

	"github.com/ionut-t/richedit/core"
)

// Attr is the inline style of a single character.
type Attr struct {
	Bold      bool
	Italic    bool
	Underline bool
	Link      string
}

func (a Attr) has(format core.FormatType) bool {
	switch format {
	case core.FormatBold:
		return a.Bold
	case core.FormatItalic:
		return a.Italic
	case core.FormatUnderline:
		return a.Underline
	}
	return false
}

func (a Attr) set(format core.FormatType, on bool) Attr {
	switch format {
	case core.FormatBold:
		a.Bold = on
	case core.FormatItalic:
		a.Italic = on
	case core.FormatUnderline:
		a.Underline = on
	}
	return a
}

// Char is one styled character.
type Char struct {
	Rune rune
	Attr Attr
}

// Block is a paragraph or heading.
type Block struct {
	Tag   string // p, h1, h2 or h3
	Align core.Alignment
	Chars []Char
}

func newBlock(tag string, align core.Alignment) Block {
	return Block{Tag: tag, Align: align}
}

// Text returns the characters of the block without styling.
func (b Block) Text() string {
	var sb strings.Builder
	for _, c := range b.Chars {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func (b Block) Len() int {
	return len(b.Chars)
}

// Level is the heading level, 0 for a paragraph.
func (b Block) Level() int {
	return core.HeadingLevel(b.Tag)
}

func (b Block) clone() Block {
	b.Chars = append([]Char(nil), b.Chars...)
	return b
}

// Run is a maximal span of characters sharing one Attr.
type Run struct {
	Text string
	Attr Attr
	// Start is the offset of the first character of the run in its block.
	Start int
}

// Runs groups the block characters into style runs.
func (b Block) Runs() []Run {
	var runs []Run
	var sb strings.Builder
	start := 0
	for i, c := range b.Chars {
		if i > 0 && c.Attr != b.Chars[i-1].Attr {
			runs = append(runs, Run{Text: sb.String(), Attr: b.Chars[i-1].Attr, Start: start})
			sb.Reset()
			start = i
		}
		sb.WriteRune(c.Rune)
	}
	if len(b.Chars) > 0 {
		runs = append(runs, Run{Text: sb.String(), Attr: b.Chars[len(b.Chars)-1].Attr, Start: start})
	}
	return runs
}

// Document implements core.Surface.
type Document struct {
	blocks []Block

	selection core.Selection
	hasSel    bool

	// typing holds the style toggled at a collapsed caret, applied to the
	// next inserted text.
	typing    Attr
	hasTyping bool

	focused bool
}

var _ core.Surface = (*Document)(nil)

// New returns a document holding one empty paragraph and no selection.
func New() *Document {
	return &Document{blocks: []Block{newBlock("p", core.AlignLeft)}}
}

// Parse returns a document built from markup.
func Parse(markup string) *Document {
	d := New()
	d.SetContent(markup)
	return d
}

// Blocks returns a copy of every block.
func (d *Document) Blocks() []Block {
	out := make([]Block, len(d.blocks))
	for i, b := range d.blocks {
		out[i] = b.clone()
	}
	return out
}

func (d *Document) BlockCount() int {
	return len(d.blocks)
}

// IsEmpty reports whether the document is a single empty paragraph.
func (d *Document) IsEmpty() bool {
	return len(d.blocks) == 1 && d.blocks[0].Len() == 0
}

func (d *Document) IsFocused() bool {
	return d.focused
}

// Blur drops focus without touching the selection.
func (d *Document) Blur() {
	d.focused = false
}

// Focus gives the document focus. Without a selection the caret is placed
// at the end of the content.
func (d *Document) Focus() {
	d.focused = true
	if !d.hasSel {
		d.setSelection(core.Caret(d.end()))
	}
}

// GetPlainText returns the text of every block, one per line.
func (d *Document) GetPlainText() string {
	lines := make([]string, len(d.blocks))
	for i, b := range d.blocks {
		lines[i] = b.Text()
	}
	return strings.Join(lines, "\n")
}

func (d *Document) GetSelection() (core.Selection, bool) {
	return d.selection, d.hasSel
}

func (d *Document) RemoveAllRanges() {
	d.selection = core.Selection{}
	d.hasSel = false
	d.hasTyping = false
}

// AddRange replaces the selection. Points outside the content are clamped.
func (d *Document) AddRange(selection core.Selection) {
	d.setSelection(core.Selection{
		Anchor: d.clamp(selection.Anchor),
		Focus:  d.clamp(selection.Focus),
	})
}

// SelectedText returns the selected characters, blocks joined by newlines.
func (d *Document) SelectedText() string {
	if !d.hasSel {
		return ""
	}
	start, end := d.selection.Normalize()

	var parts []string
	for b := start.Block; b <= end.Block; b++ {
		from, to := d.span(b, start, end)
		var sb strings.Builder
		for _, c := range d.blocks[b].Chars[from:to] {
			sb.WriteRune(c.Rune)
		}
		parts = append(parts, sb.String())
	}
	return strings.Join(parts, "\n")
}

func (d *Document) setSelection(selection core.Selection) {
	d.selection = selection
	d.hasSel = true
	d.hasTyping = false
}

func (d *Document) end() core.Position {
	last := len(d.blocks) - 1
	return core.Position{Block: last, Offset: d.blocks[last].Len()}
}

func (d *Document) clamp(p core.Position) core.Position {
	if p.Block < 0 {
		return core.Position{}
	}
	if p.Block >= len(d.blocks) {
		return d.end()
	}
	p.Offset = min(max(p.Offset, 0), d.blocks[p.Block].Len())
	return p
}

// span returns the character range of block b covered by [start, end).
func (d *Document) span(b int, start, end core.Position) (from, to int) {
	from, to = 0, d.blocks[b].Len()
	if b == start.Block {
		from = start.Offset
	}
	if b == end.Block {
		to = end.Offset
	}
	return from, to
}

// selectedBlocks returns the block indexes touched by the selection.
func (d *Document) selectedBlocks() (first, last int) {
	start, end := d.selection.Normalize()
	return start.Block, end.Block
}

// attrAt is the style text typed at p would get: that of the character
// before p, or after it at the start of a block.
func (d *Document) attrAt(p core.Position) Attr {
	chars := d.blocks[p.Block].Chars
	switch {
	case len(chars) == 0:
		return Attr{}
	case p.Offset > 0:
		return chars[p.Offset-1].Attr
	default:
		return chars[0].Attr
	}
}
