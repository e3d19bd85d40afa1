package document

import (
	"unicode"

	"github.com/ionut-t/richedit/core"
	"github.com/rivo/uniseg"
)

// boundaries returns the offsets of every grapheme cluster boundary in
// chars, 0 and len(chars) included.
func boundaries(chars []Char) []int {
	runes := make([]rune, len(chars))
	for i, c := range chars {
		runes[i] = c.Rune
	}

	out := []int{0}
	offset := 0
	g := uniseg.NewGraphemes(string(runes))
	for g.Next() {
		offset += len(g.Runes())
		out = append(out, offset)
	}
	return out
}

func prevBoundary(chars []Char, offset int) int {
	prev := 0
	for _, b := range boundaries(chars) {
		if b >= offset {
			break
		}
		prev = b
	}
	return prev
}

func nextBoundary(chars []Char, offset int) int {
	for _, b := range boundaries(chars) {
		if b > offset {
			return b
		}
	}
	return len(chars)
}

// moveTo places the focus at p. With extend the anchor stays put, otherwise
// the selection collapses to p.
func (d *Document) moveTo(p core.Position, extend bool) {
	p = d.clamp(p)
	if extend && d.hasSel {
		d.setSelection(core.Selection{Anchor: d.selection.Anchor, Focus: p})
		return
	}
	d.setSelection(core.Caret(p))
}

// MoveLeft moves the caret one character back, crossing into the previous
// block at offset 0. A non-collapsed selection collapses to its start.
func (d *Document) MoveLeft(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	if !extend && !d.selection.IsCollapsed() {
		start, _ := d.selection.Normalize()
		d.moveTo(start, false)
		return
	}

	p := d.caret()
	switch {
	case p.Offset > 0:
		p.Offset = prevBoundary(d.blocks[p.Block].Chars, p.Offset)
	case p.Block > 0:
		p = core.Position{Block: p.Block - 1, Offset: d.blocks[p.Block-1].Len()}
	}
	d.moveTo(p, extend)
}

// MoveRight is the mirror of MoveLeft.
func (d *Document) MoveRight(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	if !extend && !d.selection.IsCollapsed() {
		_, end := d.selection.Normalize()
		d.moveTo(end, false)
		return
	}

	p := d.caret()
	chars := d.blocks[p.Block].Chars
	switch {
	case p.Offset < len(chars):
		p.Offset = nextBoundary(chars, p.Offset)
	case p.Block < len(d.blocks)-1:
		p = core.Position{Block: p.Block + 1}
	}
	d.moveTo(p, extend)
}

// MoveWordLeft moves to the start of the previous word.
func (d *Document) MoveWordLeft(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	p := d.caret()
	if p.Offset == 0 {
		d.MoveLeft(extend)
		return
	}

	chars := d.blocks[p.Block].Chars
	i := p.Offset
	for i > 0 && !isWordRune(chars[i-1].Rune) {
		i--
	}
	for i > 0 && isWordRune(chars[i-1].Rune) {
		i--
	}
	d.moveTo(core.Position{Block: p.Block, Offset: i}, extend)
}

// MoveWordRight moves past the end of the next word.
func (d *Document) MoveWordRight(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	p := d.caret()
	chars := d.blocks[p.Block].Chars
	if p.Offset == len(chars) {
		d.MoveRight(extend)
		return
	}

	i := p.Offset
	for i < len(chars) && !isWordRune(chars[i].Rune) {
		i++
	}
	for i < len(chars) && isWordRune(chars[i].Rune) {
		i++
	}
	d.moveTo(core.Position{Block: p.Block, Offset: i}, extend)
}

// MoveTo moves the caret to an arbitrary point, such as one picked by a
// renderer mapping screen rows back to offsets.
func (d *Document) MoveTo(p core.Position, extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	d.moveTo(p, extend)
}

// MoveBlock moves the caret delta blocks up or down, keeping the offset
// where the target block is long enough.
func (d *Document) MoveBlock(delta int, extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	p := d.caret()
	target := p.Block + delta
	switch {
	case target < 0:
		p = core.Position{}
	case target >= len(d.blocks):
		p = d.end()
	default:
		p = d.clamp(core.Position{Block: target, Offset: p.Offset})
	}
	d.moveTo(p, extend)
}

func (d *Document) MoveLineStart(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	d.moveTo(core.Position{Block: d.caret().Block}, extend)
}

func (d *Document) MoveLineEnd(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	b := d.caret().Block
	d.moveTo(core.Position{Block: b, Offset: d.blocks[b].Len()}, extend)
}

func (d *Document) MoveDocumentStart(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	d.moveTo(core.Position{}, extend)
}

func (d *Document) MoveDocumentEnd(extend bool) {
	if !d.hasSel {
		d.Focus()
	}
	d.moveTo(d.end(), extend)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
