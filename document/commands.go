package document

import (
	"fmt"
	"strings"

	"github.com/ionut-t/richedit/core"
)

var (
	formatByCommand    = map[core.Command]core.FormatType{}
	alignmentByCommand = map[core.Command]core.Alignment{}
)

func init() {
	for _, format := range core.Formats {
		command, _ := core.FormatCommand(format)
		formatByCommand[command] = format
	}
	for _, align := range core.Alignments {
		command, _ := core.AlignmentCommand(align)
		alignmentByCommand[command] = align
	}
}

// ExecCommand runs a native edit command against the selection.
func (d *Document) ExecCommand(command core.Command, value string) error {
	if command == core.CmdSelectAll {
		d.selectAll()
		return nil
	}
	if !d.hasSel {
		return fmt.Errorf("%s: %w", command, core.ErrInvalidSelection)
	}

	if format, ok := formatByCommand[command]; ok {
		d.toggle(format)
		return nil
	}
	if align, ok := alignmentByCommand[command]; ok {
		d.align(align)
		return nil
	}

	switch command {
	case core.CmdCreateLink:
		return d.createLink(value)
	case core.CmdUnlink:
		d.unlink()
	case core.CmdRemoveFormat:
		d.removeFormat()
	case core.CmdFormatBlock:
		return d.formatBlock(value)
	case core.CmdInsertText:
		d.insertText(value)
	case core.CmdInsertParagraph:
		d.deleteSelection()
		d.splitBlock()
	case core.CmdDelete:
		d.deleteBackward()
	case core.CmdForwardDelete:
		d.deleteForward()
	default:
		return fmt.Errorf("%w: %s", core.ErrUnsupportedCommand, command)
	}
	return nil
}

// QueryCommandState reports whether a format holds over the whole selection,
// or whether the first selected block has an alignment.
func (d *Document) QueryCommandState(command core.Command) bool {
	if !d.hasSel {
		return false
	}
	if format, ok := formatByCommand[command]; ok {
		if d.selection.IsCollapsed() {
			return d.typingAttr().has(format)
		}
		return d.allHave(format)
	}
	if align, ok := alignmentByCommand[command]; ok {
		first, _ := d.selectedBlocks()
		return d.blocks[first].Align == align
	}
	return false
}

// QueryCommandValue returns the tag of the first selected block for
// formatBlock and the link target at the selection for createLink.
func (d *Document) QueryCommandValue(command core.Command) string {
	if !d.hasSel {
		return ""
	}
	start, _ := d.selection.Normalize()

	switch command {
	case core.CmdFormatBlock:
		return d.blocks[start.Block].Tag
	case core.CmdCreateLink:
		if d.selection.IsCollapsed() {
			return d.linkAround(start)
		}
		chars := d.blocks[start.Block].Chars
		if start.Offset < len(chars) {
			return chars[start.Offset].Attr.Link
		}
	}
	return ""
}

func (d *Document) caret() core.Position {
	return d.selection.Focus
}

// typingAttr is the style the next typed character gets.
func (d *Document) typingAttr() Attr {
	if d.hasTyping {
		return d.typing
	}
	p := d.caret()
	attr := d.attrAt(p)
	if attr.Link != "" && d.linkAround(p) == "" {
		attr.Link = ""
	}
	return attr
}

// linkAround returns the link p sits strictly inside of, if any.
func (d *Document) linkAround(p core.Position) string {
	chars := d.blocks[p.Block].Chars
	if p.Offset <= 0 || p.Offset >= len(chars) {
		return ""
	}
	if link := chars[p.Offset-1].Attr.Link; link != "" && chars[p.Offset].Attr.Link == link {
		return link
	}
	return ""
}

func (d *Document) eachSelected(fn func(c *Char)) {
	start, end := d.selection.Normalize()
	for b := start.Block; b <= end.Block; b++ {
		from, to := d.span(b, start, end)
		for i := from; i < to; i++ {
			fn(&d.blocks[b].Chars[i])
		}
	}
}

func (d *Document) allHave(format core.FormatType) bool {
	seen, all := false, true
	d.eachSelected(func(c *Char) {
		seen = true
		all = all && c.Attr.has(format)
	})
	return seen && all
}

func (d *Document) toggle(format core.FormatType) {
	if d.selection.IsCollapsed() {
		attr := d.typingAttr()
		d.typing = attr.set(format, !attr.has(format))
		d.hasTyping = true
		return
	}

	on := !d.allHave(format)
	d.eachSelected(func(c *Char) {
		c.Attr = c.Attr.set(format, on)
	})
}

func (d *Document) align(align core.Alignment) {
	first, last := d.selectedBlocks()
	for b := first; b <= last; b++ {
		d.blocks[b].Align = align
	}
}

func (d *Document) createLink(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty link", core.ErrUnsupportedValue)
	}

	if !d.selection.IsCollapsed() {
		d.eachSelected(func(c *Char) {
			c.Attr.Link = url
		})
		return nil
	}

	// A bare caret gets the url itself as the link text, selected.
	start := d.caret()
	attr := d.typingAttr()
	attr.Link = url
	d.insertRunes([]rune(url), attr)
	d.setSelection(core.Selection{Anchor: start, Focus: d.caret()})
	return nil
}

func (d *Document) unlink() {
	d.hasTyping = false
	if !d.selection.IsCollapsed() {
		d.eachSelected(func(c *Char) {
			c.Attr.Link = ""
		})
		return
	}

	p := d.caret()
	chars := d.blocks[p.Block].Chars
	link := ""
	switch {
	case p.Offset > 0 && chars[p.Offset-1].Attr.Link != "":
		link = chars[p.Offset-1].Attr.Link
	case p.Offset < len(chars) && chars[p.Offset].Attr.Link != "":
		link = chars[p.Offset].Attr.Link
	default:
		return
	}

	from := p.Offset
	for from > 0 && chars[from-1].Attr.Link == link {
		from--
	}
	to := p.Offset
	for to < len(chars) && chars[to].Attr.Link == link {
		to++
	}
	for i := from; i < to; i++ {
		chars[i].Attr.Link = ""
	}
}

// removeFormat drops bold, italic and underline. Links are kept.
func (d *Document) removeFormat() {
	if d.selection.IsCollapsed() {
		d.typing = Attr{Link: d.typingAttr().Link}
		d.hasTyping = true
		return
	}
	d.eachSelected(func(c *Char) {
		c.Attr = Attr{Link: c.Attr.Link}
	})
}

func (d *Document) formatBlock(value string) error {
	tag := strings.ToLower(strings.Trim(strings.TrimSpace(value), "<>"))
	if tag != "p" && core.HeadingLevel(tag) == 0 {
		return fmt.Errorf("%w: formatBlock %q", core.ErrUnsupportedValue, value)
	}

	first, last := d.selectedBlocks()
	for b := first; b <= last; b++ {
		d.blocks[b].Tag = tag
	}
	return nil
}

func (d *Document) insertText(text string) {
	d.deleteSelection()
	attr := d.typingAttr()

	var pending []rune
	flush := func() {
		if len(pending) > 0 {
			d.insertRunes(pending, attr)
			pending = pending[:0]
		}
	}
	for _, r := range text {
		switch r {
		case '\r':
		case '\n':
			flush()
			d.splitBlock()
		case '\t':
			pending = append(pending, ' ')
		default:
			pending = append(pending, r)
		}
	}
	flush()
}

// insertRunes inserts runes at the caret and moves the caret past them.
func (d *Document) insertRunes(runes []rune, attr Attr) {
	p := d.caret()
	block := &d.blocks[p.Block]

	chars := make([]Char, 0, len(block.Chars)+len(runes))
	chars = append(chars, block.Chars[:p.Offset]...)
	for _, r := range runes {
		chars = append(chars, Char{Rune: r, Attr: attr})
	}
	chars = append(chars, block.Chars[p.Offset:]...)
	block.Chars = chars

	d.setSelection(core.Caret(core.Position{Block: p.Block, Offset: p.Offset + len(runes)}))
}

// splitBlock breaks the caret block in two. Splitting at the end of a
// heading starts a paragraph.
func (d *Document) splitBlock() {
	p := d.caret()
	b := d.blocks[p.Block]

	left := b
	left.Chars = append([]Char(nil), b.Chars[:p.Offset]...)
	right := newBlock(b.Tag, b.Align)
	right.Chars = append([]Char(nil), b.Chars[p.Offset:]...)
	if len(right.Chars) == 0 && b.Level() > 0 {
		right.Tag = "p"
	}

	blocks := make([]Block, 0, len(d.blocks)+1)
	blocks = append(blocks, d.blocks[:p.Block]...)
	blocks = append(blocks, left, right)
	blocks = append(blocks, d.blocks[p.Block+1:]...)
	d.blocks = blocks

	d.setSelection(core.Caret(core.Position{Block: p.Block + 1}))
}

// deleteSelection removes the selected characters, merging the end block
// into the start block. It reports whether anything was selected.
func (d *Document) deleteSelection() bool {
	if d.selection.IsCollapsed() {
		return false
	}
	start, end := d.selection.Normalize()

	chars := append([]Char(nil), d.blocks[start.Block].Chars[:start.Offset]...)
	chars = append(chars, d.blocks[end.Block].Chars[end.Offset:]...)
	d.blocks[start.Block].Chars = chars
	d.blocks = append(d.blocks[:start.Block+1], d.blocks[end.Block+1:]...)

	d.setSelection(core.Caret(start))
	return true
}

// mergeNext appends the block after b to b, keeping b's tag and alignment.
func (d *Document) mergeNext(b int) {
	d.blocks[b].Chars = append(d.blocks[b].Chars, d.blocks[b+1].Chars...)
	d.blocks = append(d.blocks[:b+1], d.blocks[b+2:]...)
}

func (d *Document) deleteBackward() {
	if d.deleteSelection() {
		return
	}

	p := d.caret()
	switch {
	case p.Offset > 0:
		from := prevBoundary(d.blocks[p.Block].Chars, p.Offset)
		d.removeChars(p.Block, from, p.Offset)
		d.setSelection(core.Caret(core.Position{Block: p.Block, Offset: from}))
	case p.Block > 0:
		joint := core.Position{Block: p.Block - 1, Offset: d.blocks[p.Block-1].Len()}
		d.mergeNext(p.Block - 1)
		d.setSelection(core.Caret(joint))
	}
}

func (d *Document) deleteForward() {
	if d.deleteSelection() {
		return
	}

	p := d.caret()
	chars := d.blocks[p.Block].Chars
	switch {
	case p.Offset < len(chars):
		d.removeChars(p.Block, p.Offset, nextBoundary(chars, p.Offset))
		d.setSelection(core.Caret(p))
	case p.Block < len(d.blocks)-1:
		d.mergeNext(p.Block)
		d.setSelection(core.Caret(p))
	}
}

func (d *Document) removeChars(b, from, to int) {
	chars := d.blocks[b].Chars
	d.blocks[b].Chars = append(append([]Char(nil), chars[:from]...), chars[to:]...)
}

func (d *Document) selectAll() {
	d.setSelection(core.Selection{Anchor: core.Position{}, Focus: d.end()})
}
