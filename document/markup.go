package document

import (
	"html"
	"strings"

	"github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/internal/logger"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetContent serializes the document to tag-annotated markup. A lone empty
// paragraph serializes to "", the content of a fresh surface.
func (d *Document) GetContent() string {
	if d.IsEmpty() && d.blocks[0].Tag == "p" && d.blocks[0].Align == core.AlignLeft {
		return ""
	}

	var sb strings.Builder
	for _, b := range d.blocks {
		sb.WriteString(b.Markup())
	}
	return sb.String()
}

// Markup serializes a single block.
func (b Block) Markup() string {
	var sb strings.Builder
	sb.WriteString("<" + b.Tag)
	if b.Align != "" && b.Align != core.AlignLeft {
		sb.WriteString(` style="text-align: ` + string(b.Align) + `"`)
	}
	sb.WriteString(">")

	for _, run := range b.Runs() {
		var closers []string
		open := func(tag, attrs string) {
			sb.WriteString("<" + tag + attrs + ">")
			closers = append(closers, "</"+tag+">")
		}

		if run.Attr.Link != "" {
			open("a", ` href="`+html.EscapeString(run.Attr.Link)+`"`)
		}
		if run.Attr.Bold {
			open("b", "")
		}
		if run.Attr.Italic {
			open("i", "")
		}
		if run.Attr.Underline {
			open("u", "")
		}
		sb.WriteString(html.EscapeString(run.Text))
		for i := len(closers) - 1; i >= 0; i-- {
			sb.WriteString(closers[i])
		}
	}

	sb.WriteString("</" + b.Tag + ">")
	return sb.String()
}

// SetContent replaces the whole document with parsed markup and drops the
// selection.
func (d *Document) SetContent(content string) {
	d.blocks = parseMarkup(content)
	d.RemoveAllRanges()
}

type blockContext struct {
	tag   string
	align core.Alignment
}

type parser struct {
	blocks []Block
	open   bool
	stack  []blockContext
}

func parseMarkup(markup string) []Block {
	context := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		logger.Warnf("Document: failed to parse markup: %v", err)
		b := newBlock("p", core.AlignLeft)
		for _, r := range core.StripHTML(markup) {
			b.Chars = append(b.Chars, Char{Rune: r})
		}
		return []Block{b}
	}

	p := &parser{}
	for _, n := range nodes {
		p.walk(n, Attr{})
	}
	p.closeBlock()

	if len(p.blocks) == 0 {
		p.blocks = append(p.blocks, newBlock("p", core.AlignLeft))
	}
	return p.blocks
}

func (p *parser) context() blockContext {
	if len(p.stack) == 0 {
		return blockContext{tag: "p", align: core.AlignLeft}
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) ensureBlock() *Block {
	if !p.open {
		ctx := p.context()
		p.blocks = append(p.blocks, newBlock(ctx.tag, ctx.align))
		p.open = true
	}
	return &p.blocks[len(p.blocks)-1]
}

func (p *parser) closeBlock() {
	p.open = false
}

func (p *parser) walk(n *xhtml.Node, attr Attr) {
	switch n.Type {
	case xhtml.TextNode:
		p.text(n.Data, attr)
		return
	case xhtml.ElementNode:
	default:
		p.children(n, attr)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Title:
		return
	case atom.Br:
		p.closeBlock()
		return
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Li, atom.Blockquote, atom.Pre:
		p.block(n, attr)
		return
	case atom.B, atom.Strong:
		attr.Bold = true
	case atom.I, atom.Em:
		attr.Italic = true
	case atom.U, atom.Ins:
		attr.Underline = true
	case atom.A:
		if href := attrValue(n, "href"); href != "" {
			attr.Link = href
		}
	}
	attr = styleAttr(attrValue(n, "style"), attr)
	p.children(n, attr)
}

func (p *parser) children(n *xhtml.Node, attr Attr) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, attr)
	}
}

func (p *parser) block(n *xhtml.Node, attr Attr) {
	p.closeBlock()

	ctx := blockContext{tag: blockTag(n.DataAtom), align: p.context().align}
	if align, ok := alignmentValue(n); ok {
		ctx.align = align
	}
	if ctx.tag == "" {
		ctx.tag = p.context().tag
	}

	before := len(p.blocks)
	p.stack = append(p.stack, ctx)
	p.children(n, styleAttr(attrValue(n, "style"), attr))
	p.stack = p.stack[:len(p.stack)-1]
	p.closeBlock()

	// An element with no text still occupies a line.
	if len(p.blocks) == before {
		p.blocks = append(p.blocks, newBlock(ctx.tag, ctx.align))
	}
}

func (p *parser) text(data string, attr Attr) {
	// Source formatting: newlines and indentation collapse to single spaces.
	if strings.ContainsAny(data, "\n\r") {
		data = collapseSpace(data)
		if !p.open || p.blocks[len(p.blocks)-1].Len() == 0 {
			data = strings.TrimLeft(data, " ")
		}
	}
	if data == "" {
		return
	}
	// Whitespace between top-level blocks is layout, inside a block it is text.
	if len(p.stack) == 0 && !p.open && strings.TrimSpace(data) == "" {
		return
	}

	b := p.ensureBlock()
	for _, r := range data {
		switch r {
		case '\t', '\u00a0':
			r = ' '
		}
		b.Chars = append(b.Chars, Char{Rune: r, Attr: attr})
	}
}

func collapseSpace(s string) string {
	var sb strings.Builder
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				sb.WriteByte(' ')
			}
			space = true
		default:
			sb.WriteRune(r)
			space = false
		}
	}
	return sb.String()
}

func blockTag(a atom.Atom) string {
	switch a {
	case atom.H1:
		return "h1"
	case atom.H2:
		return "h2"
	case atom.H3, atom.H4, atom.H5, atom.H6:
		return "h3"
	case atom.Div:
		return ""
	}
	return "p"
}

func attrValue(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func styleDeclarations(style string) map[string]string {
	out := map[string]string{}
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func alignmentValue(n *xhtml.Node) (core.Alignment, bool) {
	value := styleDeclarations(attrValue(n, "style"))["text-align"]
	if value == "" {
		value = strings.ToLower(attrValue(n, "align"))
	}
	for _, align := range core.Alignments {
		if value == string(align) {
			return align, true
		}
	}
	return "", false
}

// styleAttr applies inline CSS formatting found on spans and similar.
func styleAttr(style string, attr Attr) Attr {
	if style == "" {
		return attr
	}
	decls := styleDeclarations(style)
	switch decls["font-weight"] {
	case "bold", "bolder", "600", "700", "800", "900":
		attr.Bold = true
	}
	if decls["font-style"] == "italic" {
		attr.Italic = true
	}
	if strings.Contains(decls["text-decoration"], "underline") ||
		strings.Contains(decls["text-decoration-line"], "underline") {
		attr.Underline = true
	}
	return attr
}
