package adapter_bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/document"
	"github.com/rivo/uniseg"
)

// VisualLineInfo is one screen row of a wrapped block. Start and End are
// character offsets into the block.
type VisualLineInfo struct {
	Block int
	Start int
	End   int
	Width int
	Last  bool // last row of its block
}

// cluster is a grapheme cluster of a block, the unit the layout never splits.
type cluster struct {
	start int
	end   int
	width int
	text  string
}

func blockClusters(b document.Block) []cluster {
	var out []cluster
	offset := 0
	g := uniseg.NewGraphemes(b.Text())
	for g.Next() {
		n := len(g.Runes())
		out = append(out, cluster{
			start: offset,
			end:   offset + n,
			width: g.Width(),
			text:  g.Str(),
		})
		offset += n
	}
	return out
}

func clustersWidth(cs []cluster) int {
	w := 0
	for _, c := range cs {
		w += c.width
	}
	return w
}

// layoutBlock wraps a block at width, breaking after spaces where possible.
// Trailing spaces hang off the end of a row instead of starting the next.
func layoutBlock(index int, cs []cluster, width int) []VisualLineInfo {
	if len(cs) == 0 {
		return []VisualLineInfo{{Block: index, Last: true}}
	}

	var lines []VisualLineInfo
	start := 0
	lineWidth := 0
	breakAt := -1

	for i, c := range cs {
		if width > 0 && i > start && c.text != " " && lineWidth+c.width > width {
			cut := i
			if breakAt > start {
				cut = breakAt
			}
			lines = append(lines, VisualLineInfo{
				Block: index,
				Start: cs[start].start,
				End:   cs[cut].start,
				Width: clustersWidth(cs[start:cut]),
			})
			start = cut
			lineWidth = clustersWidth(cs[start:i])
			breakAt = -1

			// the carried word is itself too long
			if i > start && lineWidth+c.width > width {
				lines = append(lines, VisualLineInfo{
					Block: index,
					Start: cs[start].start,
					End:   c.start,
					Width: lineWidth,
				})
				start = i
				lineWidth = 0
			}
		}

		lineWidth += c.width
		if c.text == " " {
			breakAt = i + 1
		}
	}

	return append(lines, VisualLineInfo{
		Block: index,
		Start: cs[start].start,
		End:   cs[len(cs)-1].end,
		Width: clustersWidth(cs[start:]),
		Last:  true,
	})
}

// availableWidth is the width text wraps at. One column is kept free for
// the caret at the end of a row.
func (m *Model) availableWidth() int {
	width := m.viewport.Width - 1
	if m.wrapWidth > 0 {
		width = min(width, m.wrapWidth)
	}
	return max(1, width)
}

// calculateVisualMetrics lays out the whole document and locates the caret.
func (m *Model) calculateVisualMetrics() {
	width := m.availableWidth()

	m.blocks = m.doc.Blocks()
	m.clusters = make([][]cluster, len(m.blocks))
	m.visualLayoutCache = m.visualLayoutCache[:0]

	for i, b := range m.blocks {
		m.clusters[i] = blockClusters(b)
		m.visualLayoutCache = append(m.visualLayoutCache, layoutBlock(i, m.clusters[i], width)...)
	}

	m.fullVisualLayoutHeight = len(m.visualLayoutCache)
	m.cursorAbsoluteVisualRow = 0

	selection, ok := m.doc.GetSelection()
	if !ok {
		return
	}
	if row, found := m.rowOf(selection.Focus); found {
		m.cursorAbsoluteVisualRow = row
	}
}

// rowOf returns the visual row holding p. An offset at the end of a wrapped
// row belongs to the start of the next one.
func (m *Model) rowOf(p editor.Position) (int, bool) {
	for row, line := range m.visualLayoutCache {
		if line.Block != p.Block {
			continue
		}
		if p.Offset >= line.Start && p.Offset < line.End || p.Offset == line.End && line.Last {
			return row, true
		}
	}
	return 0, false
}

// leftPadding is the number of columns a row is shifted right by its
// block alignment.
func (m *Model) leftPadding(line VisualLineInfo) int {
	free := m.availableWidth() - line.Width
	if free <= 0 {
		return 0
	}

	switch m.blocks[line.Block].Align {
	case editor.AlignCenter:
		return free / 2
	case editor.AlignRight:
		return free
	}
	return 0
}

// justifySpaces returns the extra columns each space of a justified row
// receives, keyed by character offset. The last row of a block is not
// stretched.
func (m *Model) justifySpaces(line VisualLineInfo) map[int]int {
	if line.Last || m.blocks[line.Block].Align != editor.AlignJustify {
		return nil
	}

	var spaces []int
	trailing := true
	cs := m.lineClusters(line)
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].text != " " {
			trailing = false
			continue
		}
		if !trailing {
			spaces = append(spaces, cs[i].start)
		}
	}

	extra := m.availableWidth() - line.Width
	if len(spaces) == 0 || extra <= 0 {
		return nil
	}

	out := make(map[int]int, len(spaces))
	for i, offset := range spaces {
		out[offset] = extra / len(spaces)
		// spaces are collected right to left, the leftmost gaps take the rest
		if len(spaces)-1-i < extra%len(spaces) {
			out[offset]++
		}
	}
	return out
}

func (m *Model) lineClusters(line VisualLineInfo) []cluster {
	var out []cluster
	for _, c := range m.clusters[line.Block] {
		if c.start >= line.Start && c.end <= line.End {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model) charStyle(b document.Block, attr document.Attr, selected, caret bool) lipgloss.Style {
	style := m.theme.headingStyle(b.Level())
	if attr.Bold {
		style = style.Bold(true)
	}
	if attr.Italic {
		style = style.Italic(true)
	}
	if attr.Underline {
		style = style.Underline(true)
	}
	if attr.Link != "" {
		style = style.Foreground(m.theme.LinkStyle.GetForeground()).Underline(true)
	}
	if selected {
		style = style.Background(m.theme.SelectionStyle.GetBackground())
	}
	if caret {
		style = m.theme.CursorStyle.Inherit(style)
	}
	return style
}

type segmentKey struct {
	attr     document.Attr
	selected bool
	caret    bool
}

// renderLine draws one visual row with per character formatting, the
// selection and the caret.
func (m *Model) renderLine(line VisualLineInfo) string {
	b := m.blocks[line.Block]
	selection, hasSelection := m.doc.GetSelection()
	start, end := selection.Normalize()
	showCaret := m.showCaret() && hasSelection && selection.IsCollapsed()
	caret := selection.Focus
	justify := m.justifySpaces(line)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", m.leftPadding(line)))

	var current segmentKey
	var segment strings.Builder
	flush := func() {
		if segment.Len() == 0 {
			return
		}
		sb.WriteString(m.charStyle(b, current.attr, current.selected, current.caret).Render(segment.String()))
		segment.Reset()
	}

	for i, c := range m.lineClusters(line) {
		p := editor.Position{Block: line.Block, Offset: c.start}
		k := segmentKey{
			attr:     b.Chars[c.start].Attr,
			selected: hasSelection && !selection.IsCollapsed() && !p.Before(start) && p.Before(end),
			caret:    showCaret && caret == p,
		}
		if i == 0 || k != current {
			flush()
			current = k
		}
		segment.WriteString(c.text)
		if n := justify[c.start]; n > 0 {
			segment.WriteString(strings.Repeat(" ", n))
		}
	}
	flush()

	if showCaret && line.Last && caret.Block == line.Block && caret.Offset == line.End {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return sb.String()
}

func (m *Model) showCaret() bool {
	return m.isFocused && m.cursorVisible && !m.linkDialog.Active()
}

func (m *Model) renderPlaceholder() string {
	var sb strings.Builder
	for i, r := range []rune(m.placeholder) {
		if i == 0 && m.showCaret() {
			sb.WriteString(m.theme.CursorStyle.Foreground(m.theme.PlaceholderStyle.GetForeground()).Render(string(r)))
		} else {
			sb.WriteString(m.theme.PlaceholderStyle.Render(string(r)))
		}
	}
	return sb.String()
}

// renderVisibleSliceDefault renders the rows currently scrolled into view.
func (m *Model) renderVisibleSliceDefault() {
	if m.placeholder != "" && m.doc.IsEmpty() && m.blocks[0].Level() == 0 {
		m.viewport.SetContent(m.renderPlaceholder())
		return
	}

	var contentBuilder strings.Builder
	end := min(m.currentVisualTopLine+m.viewport.Height, m.fullVisualLayoutHeight)
	for row := m.currentVisualTopLine; row < end; row++ {
		if row > m.currentVisualTopLine {
			contentBuilder.WriteString("\n")
		}
		contentBuilder.WriteString(m.renderLine(m.visualLayoutCache[row]))
	}

	m.viewport.SetContent(contentBuilder.String())
}

// renderVisibleSlice renders either the document or its markup source.
func (m *Model) renderVisibleSlice() {
	if m.sourceView {
		m.renderSourceView()
	} else {
		m.renderVisibleSliceDefault()
	}
}

func (m *Model) handleContentChange() {
	m.calculateVisualMetrics()
	m.updateVisualTopLine()
}
