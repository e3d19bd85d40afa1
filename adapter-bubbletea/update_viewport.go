package adapter_bubbletea

import (
	"strings"

	editor "github.com/ionut-t/richedit/core"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// updateVisualTopLine adjusts the current visual top line based on the cursor's position.
// It ensures that the cursor is always visible within the viewport.
// If the cursor is above the current top line, it moves the top line up.
// If the cursor is below the current top line, it moves the top line down.
func (m *Model) updateVisualTopLine() {
	if m.fullVisualLayoutHeight > 0 {
		if m.cursorAbsoluteVisualRow < m.currentVisualTopLine {
			m.currentVisualTopLine = m.cursorAbsoluteVisualRow
		} else if m.cursorAbsoluteVisualRow >= m.currentVisualTopLine+m.viewport.Height {
			m.currentVisualTopLine = m.cursorAbsoluteVisualRow - m.viewport.Height + 1
		}

		maxPossibleTopLine := 0
		if m.fullVisualLayoutHeight > m.viewport.Height {
			maxPossibleTopLine = m.fullVisualLayoutHeight - m.viewport.Height
		}
		if m.currentVisualTopLine > maxPossibleTopLine {
			m.currentVisualTopLine = maxPossibleTopLine
		}
		if m.currentVisualTopLine < 0 {
			m.currentVisualTopLine = 0
		}
	} else {
		m.currentVisualTopLine = 0
	}

	if !m.sourceView {
		m.viewport.YOffset = 0
	}
}

// columnOf returns the screen column of offset within a visual row.
func (m *Model) columnOf(row, offset int) int {
	line := m.visualLayoutCache[row]
	col := m.leftPadding(line)
	justify := m.justifySpaces(line)
	for _, c := range m.lineClusters(line) {
		if c.start >= offset {
			break
		}
		col += c.width + justify[c.start]
	}
	return col
}

// offsetAtColumn is the inverse of columnOf, snapping to the cluster under
// col. Past the end of a wrapped row the caret stays on that row.
func (m *Model) offsetAtColumn(row, col int) int {
	line := m.visualLayoutCache[row]
	x := m.leftPadding(line)
	justify := m.justifySpaces(line)
	cs := m.lineClusters(line)

	for _, c := range cs {
		width := c.width + justify[c.start]
		if x+width > col {
			return c.start
		}
		x += width
	}

	if !line.Last && len(cs) > 0 {
		return cs[len(cs)-1].start
	}
	return line.End
}

// moveVisual moves the caret delta visual rows, keeping the column it had
// when the vertical movement started.
func (m *Model) moveVisual(delta int, extend bool) {
	if _, ok := m.doc.GetSelection(); !ok {
		m.doc.Focus()
	}
	m.calculateVisualMetrics()
	if m.fullVisualLayoutHeight == 0 {
		return
	}

	selection, _ := m.doc.GetSelection()
	row := m.cursorAbsoluteVisualRow
	if m.goalColumn < 0 {
		m.goalColumn = m.columnOf(row, selection.Focus.Offset)
	}

	target := row + delta
	switch {
	case target < 0:
		m.doc.MoveTo(editor.Position{}, extend)
	case target >= m.fullVisualLayoutHeight:
		m.doc.MoveDocumentEnd(extend)
	default:
		line := m.visualLayoutCache[target]
		m.doc.MoveTo(editor.Position{
			Block:  line.Block,
			Offset: m.offsetAtColumn(target, m.goalColumn),
		}, extend)
	}

	m.calculateVisualMetrics()
	m.updateVisualTopLine()
}

// sourceLines returns the markup of every block, one per line, highlighted
// when a source theme is set.
func (m *Model) sourceLines() []string {
	lines := make([]string, len(m.blocks))
	for i, b := range m.blocks {
		lines[i] = b.Markup()
	}

	if m.highlighter != nil {
		return m.highlighter.RenderLines(lines)
	}

	for i, line := range lines {
		lines[i] = m.theme.SourceViewStyle.Render(line)
	}
	return lines
}

// renderSourceView shows the markup in the viewport. Scrolling is left to
// the viewport itself since the source cannot be edited.
func (m *Model) renderSourceView() {
	width := m.viewport.Width
	lines := m.sourceLines()
	for i, line := range lines {
		lines[i] = wrap.String(wordwrap.String(line, width), width)
	}

	m.viewport.SetContent(strings.Join(lines, "\n"))
}
