package adapter_bubbletea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	editor "github.com/ionut-t/richedit/core"
	"github.com/ionut-t/richedit/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clustersOf(text string) []cluster {
	b := document.Parse("<p>" + text + "</p>").Blocks()[0]
	return blockClusters(b)
}

func TestLayoutBlock(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []VisualLineInfo
	}{
		{
			name:  "fits",
			text:  "short",
			width: 10,
			want:  []VisualLineInfo{{Start: 0, End: 5, Width: 5, Last: true}},
		},
		{
			name:  "breaks after spaces",
			text:  "hello world foo",
			width: 11,
			want: []VisualLineInfo{
				{Start: 0, End: 12, Width: 12},
				{Start: 12, End: 15, Width: 3, Last: true},
			},
		},
		{
			name:  "splits long words",
			text:  "abcdefgh",
			width: 3,
			want: []VisualLineInfo{
				{Start: 0, End: 3, Width: 3},
				{Start: 3, End: 6, Width: 3},
				{Start: 6, End: 8, Width: 2, Last: true},
			},
		},
		{
			name:  "wide clusters",
			text:  "日本語",
			width: 4,
			want: []VisualLineInfo{
				{Start: 0, End: 2, Width: 4},
				{Start: 2, End: 3, Width: 2, Last: true},
			},
		},
		{
			name:  "empty block",
			text:  "",
			width: 5,
			want:  []VisualLineInfo{{Last: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layoutBlock(0, clustersOf(tt.text), tt.width))
		})
	}
}

func TestBlockClusters_CombinedGraphemes(t *testing.T) {
	cs := clustersOf("👍🏼x")

	require.Len(t, cs, 2)
	assert.Equal(t, 0, cs[0].start)
	assert.Equal(t, 2, cs[0].end)
	assert.Equal(t, "x", cs[1].text)
}

func TestCalculateVisualMetrics_CaretRow(t *testing.T) {
	m, _ := newTestModel(12, 20, editor.WithInitialContent("<p>hello world foo</p><p>end</p>"))

	m.GetDocument().MoveTo(editor.Position{Block: 0, Offset: 12}, false)
	m.calculateVisualMetrics()
	assert.Equal(t, 3, m.fullVisualLayoutHeight)
	assert.Equal(t, 1, m.cursorAbsoluteVisualRow, "a wrap point belongs to the next row")

	m.GetDocument().MoveTo(editor.Position{Block: 0, Offset: 15}, false)
	m.calculateVisualMetrics()
	assert.Equal(t, 1, m.cursorAbsoluteVisualRow)

	m.GetDocument().MoveTo(editor.Position{Block: 1, Offset: 0}, false)
	m.calculateVisualMetrics()
	assert.Equal(t, 2, m.cursorAbsoluteVisualRow)
}

func TestMoveVisual_KeepsGoalColumn(t *testing.T) {
	m, _ := newTestModel(12, 20, editor.WithInitialContent("<p>hello world foo</p><p>abcdefgh</p>"))
	m = update(m, keyOf(tea.KeyCtrlHome), keyOf(tea.KeyRight), keyOf(tea.KeyRight))

	m = update(m, keyOf(tea.KeyDown))
	assert.Equal(t, editor.Position{Block: 0, Offset: 14}, caretOf(m))

	m = update(m, keyOf(tea.KeyDown))
	assert.Equal(t, editor.Position{Block: 1, Offset: 2}, caretOf(m))

	m = update(m, keyOf(tea.KeyUp), keyOf(tea.KeyUp))
	assert.Equal(t, editor.Position{Block: 0, Offset: 2}, caretOf(m))

	m = update(m, keyOf(tea.KeyUp))
	assert.Equal(t, editor.Position{}, caretOf(m), "moving above the first row goes to the start")
}

func TestMoveVisual_Extends(t *testing.T) {
	m, _ := newTestModel(80, 20, editor.WithInitialContent("<p>one</p><p>two</p>"))
	m = update(m, keyOf(tea.KeyCtrlHome), keyOf(tea.KeyShiftDown))

	assert.Equal(t, "one\n", m.GetDocument().SelectedText())
}

func caretOf(m Model) editor.Position {
	selection, _ := m.GetDocument().GetSelection()
	return selection.Focus
}

func TestRenderLine_Alignment(t *testing.T) {
	m, _ := newTestModel(12, 10, editor.WithInitialContent(
		`<p style="text-align: center">abc</p><p style="text-align: right">xy</p>`,
	))
	m.Blur()
	m.calculateVisualMetrics()

	assert.Equal(t, "    abc", ansi.Strip(m.renderLine(m.visualLayoutCache[0])))
	assert.Equal(t, strings.Repeat(" ", 9)+"xy", ansi.Strip(m.renderLine(m.visualLayoutCache[1])))
}

func TestRenderLine_Justify(t *testing.T) {
	m, _ := newTestModel(12, 10, editor.WithInitialContent(`<p style="text-align: justify">ab cd efghijk</p>`))
	m.Blur()
	m.calculateVisualMetrics()

	require.Len(t, m.visualLayoutCache, 2)
	assert.Equal(t, map[int]int{2: 5}, m.justifySpaces(m.visualLayoutCache[0]))
	assert.Equal(t, "ab      cd ", ansi.Strip(m.renderLine(m.visualLayoutCache[0])))
	assert.Nil(t, m.justifySpaces(m.visualLayoutCache[1]), "the last row is not stretched")
}

func TestRenderLine_CaretAtEnd(t *testing.T) {
	m, _ := newTestModel(20, 10, editor.WithInitialContent("<p>ab</p>"))
	m.calculateVisualMetrics()

	assert.Equal(t, "ab ", ansi.Strip(m.renderLine(m.visualLayoutCache[0])))

	m.Blur()
	assert.Equal(t, "ab", ansi.Strip(m.renderLine(m.visualLayoutCache[0])))
}

func TestUpdateVisualTopLine_FollowsCaret(t *testing.T) {
	var content strings.Builder
	for i := 0; i < 30; i++ {
		content.WriteString("<p>line</p>")
	}
	m, _ := newTestModel(40, 10, editor.WithInitialContent(content.String()))
	m = update(m, keyOf(tea.KeyCtrlEnd))

	assert.Equal(t, 29, m.cursorAbsoluteVisualRow)
	assert.Equal(t, 30-m.viewport.Height, m.currentVisualTopLine)

	m = update(m, keyOf(tea.KeyCtrlHome))
	assert.Equal(t, 0, m.currentVisualTopLine)
}
