package adapter_bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/richedit/core"
)

type toolbarButton struct {
	label    string
	active   bool
	disabled bool
}

func toolbarGroups(state editor.State) [][]toolbarButton {
	return [][]toolbarButton{
		{
			{label: "B", active: state.Formats.Has(editor.FormatBold)},
			{label: "I", active: state.Formats.Has(editor.FormatItalic)},
			{label: "U", active: state.Formats.Has(editor.FormatUnderline)},
		},
		{
			{label: "Left", active: state.Alignment == editor.AlignLeft},
			{label: "Center", active: state.Alignment == editor.AlignCenter},
			{label: "Right", active: state.Alignment == editor.AlignRight},
			{label: "Justify", active: state.Alignment == editor.AlignJustify},
		},
		{
			{label: "P", active: state.Heading == 0},
			{label: "H1", active: state.Heading == 1},
			{label: "H2", active: state.Heading == 2},
			{label: "H3", active: state.Heading == 3},
		},
		{
			{label: "Link", active: state.ShowLinkDialog},
			{label: "Clear"},
		},
		{
			{label: "Undo", disabled: !state.CanUndo},
			{label: "Redo", disabled: !state.CanRedo},
		},
	}
}

// renderToolbar draws the formatting toolbar for the current state. Groups
// that do not fit in width are dropped from the right.
func (m *Model) renderToolbar(state editor.State) string {
	if !m.showToolbar {
		return ""
	}

	separator := m.theme.ToolbarSeparatorStyle.Render(" │ ")

	var sb strings.Builder
	for i, group := range toolbarGroups(state) {
		var rendered strings.Builder
		if i > 0 {
			rendered.WriteString(separator)
		}
		for _, button := range group {
			style := m.theme.ToolbarButtonStyle
			switch {
			case button.disabled:
				style = m.theme.ToolbarDisabledStyle
			case button.active:
				style = m.theme.ToolbarActiveStyle
			}
			rendered.WriteString(style.Render(" " + button.label + " "))
		}

		if m.width > 0 && lipgloss.Width(sb.String())+lipgloss.Width(rendered.String()) > m.width {
			break
		}
		sb.WriteString(rendered.String())
	}

	line := sb.String()
	if padding := m.width - lipgloss.Width(line); padding > 0 {
		line += m.theme.ToolbarStyle.Render(strings.Repeat(" ", padding))
	}
	return line
}
