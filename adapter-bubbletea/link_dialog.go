package adapter_bubbletea

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type LinkDialogResult int

const (
	LinkDialogPending LinkDialogResult = iota
	LinkDialogConfirmed
	LinkDialogCancelled
)

// LinkDialog prompts for the URL of a link. It only collects input; the
// caller decides what confirming or cancelling does.
type LinkDialog struct {
	input  textinput.Model
	active bool
	width  int
}

func NewLinkDialog() *LinkDialog {
	ti := textinput.New()
	ti.Placeholder = "https://"
	ti.Prompt = "URL: "
	ti.CharLimit = 2048
	ti.Width = 40

	return &LinkDialog{
		input: ti,
		width: 50,
	}
}

// Show activates the dialog with the input prefilled, usually with the link
// under the caret.
func (d *LinkDialog) Show(initial string) tea.Cmd {
	d.active = true
	d.input.SetValue(initial)
	d.input.CursorEnd()
	return d.input.Focus()
}

func (d *LinkDialog) Hide() {
	d.active = false
	d.input.Blur()
	d.input.Reset()
}

func (d *LinkDialog) Active() bool {
	return d.active
}

func (d *LinkDialog) Value() string {
	return d.input.Value()
}

func (d *LinkDialog) SetWidth(width int) {
	d.width = max(20, width)
	// border and padding on both sides, plus the prompt
	d.input.Width = d.width - 4 - len(d.input.Prompt)
}

// Update forwards keys to the input. Enter confirms and Esc cancels; the
// dialog stays visible until Hide is called.
func (d *LinkDialog) Update(msg tea.KeyMsg) (LinkDialogResult, tea.Cmd) {
	if !d.active {
		return LinkDialogPending, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return LinkDialogConfirmed, nil
	case tea.KeyEsc:
		return LinkDialogCancelled, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return LinkDialogPending, cmd
}

func (d *LinkDialog) View(theme Theme) string {
	if !d.active {
		return ""
	}

	hint := theme.PlaceholderStyle.Render("enter to apply, empty to remove, esc to cancel")
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		theme.DialogTitleStyle.Render("Insert link"),
		d.input.View(),
		hint,
	)

	return theme.DialogStyle.Width(d.width - 2).Render(body)
}
