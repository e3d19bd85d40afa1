package adapter_bubbletea

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	TextStyle             lipgloss.Style
	Heading1Style         lipgloss.Style
	Heading2Style         lipgloss.Style
	Heading3Style         lipgloss.Style
	LinkStyle             lipgloss.Style
	SelectionStyle        lipgloss.Style
	CursorStyle           lipgloss.Style
	PlaceholderStyle      lipgloss.Style
	ToolbarStyle          lipgloss.Style
	ToolbarButtonStyle    lipgloss.Style
	ToolbarActiveStyle    lipgloss.Style
	ToolbarDisabledStyle  lipgloss.Style
	ToolbarSeparatorStyle lipgloss.Style
	StatusLineStyle       lipgloss.Style
	StatusBlockStyle      lipgloss.Style
	CommandLineStyle      lipgloss.Style
	MessageStyle          lipgloss.Style
	ErrorStyle            lipgloss.Style
	DialogStyle           lipgloss.Style
	DialogTitleStyle      lipgloss.Style
	SourceViewStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	TextStyle:             lipgloss.NewStyle(),
	Heading1Style:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Heading2Style:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("177")),
	Heading3Style:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
	LinkStyle:             lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	SelectionStyle:        lipgloss.NewStyle().Background(lipgloss.Color("237")),
	CursorStyle:           lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("0")),
	PlaceholderStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ToolbarStyle:          lipgloss.NewStyle().Background(lipgloss.Color("235")),
	ToolbarButtonStyle:    lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("250")),
	ToolbarActiveStyle:    lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Bold(true),
	ToolbarDisabledStyle:  lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("240")),
	ToolbarSeparatorStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("240")),
	StatusLineStyle:       lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	StatusBlockStyle:      lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	CommandLineStyle:      lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	MessageStyle:          lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:            lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	DialogStyle:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
	DialogTitleStyle:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	SourceViewStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

func (t Theme) headingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return t.Heading1Style
	case 2:
		return t.Heading2Style
	case 3:
		return t.Heading3Style
	}
	return t.TextStyle
}
