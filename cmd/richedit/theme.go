package main

import (
	"github.com/charmbracelet/lipgloss"

	adapter "github.com/ionut-t/richedit/adapter-bubbletea"
	"github.com/ionut-t/richedit/config"
)

// themeFromConfig applies the configured colours to the default theme.
func themeFromConfig(cfg config.ThemeConfig) adapter.Theme {
	theme := adapter.DefaultTheme

	if cfg.Accent != "" {
		accent := lipgloss.Color(cfg.Accent)
		theme.ToolbarActiveStyle = theme.ToolbarActiveStyle.Background(accent)
		theme.StatusBlockStyle = theme.StatusBlockStyle.Background(accent)
		theme.DialogStyle = theme.DialogStyle.BorderForeground(accent)
	}
	if cfg.Selection != "" {
		theme.SelectionStyle = theme.SelectionStyle.Background(lipgloss.Color(cfg.Selection))
	}
	if cfg.Link != "" {
		theme.LinkStyle = theme.LinkStyle.Foreground(lipgloss.Color(cfg.Link))
	}
	if cfg.Heading != "" {
		heading := lipgloss.Color(cfg.Heading)
		theme.Heading1Style = theme.Heading1Style.Foreground(heading)
		theme.Heading2Style = theme.Heading2Style.Foreground(heading)
		theme.Heading3Style = theme.Heading3Style.Foreground(heading)
		theme.DialogTitleStyle = theme.DialogTitleStyle.Foreground(heading)
	}

	return theme
}
