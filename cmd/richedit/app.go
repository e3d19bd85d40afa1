package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adapter "github.com/ionut-t/richedit/adapter-bubbletea"
	"github.com/ionut-t/richedit/internal/logger"
)

var (
	errNoFile  = errors.New("no file name, start richedit with a file argument to save")
	errUnsaved = errors.New("unsaved changes, press ctrl+c again to quit")
)

type app struct {
	editor          adapter.Model
	file            string
	saved           string // content as loaded or last written
	quitArmed       bool
	messageDuration time.Duration
}

func (m app) Init() tea.Cmd {
	return tea.Batch(m.editor.Init(), m.editor.CursorBlink())
}

func (m app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.modified() && !m.quitArmed {
				m.quitArmed = true
				return m, m.editor.DispatchError(errUnsaved, m.messageDuration)
			}
			return m, tea.Quit
		case "ctrl+s":
			m.quitArmed = false
			return m, m.save()
		}
		m.quitArmed = false
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(adapter.Model)

	return m, cmd
}

func (m *app) save() tea.Cmd {
	if m.file == "" {
		return m.editor.DispatchError(errNoFile, m.messageDuration)
	}

	content := m.editor.GetContent()
	if err := os.WriteFile(m.file, []byte(content), 0o644); err != nil {
		logger.Errorf("Saving %s: %v", m.file, err)
		return m.editor.DispatchError(err, m.messageDuration)
	}

	m.saved = content
	logger.Infof("Saved %s", m.file)
	return m.editor.DispatchMessage(fmt.Sprintf("file saved to %s", m.file), m.messageDuration)
}

func (m *app) modified() bool {
	return m.editor.GetContent() != m.saved
}

func (m app) View() string {
	return m.editor.View()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
