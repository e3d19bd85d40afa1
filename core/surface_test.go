package core

import "fmt"

type execCall struct {
	command Command
	value   string
}

// fakeSurface records every call and reports whatever state the test sets.
type fakeSurface struct {
	content   string
	plain     string
	states    map[Command]bool
	blockTag  string
	execErr   error
	calls     []execCall
	focused   int
	selection Selection
	hasSel    bool
	setCalls  []string
	ranges    []Selection
	cleared   int

	// onExec lets a test mutate content as a native command would.
	onExec func(s *fakeSurface, command Command, value string)
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{states: map[Command]bool{}, blockTag: "p"}
}

func (s *fakeSurface) GetContent() string { return s.content }

func (s *fakeSurface) GetPlainText() string {
	if s.plain != "" {
		return s.plain
	}
	return StripHTML(s.content)
}

func (s *fakeSurface) SetContent(content string) {
	s.content = content
	s.setCalls = append(s.setCalls, content)
}

func (s *fakeSurface) Focus() { s.focused++ }

func (s *fakeSurface) ExecCommand(command Command, value string) error {
	s.calls = append(s.calls, execCall{command, value})
	if s.onExec != nil {
		s.onExec(s, command, value)
	} else {
		s.content = fmt.Sprintf("%s<%s %s>", s.content, command, value)
	}
	return s.execErr
}

func (s *fakeSurface) QueryCommandState(command Command) bool { return s.states[command] }

func (s *fakeSurface) QueryCommandValue(command Command) string {
	if command == CmdFormatBlock {
		return s.blockTag
	}
	return ""
}

func (s *fakeSurface) GetSelection() (Selection, bool) { return s.selection, s.hasSel }

func (s *fakeSurface) RemoveAllRanges() {
	s.cleared++
	s.hasSel = false
}

func (s *fakeSurface) AddRange(selection Selection) {
	s.ranges = append(s.ranges, selection)
	s.selection = selection
	s.hasSel = true
}

func (s *fakeSurface) commands() []Command {
	out := make([]Command, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.command
	}
	return out
}

// drain empties the signal channel and returns what was queued.
func drain(e Editor) []Signal {
	var out []Signal
	for {
		select {
		case s := <-e.GetUpdateSignalChan():
			out = append(out, s)
		default:
			return out
		}
	}
}
