package core

import "github.com/ionut-t/richedit/internal/logger"

var (
	FormattingClearedMessage = "formatting cleared"
	LinkInsertedMessage      = "link inserted"
	LinkRemovedMessage       = "link removed"
)

// DispatchMessage sends a status message. With one argument it is both the
// id and the text; a second argument overrides the text.
func (e *editor) DispatchMessage(args ...string) {
	if len(args) == 0 {
		return
	}

	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	select {
	case e.updateSignal <- MessageSignal{id, value}:
	default:
		logger.Debugf("Editor: signal channel is full, dropping message %q", id)
	}
}
